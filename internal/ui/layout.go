package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the address column is hidden.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the threshold above which dates get a wider column.
	LayoutWideWidth = 120
)

// Drawer geometry.
const (
	// DrawerWidth is the panel width on roomy terminals.
	DrawerWidth = 32

	// DrawerMinContent is the content width always left uncovered.
	DrawerMinContent = 8
)

// chromeHeight is the header plus command bar.
const chromeHeight = 2

// DefaultFetchTimeout bounds one orders fetch when the caller sets none.
const DefaultFetchTimeout = 5 * time.Second
