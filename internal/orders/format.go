package orders

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tone is the color category a status renders with.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneWarning
	ToneInfo
	ToneSuccess
	ToneDanger
)

func (t Tone) String() string {
	switch t {
	case ToneWarning:
		return "warning"
	case ToneInfo:
		return "info"
	case ToneSuccess:
		return "success"
	case ToneDanger:
		return "danger"
	default:
		return "neutral"
	}
}

var statusTones = map[string]Tone{
	"pendiente": ToneWarning,
	"enviado":   ToneInfo,
	"entregado": ToneSuccess,
	"cancelado": ToneDanger,
}

// StatusTone maps a status to its tone, ignoring case and surrounding space.
// Unknown or empty statuses are neutral.
func StatusTone(status string) Tone {
	return statusTones[strings.ToLower(strings.TrimSpace(status))]
}

// NoProducts is shown in place of an empty product list.
const NoProducts = "No products"

// FormatProducts renders one "• name (xqty)" line per product.
func FormatProducts(products Products) []string {
	if len(products) == 0 {
		return []string{NoProducts}
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("• %s (x%s)", p.Name, p.Quantity))
	}
	return lines
}

// Formatter renders dates and totals for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	loc     *time.Location
	layout  string
}

// NewFormatter builds a formatter for a BCP 47 locale. Unparseable locales
// fall back to en-US and a nil location to the local zone.
func NewFormatter(locale string, loc *time.Location) Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || locale == "" {
		tag = language.AmericanEnglish
	}
	if loc == nil {
		loc = time.Local
	}
	return Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		loc:     loc,
		layout:  dateLayout(tag),
	}
}

// Locale returns the resolved locale tag.
func (f Formatter) Locale() string { return f.tag.String() }

// Date renders a stamped date as a short locale date; raw values pass
// through unchanged and absent dates render empty.
func (f Formatter) Date(d Date) string {
	if !d.Stamped {
		return d.Raw
	}
	return time.Unix(d.Seconds, d.Nanos).In(f.loc).Format(f.layout)
}

// totalFractionDigits caps the decimals shown for a total.
const totalFractionDigits = 3

// Total renders an order total with locale digit grouping and at most
// three fraction digits. A missing total renders as "0".
func (f Formatter) Total(total *float64) string {
	if total == nil || *total == 0 {
		return "0"
	}
	return f.printer.Sprintf("%v", number.Decimal(*total, number.MaxFractionDigits(totalFractionDigits)))
}

func dateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	switch base.String() {
	case "en":
		switch region.String() {
		case "US", "PH":
			return "1/2/2006"
		case "CA":
			return "2006-01-02"
		default:
			return "02/01/2006"
		}
	case "es", "pt", "it":
		return "2/1/2006"
	case "fr":
		return "02/01/2006"
	case "de", "ru", "pl":
		return "2.1.2006"
	case "ja", "zh":
		return "2006/1/2"
	default:
		return "2006-01-02"
	}
}
