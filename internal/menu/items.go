package menu

// Screen names understood by the navigator. Nested screens are addressed
// through a root screen plus a "screen" parameter.
const (
	ScreenHome     = "Home"
	ScreenCart     = "CartScreen"
	ScreenLogin    = "Login"
	ScreenAbout    = "About"
	ScreenUserRoot = "UserRoot"
	ScreenAdmin    = "AdminRoot"

	ScreenUserDashboard  = "UserDashboard"
	ScreenProductList    = "ProductList"
	ScreenOrderHistory   = "OrderHistory"
	ScreenAccount        = "AccountScreen"
	ScreenAdminDashboard = "AdminDashboard"
	ScreenCreateProduct  = "CreateProduct"
	ScreenOrders         = "OrdersScreen"
	ScreenUsers          = "UserManagement"
	ScreenAdminAccount   = "AccountScreenAdmin"
)

// Target is a navigation intent.
type Target struct {
	Screen string
	Params map[string]string
}

// To targets a top-level screen.
func To(screen string) Target {
	return Target{Screen: screen}
}

// Nested targets a screen under a root navigator.
func Nested(root, screen string) Target {
	return Target{Screen: root, Params: map[string]string{"screen": screen}}
}

// Leaf returns the innermost screen name.
func (t Target) Leaf() string {
	if s := t.Params["screen"]; s != "" {
		return s
	}
	return t.Screen
}

// Equal reports whether two targets address the same screen with the same params.
func (t Target) Equal(o Target) bool {
	if t.Screen != o.Screen || len(t.Params) != len(o.Params) {
		return false
	}
	for k, v := range t.Params {
		if ov, ok := o.Params[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Item is one drawer entry.
type Item struct {
	Icon    string
	Label   string
	Target  Target
	SignOut bool
}

type itemSpec struct {
	icon, label string
	root, leaf  string
	signOut     bool
}

var (
	guestItems = []itemSpec{
		{icon: "⌂", label: "Home", leaf: ScreenHome},
		{icon: "▣", label: "Cart", leaf: ScreenCart},
		{icon: "→", label: "Sign in", leaf: ScreenLogin},
		{icon: "ⓘ", label: "About", leaf: ScreenAbout},
	}
	customerItems = []itemSpec{
		{icon: "⌂", label: "Home", root: ScreenUserRoot, leaf: ScreenUserDashboard},
		{icon: "▦", label: "Products", root: ScreenUserRoot, leaf: ScreenProductList},
		{icon: "▣", label: "Cart", leaf: ScreenCart},
		{icon: "☰", label: "My orders", root: ScreenUserRoot, leaf: ScreenOrderHistory},
		{icon: "◉", label: "My account", root: ScreenUserRoot, leaf: ScreenAccount},
		{icon: "←", label: "Sign out", leaf: ScreenLogin, signOut: true},
	}
	adminItems = []itemSpec{
		{icon: "▦", label: "Dashboard", root: ScreenAdmin, leaf: ScreenAdminDashboard},
		{icon: "+", label: "Create product", root: ScreenAdmin, leaf: ScreenCreateProduct},
		{icon: "☰", label: "Orders", root: ScreenAdmin, leaf: ScreenOrders},
		{icon: "☺", label: "User management", root: ScreenAdmin, leaf: ScreenUsers},
		{icon: "◉", label: "My account", root: ScreenAdmin, leaf: ScreenAdminAccount},
		{icon: "←", label: "Sign out", leaf: ScreenLogin, signOut: true},
	}
)

// Items returns the drawer entries for a role. Each call returns a fresh
// slice that callers may modify.
func Items(r Role) []Item {
	var specs []itemSpec
	switch r {
	case RoleAdmin:
		specs = adminItems
	case RoleCustomer:
		specs = customerItems
	default:
		specs = guestItems
	}

	items := make([]Item, 0, len(specs))
	for _, s := range specs {
		target := To(s.leaf)
		if s.root != "" {
			target = Nested(s.root, s.leaf)
		}
		items = append(items, Item{
			Icon:    s.icon,
			Label:   s.label,
			Target:  target,
			SignOut: s.signOut,
		})
	}
	return items
}

// ProfileTarget is where the header's profile shortcut leads.
func ProfileTarget(r Role) Target {
	switch r {
	case RoleAdmin:
		return Nested(ScreenAdmin, ScreenAdminAccount)
	case RoleCustomer:
		return Nested(ScreenUserRoot, ScreenAccount)
	default:
		return To(ScreenLogin)
	}
}
