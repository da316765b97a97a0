// Package menu resolves the signed-in role into the slide-out drawer's
// entries and animates the drawer open and closed.
//
// # Roles
//
// Resolve classifies a session once into Guest, Customer or Admin. Only an
// authenticated session whose role equals "admin" (any casing) is Admin;
// every other authenticated session is Customer. Consumers switch on the
// Role value and never look at the raw role string again.
//
// # Items
//
// Items returns a fixed, ordered entry list per role. Every entry carries a
// Target for the navigation dispatcher; sign-out entries also tear the
// session down before navigating to Login.
//
// # Drawer
//
// Drawer holds {open, progress}. Opening sets open immediately and runs
// progress to 1; closing runs progress to 0 and only then clears open, so
// the panel stays rendered while it slides out. Each animation is a chain
// of FrameMsg ticks tagged with the drawer ID and a generation; starting a
// new animation or calling Stop bumps the generation and the old chain dies
// without completing.
//
//	c := menu.New(store)
//	cmd := c.Toggle()                  // start sliding in
//	c, cmd = c.Update(frameMsg)        // feed frames from the program
//	cmd = c.NavigateAndClose(target)   // close and emit a NavigateMsg
package menu
