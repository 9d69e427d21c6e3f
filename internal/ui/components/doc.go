// Package components is loom's theme-aware component library for terminal
// applications.
//
// # Layers
//
//  1. Theme: an immutable Theme value (palette, spacing, borders, typography,
//     variant registry). Palette colours are lipgloss.AdaptiveColor, so one
//     theme carries both its light and dark values.
//  2. Modifiers: StyleFunc values such as Background(PalettePrimary) or
//     PaddingX(SpacingSizeMedium) that read the theme at render time.
//  3. Components: values that render to strings through View or
//     ViewWithContext.
//
// # Rendering
//
// Themes travel in a RenderContext instead of global state:
//
//	ctx := components.DefaultContext().WithTheme(theme.ForMode(true))
//	out := dialog.ViewWithContext(ctx)
//
// # Components
//
// Primitives: Text, Divider. Layout: Stack, Container. Actions: Button.
// Overlays: Dialog, Drawer, Tooltip, Toaster. Inputs: Tabs, Select.
//
// Interactive components hold their own state (focus, open, highlighted
// option) and expose methods for it; they never read the keyboard. A host
// such as a bubbletea model maps key presses to those methods.
//
// Drawer pages are navigated with pagination.Navigator, and content published
// to Drawer.Panel renders in the drawer's bottom panel.
package components
