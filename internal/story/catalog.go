package story

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/pagination"
	"github.com/alexisbeaulieu97/loom/internal/ui"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

// Catalog returns a registry holding the built-in component stories.
func Catalog() *Registry {
	r := NewRegistry()
	r.MustRegister(
		paletteStory(),
		typographyStory(),
		buttonStory(),
		stackStory(),
		containerStory(),
		cardStory(),
		dialogStory(),
		drawerStory(),
		tooltipStory(),
		toasterStory(),
		alertStory(),
		progressStory(),
		tabsStory(),
		selectStory(),
		historyStory(),
	)
	return r
}

func paletteStory() Story {
	return Story{
		ID:    "foundations/palette",
		Group: "Foundations",
		Title: "Palette",
		Doc: `# Palette

Every slot has four roles: **base**, **on_base**, **muted** and **contrast**.
Theme files set them under ` + "`palette.<slot>.<role>`" + `.

- Colours adapt to the terminal background unless a mode is forced.
- Press ` + "`t`" + ` to cycle auto, light and dark.`,
		Render: func(ctx components.RenderContext) string {
			palette := ctx.Theme.Palette
			rows := make([]string, 0, len(components.SlotNames))
			for _, name := range components.SlotNames {
				set, _ := palette.Slot(name)
				cells := []string{lipgloss.NewStyle().Width(10).Render(name)}
				for _, role := range components.RoleNames {
					colour, _ := set.Role(role)
					cells = append(cells, lipgloss.NewStyle().Background(*colour).Width(4).Render(""))
				}
				rows = append(rows, strings.Join(cells, " "))
			}
			return lipgloss.JoinVertical(lipgloss.Left, rows...)
		},
	}
}

func typographyStory() Story {
	return Story{
		ID:    "foundations/typography",
		Group: "Foundations",
		Title: "Typography",
		Doc: `# Typography

Text presets share the palette: titles use the primary colour and muted
text uses the neutral slot.`,
		Render: func(ctx components.RenderContext) string {
			return components.VStack(
				components.TitleText("Title"),
				components.SubtitleText("Subtitle"),
				components.NewText("Body copy"),
				components.CodeText("code()"),
				components.MutedText("Muted"),
			).ViewWithContext(ctx)
		},
	}
}

func buttonStory() Story {
	return Story{
		ID:    "actions/button",
		Group: "Actions",
		Title: "Button",
		Doc: `# Button

Variants come from the theme registry.

1. Primary
2. Secondary
3. Danger
4. Muted

A focused button is bold and underlined. Disabled buttons render faint and
never take focus in a dialog.`,
		Render: func(ctx components.RenderContext) string {
			return components.VStack(
				components.HStack(
					components.NewButton("Primary").WithFocused(true),
					components.SecondaryButton("Secondary"),
					components.DangerButton("Danger"),
					components.NewButton("Muted").WithVariant(components.ButtonVariantMuted),
				).WithGap(1),
				components.HStack(
					components.NewButton("Disabled").WithDisabled(true),
				),
			).WithGap(1).ViewWithContext(ctx)
		},
	}
}

func stackStory() Story {
	return Story{
		ID:    "layout/stack",
		Group: "Layout",
		Title: "Stack",
		Doc: `# Stack

Lays children out in one direction with a gap. Empty children are skipped.`,
		Render: func(ctx components.RenderContext) string {
			swatch := func(label string, slot components.PaletteSlot) ui.Renderable {
				return components.NewText(label).WithAppliers(
					components.Background(slot),
					components.PaddingX(components.SpacingSizeSmall),
				)
			}
			return components.VStack(
				components.MutedText("horizontal, gap 2"),
				components.HStack(swatch("one", components.PalettePrimary), swatch("two", components.PaletteSecondary), swatch("three", components.PaletteSuccess)).WithGap(2),
				components.MutedText("vertical, centred"),
				components.VStack(swatch("short", components.PaletteInfo), swatch("a wider row", components.PaletteWarning)).WithCrossAlign(components.CrossCenter),
			).WithGap(1).ViewWithContext(ctx)
		},
	}
}

func containerStory() Story {
	return Story{
		ID:    "layout/container",
		Group: "Layout",
		Title: "Container",
		Doc: `# Container

A vertical stack with an optional border, padding and fixed width.`,
		Render: func(ctx components.RenderContext) string {
			return components.NewContainer(
				components.TitleText("Release notes"),
				components.NewText("Drawer pages now keep their history."),
			).WithBorder(components.BorderVariantRounded).
				WithPadding(components.SymmetricSpacing(0, 1)).
				WithWidth(44).
				WithGap(1).
				ViewWithContext(ctx)
		},
	}
}

func cardStory() Story {
	return Story{
		ID:    "layout/card",
		Group: "Layout",
		Title: "Card",
		Doc: `# Card

A bordered summary with a title, a wrapped description, metadata rows sorted
by key and an optional footer.`,
		Render: func(ctx components.RenderContext) string {
			return components.NewCard("Theme document").
				WithIcon("◆").
				WithDescription("Light tokens are the base. Dark tokens are merged over them before references resolve.").
				WithMeta("version", "1.0.0").
				WithMeta("format", "yaml").
				WithFooter(components.HStack(
					components.NewButton("Open"),
					components.SecondaryButton("Validate"),
				).WithGap(1)).
				WithWidth(48).
				ViewWithContext(ctx)
		},
	}
}

func dialogStory() Story {
	return Story{
		ID:    "overlays/dialog",
		Group: "Overlays",
		Title: "Dialog",
		Doc: `# Dialog

A modal with a title, a body and ordered actions.

- Focus moves between enabled actions and wraps at both ends.
- A closed dialog renders nothing.`,
		Render: func(ctx components.RenderContext) string {
			d := components.NewDialog("Delete theme?", components.NewText("The file is removed from disk.")).
				WithActions(
					components.SecondaryButton("Cancel"),
					components.NewButton("Archive").WithDisabled(true),
					components.DangerButton("Delete"),
				).
				WithWidth(44)
			d.Open()
			d.FocusNext()
			return d.ViewWithContext(ctx)
		},
	}
}

type onboardingStep string

func drawerStory() Story {
	return Story{
		ID:    "overlays/drawer",
		Group: "Overlays",
		Title: "Drawer",
		Doc: `# Drawer

A multi-step side sheet with browser-style history.

- Opening a page after going back drops the forward pages.
- Revisiting a page jumps back to its first visit.
- Content published to the bottom panel renders under the page.

Press ` + "`d`" + ` in the gallery to try it.`,
		Render: func(ctx components.RenderContext) string {
			d := components.NewDrawer[onboardingStep]("Onboarding", "welcome").
				AddPage("welcome", "Welcome", components.NewText("Pick a theme to get started.")).
				AddPage("profile", "Profile", components.NewText("Tell us your name.")).
				AddPage("confirm", "Confirm", components.NewText("Ready to go.")).
				WithWidth(44)
			d.Open()
			d.Next()
			d.Panel().Publish("hint", components.MutedText("n next · b back"))
			return d.ViewWithContext(ctx)
		},
	}
}

func tooltipStory() Story {
	return Story{
		ID:    "overlays/tooltip",
		Group: "Overlays",
		Title: "Tooltip",
		Doc: `# Tooltip

Shows a short hint above or below its anchor.`,
		Render: func(ctx components.RenderContext) string {
			top := components.NewTooltip(components.NewButton("Save"), "Ctrl+S")
			top.Show()
			bottom := components.NewTooltip(components.SecondaryButton("Export"), "Writes CSS variables").
				WithPlacement(components.PlacementBottom)
			bottom.Show()
			return components.HStack(top, bottom).WithGap(4).ViewWithContext(ctx)
		},
	}
}

func toasterStory() Story {
	return Story{
		ID:    "overlays/toaster",
		Group: "Overlays",
		Title: "Toaster",
		Doc: `# Toaster

Queues transient notifications. The newest toast renders first and expired
toasts are pruned on every tick.`,
		Render: func(ctx components.RenderContext) string {
			t := components.NewToaster(4)
			t.Push(components.ToastVariantInfo, "Theme loaded", time.Minute)
			t.Push(components.ToastVariantSuccess, "Preferences saved", time.Minute)
			t.Push(components.ToastVariantWarning, "Terminal is narrow", time.Minute)
			t.Push(components.ToastVariantError, "Reload failed", time.Minute)
			return t.ViewWithContext(ctx)
		},
	}
}

func alertStory() Story {
	return Story{
		ID:    "feedback/alert",
		Group: "Feedback",
		Title: "Alert",
		Doc: `# Alert

An inline message that stays in the layout. Variants:

1. info
2. success
3. warning
4. danger`,
		Render: func(ctx components.RenderContext) string {
			return components.VStack(
				components.NewAlert("Tokens resolve when the theme loads.").WithTitle("Info"),
				components.NewAlert("Preferences saved.").WithVariant(components.AlertVariantSuccess),
				components.NewAlert("Terminal is narrower than 60 columns.").WithVariant(components.AlertVariantWarning),
				components.ErrorAlert("unknown reference \"brand\"").WithDismissible(true),
			).WithGap(1).ViewWithContext(ctx)
		},
	}
}

func progressStory() Story {
	return Story{
		ID:    "feedback/progress",
		Group: "Feedback",
		Title: "Progress",
		Doc: `# Progress

A step counter with a bar filled in the primary colour. Drawers show one for
their declared pages.`,
		Render: func(ctx components.RenderContext) string {
			rows := make([]ui.Renderable, 0, 4)
			for step := range 4 {
				rows = append(rows, components.NewProgress(step, 3).WithWidth(24))
			}
			return components.VStack(rows...).ViewWithContext(ctx)
		},
	}
}

func tabsStory() Story {
	return Story{
		ID:    "inputs/tabs",
		Group: "Inputs",
		Title: "Tabs",
		Doc: `# Tabs

Switches between labelled panes. Moving past either end wraps around.`,
		Render: func(ctx components.RenderContext) string {
			tabs := components.NewTabs("Preview", "Docs", "Tokens")
			tabs.Next()
			return tabs.ViewWithContext(ctx)
		},
	}
}

func selectStory() Story {
	return Story{
		ID:    "inputs/select",
		Group: "Inputs",
		Title: "Select",
		Doc: `# Select

A dropdown of labelled options. ` + "`Choose`" + ` commits the highlighted
option and closes the list.`,
		Render: func(ctx components.RenderContext) string {
			closed := components.NewSelect("Theme mode",
				components.Option{Label: "Auto", Value: "auto"},
				components.Option{Label: "Light", Value: "light"},
				components.Option{Label: "Dark", Value: "dark"},
			)
			closed.Open()
			closed.MoveDown()
			closed.MoveDown()
			closed.Choose()

			open := components.NewSelect("Density",
				components.Option{Label: "Compact", Value: "compact"},
				components.Option{Label: "Comfortable", Value: "comfortable"},
			)
			open.Open()
			open.MoveDown()

			return components.HStack(closed, open).WithGap(4).ViewWithContext(ctx)
		},
	}
}

func historyStory() Story {
	return Story{
		ID:    "navigation/history",
		Group: "Navigation",
		Title: "Page history",
		Doc: `# Page history

The navigator behind drawers and the gallery sidebar.

` + "```" + `
open(profile)  -> [welcome profile]
open(confirm)  -> [welcome profile confirm]
back()         -> current profile
open(welcome)  -> [welcome profile welcome], position 0
open(summary)  -> [welcome summary]
` + "```",
		Render: func(ctx components.RenderContext) string {
			nav := pagination.New("welcome")
			rows := []ui.Renderable{}
			record := func(op string) {
				parts := make([]string, 0, len(nav.History()))
				for _, page := range nav.History() {
					if page == nav.Current() {
						page = "[" + page + "]"
					}
					parts = append(parts, page)
				}
				rows = append(rows, components.HStack(
					components.CodeText(fmt.Sprintf("%-15s", op)),
					components.NewText(strings.Join(parts, " ")),
				).WithGap(1))
			}

			record("start")
			nav.Open("profile")
			record("open(profile)")
			nav.Open("confirm")
			record("open(confirm)")
			nav.Back()
			record("back()")
			nav.Open("welcome")
			record("open(welcome)")
			nav.Open("summary")
			record("open(summary)")

			return components.VStack(rows...).ViewWithContext(ctx)
		},
	}
}
