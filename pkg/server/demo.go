package server

import (
	"slices"

	"github.com/vango-dev/vango-ui/pkg/branding"
	"github.com/vango-dev/vango-ui/pkg/popover"
	"github.com/vango-dev/vango-ui/pkg/ui"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// Demo is the playground page: buttons, tabs and three popovers (click,
// hover and controlled) inside a branding provider. opts are applied to
// every popover before its own settings.
func Demo(b branding.Branding, opts ...popover.Option) App {
	return func(owner *vango.Owner) (View, error) {
		if err := branding.Provide(owner, b); err != nil {
			return nil, err
		}

		with := func(extra ...popover.Option) []popover.Option {
			return append(slices.Clone(opts), append(extra, popover.WithOwner(owner))...)
		}

		clicks := 0
		tabs := ui.NewTabs(
			ui.TabsDefault("overview"),
			ui.TabsItems(
				ui.TabItem{Value: "overview", Label: "Overview", Content: vdom.P(vdom.Text("Components rendered on the server."))},
				ui.TabItem{Value: "events", Label: "Events", Content: vdom.P(vdom.Text("Events travel over a WebSocket."))},
				ui.TabItem{Value: "archive", Label: "Archive", Disabled: true},
			),
		)

		clickPop := popover.New(with(popover.WithID("click-popover"), popover.WithTrigger(popover.TriggerClick))...)
		hoverPop := popover.New(with(
			popover.WithID("hover-popover"),
			popover.WithTrigger(popover.TriggerHover),
			popover.WithSide(popover.SideTop),
		)...)

		controlledOpen := false
		controlled := popover.New(with(
			popover.WithID("controlled-popover"),
			popover.WithTrigger(popover.TriggerClick),
			popover.WithOnOpenChange(func(open bool) { controlledOpen = open }),
		)...)

		view := func() *vdom.VNode {
			controlled.Sync(controlledOpen)

			org := branding.Use(owner).OrganisationID
			if org == "" {
				org = "no organisation"
			}

			status := "closed"
			if controlledOpen {
				status = "open"
			}

			content := []any{
				vdom.Header(
					vdom.Class("mb-6"),
					vdom.H1(vdom.Class("text-2xl font-semibold"), vdom.Text("vango-ui playground")),
					vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Data("organisation-label", "true"), vdom.Text(org)),
				),
				vdom.Section(
					vdom.Class("flex gap-2 mb-6"),
					ui.Button(
						ui.WithOnClick(func() { clicks++ }),
						ui.WithChildren(vdom.Textf("Clicked %d times", clicks)),
						ui.WithAttr("data-demo", "counter"),
					),
					ui.Button(ui.Outline(), ui.WithChildren("Outline")),
					ui.Button(ui.Destructive(), ui.WithDisabled(true), ui.WithChildren("Disabled")),
					ui.Button(ui.Secondary(), ui.WithLoading(true), ui.WithChildren("Saving")),
				),
				vdom.Section(vdom.Class("mb-6"), tabs.Render()),
				vdom.Section(
					vdom.Class("flex gap-8"),
					popover.Render(clickPop,
						ui.Button(ui.Outline(), ui.WithChildren("Click me")),
						vdom.P(vdom.Text("Opened by click. Click outside or press Escape to close.")),
					),
					popover.Render(hoverPop,
						ui.Button(ui.Ghost(), ui.WithChildren("Hover me")),
						vdom.P(vdom.Text("Stays open while the pointer is over the trigger or this panel.")),
					),
					popover.Render(controlled,
						ui.Button(ui.WithChildren("Controlled")),
						vdom.P(vdom.Text("The page owns this popover's state.")),
					),
					vdom.P(vdom.Data("controlled-state", status), vdom.Textf("Controlled popover is %s", status)),
				),
			}

			return branding.Wrap(branding.Use(owner), vdom.Main(append([]any{vdom.Class("p-8")}, content...)...))
		}
		return view, nil
	}
}
