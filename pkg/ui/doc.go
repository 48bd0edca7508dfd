// Package ui provides the presentational components that sit around the
// popover: Button and Tabs. Components are configured with functional
// options and render vdom nodes with Tailwind classes.
//
//	ui.Button(ui.Outline(), ui.Sm(), ui.WithOnClick(save), ui.WithChildren("Save"))
//
//	tabs := ui.NewTabs(ui.TabsItems(
//	    ui.TabItem{Value: "account", Label: "Account", Content: account},
//	    ui.TabItem{Value: "billing", Label: "Billing", Disabled: true},
//	))
//	node := tabs.Render()
package ui
