package ui

import (
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// TabsVariant is the visual style of a tab list.
type TabsVariant string

const (
	TabsVariantDefault   TabsVariant = "default"
	TabsVariantPills     TabsVariant = "pills"
	TabsVariantUnderline TabsVariant = "underline"
)

// TabItem represents a tab with its content.
type TabItem struct {
	Value    string
	Label    string
	Icon     *vdom.VNode
	Disabled bool
	Content  *vdom.VNode
}

// TabsOption configures a Tabs component.
type TabsOption func(*tabsConfig)

type tabsConfig struct {
	value        string
	defaultValue string
	onChange     func(string)
	tabs         []TabItem
	variant      TabsVariant
	className    string
}

// TabsValue sets the externally owned active tab of controlled tabs.
func TabsValue(value string) TabsOption {
	return func(c *tabsConfig) {
		c.value = value
	}
}

// TabsDefault sets the initial active tab of uncontrolled tabs.
func TabsDefault(value string) TabsOption {
	return func(c *tabsConfig) {
		c.defaultValue = value
	}
}

// TabsOnChange makes the tabs controlled: selecting a tab calls handler
// and the active tab follows the value passed to Sync.
func TabsOnChange(handler func(string)) TabsOption {
	return func(c *tabsConfig) {
		c.onChange = handler
	}
}

// TabsItems sets the tab items.
func TabsItems(tabs ...TabItem) TabsOption {
	return func(c *tabsConfig) {
		c.tabs = tabs
	}
}

// WithTabsVariant sets the tabs variant (default, pills, underline).
func WithTabsVariant(variant TabsVariant) TabsOption {
	return func(c *tabsConfig) {
		c.variant = variant
	}
}

// TabsClass adds additional CSS classes.
func TabsClass(className string) TabsOption {
	return func(c *tabsConfig) {
		c.className = className
	}
}

// TabsState holds the selection of a Tabs component.
type TabsState struct {
	cfg    tabsConfig
	active string
}

// NewTabs creates tab selection state. Tabs are controlled when
// TabsOnChange is given and uncontrolled otherwise.
func NewTabs(opts ...TabsOption) *TabsState {
	cfg := tabsConfig{variant: TabsVariantDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &TabsState{cfg: cfg}
	if s.Controlled() {
		s.active = s.resolve(cfg.value)
	} else {
		s.active = s.resolve(cfg.defaultValue)
	}
	return s
}

// Controlled reports whether the selection is owned by the caller.
func (s *TabsState) Controlled() bool {
	return s.cfg.onChange != nil
}

// Active returns the value of the active tab, or "" if no tab can be
// selected.
func (s *TabsState) Active() string {
	return s.active
}

// Select activates the tab with the given value. Unknown and disabled tabs
// are rejected. Controlled tabs only report the request through the change
// callback. It returns whether the request was accepted.
func (s *TabsState) Select(value string) bool {
	item, ok := s.item(value)
	if !ok || item.Disabled {
		return false
	}
	if value == s.active {
		return true
	}
	if s.Controlled() {
		s.cfg.onChange(value)
		return true
	}
	s.active = value
	return true
}

// Sync sets the active tab of controlled tabs to the caller's value.
func (s *TabsState) Sync(value string) {
	if s.Controlled() {
		s.active = s.resolve(value)
	}
}

func (s *TabsState) item(value string) (TabItem, bool) {
	for _, tab := range s.cfg.tabs {
		if tab.Value == value {
			return tab, true
		}
	}
	return TabItem{}, false
}

// resolve returns value if it names an enabled tab, else the first enabled
// tab.
func (s *TabsState) resolve(value string) string {
	if item, ok := s.item(value); ok && !item.Disabled {
		return value
	}
	for _, tab := range s.cfg.tabs {
		if !tab.Disabled {
			return tab.Value
		}
	}
	return ""
}

const tabTriggerBase = "inline-flex items-center justify-center whitespace-nowrap rounded-sm px-3 py-1.5 text-sm font-medium ring-offset-background transition-all focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"

var tabsListClasses = map[TabsVariant]string{
	TabsVariantDefault:   "inline-flex h-10 items-center justify-center rounded-md bg-muted p-1 text-muted-foreground",
	TabsVariantPills:     "inline-flex h-10 items-center justify-center gap-2",
	TabsVariantUnderline: "inline-flex h-10 items-center gap-4 border-b",
}

func tabTriggerClasses(variant TabsVariant, active bool) string {
	switch variant {
	case TabsVariantPills:
		if active {
			return CN(tabTriggerBase, "bg-primary text-primary-foreground")
		}
		return CN(tabTriggerBase, "hover:bg-muted")
	case TabsVariantUnderline:
		if active {
			return CN(tabTriggerBase, "rounded-none border-b-2 border-primary text-foreground")
		}
		return CN(tabTriggerBase, "rounded-none border-b-2 border-transparent text-muted-foreground")
	default:
		if active {
			return CN(tabTriggerBase, "bg-background text-foreground shadow-sm")
		}
		return tabTriggerBase
	}
}

// Render renders the tab list and the active panel.
func (s *TabsState) Render() *vdom.VNode {
	listClasses, ok := tabsListClasses[s.cfg.variant]
	if !ok {
		listClasses = tabsListClasses[TabsVariantDefault]
	}

	triggers := []any{vdom.Class(listClasses), vdom.Role("tablist")}
	var panel *vdom.VNode

	for _, tab := range s.cfg.tabs {
		isActive := tab.Value == s.active

		state := "inactive"
		if isActive {
			state = "active"
		}

		attrs := []any{
			vdom.Type("button"),
			vdom.Role("tab"),
			vdom.Class(tabTriggerClasses(s.cfg.variant, isActive)),
			vdom.Data("state", state),
			vdom.Data("value", tab.Value),
			vdom.AriaSelected(isActive),
		}
		if tab.Disabled {
			attrs = append(attrs, vdom.Disabled(), vdom.AriaDisabled(true))
		} else {
			value := tab.Value
			attrs = append(attrs, vdom.OnClick(func() { s.Select(value) }))
		}
		if tab.Icon != nil {
			attrs = append(attrs, vdom.Span(vdom.Class("mr-2"), tab.Icon))
		}
		attrs = append(attrs, vdom.Text(tab.Label))

		triggers = append(triggers, vdom.Button(attrs...))

		if isActive && tab.Content != nil {
			panel = vdom.Div(
				vdom.Role("tabpanel"),
				vdom.Class("mt-2 ring-offset-background focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2"),
				vdom.Data("state", "active"),
				tab.Content,
			)
		}
	}

	return vdom.Div(
		vdom.Class(CN("w-full", s.cfg.className)),
		vdom.Data("variant", string(s.cfg.variant)),
		vdom.Div(triggers...),
		panel,
	)
}
