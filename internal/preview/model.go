package preview

import (
	"log/slog"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/popover"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
	triggerRow    = 8
	boxHeight     = 3
)

// Item describes one popover on the canvas.
type Item struct {
	Label   string
	Body    string
	Options []popover.Option
}

// Options configures a Model.
type Options struct {
	// Items defaults to a click popover and a hover popover.
	Items []Item

	// Popover options applied to every item before its own.
	Popover []popover.Option

	// Scheduler overrides the hover timer scheduler. By default timer
	// callbacks are delivered to the program as messages.
	Scheduler vango.Scheduler

	Logger *slog.Logger
}

// DefaultItems returns the demo items.
func DefaultItems() []Item {
	return []Item{
		{Label: "Click me", Body: "Opened by click. Esc or click outside closes.", Options: []popover.Option{popover.WithTrigger(popover.TriggerClick)}},
		{Label: "Hover me", Body: "Stays open while hovered.", Options: []popover.Option{
			popover.WithTrigger(popover.TriggerHover),
			popover.WithSide(popover.SideTop),
		}},
	}
}

type entry struct {
	item Item
	pop  *popover.Controller

	trigger popover.Rect
	content popover.Rect

	triggerHID string
	contentHID string

	// Pointer state as last reported to the controller.
	overTrigger bool
	overContent bool
}

// taskMsg carries a scheduler callback into the program.
type taskMsg struct{ fn func() }

// Model is the bubbletea model of the preview.
type Model struct {
	owner   *vango.Owner
	doc     *dom.Document
	entries []*entry
	tasks   chan func()

	width, height int
	focus         int

	styles styles
}

type styles struct {
	trigger lipgloss.Style
	open    lipgloss.Style
	content lipgloss.Style
	help    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		trigger: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		open:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		content: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// New creates a Model. Close it with Dispose.
func New(opts Options) *Model {
	m := &Model{
		owner:  vango.NewOwner(nil),
		doc:    dom.NewDocument(),
		tasks:  make(chan func(), 16),
		width:  defaultWidth,
		height: defaultHeight,
		focus:  -1,
		styles: defaultStyles(),
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = vango.NewScheduler(vango.DispatcherFunc(func(fn func()) { m.tasks <- fn }))
	}
	dom.DocumentContext.Provide(m.owner, m.doc)
	vango.SchedulerContext.Provide(m.owner, sched)

	items := opts.Items
	if len(items) == 0 {
		items = DefaultItems()
	}

	x := 4
	for _, it := range items {
		popOpts := slices.Concat(opts.Popover, it.Options, []popover.Option{popover.WithOwner(m.owner)})
		if opts.Logger != nil {
			popOpts = append(popOpts, popover.WithLogger(opts.Logger))
		}
		e := &entry{
			item: it,
			pop:  popover.New(popOpts...),
			trigger: popover.Rect{
				X: float64(x), Y: triggerRow,
				Width: float64(lipgloss.Width(it.Label) + 4), Height: boxHeight,
			},
		}
		m.entries = append(m.entries, e)
		x += int(e.trigger.Width) + 16
	}

	m.layout()
	return m
}

// Dispose disposes every popover.
func (m *Model) Dispose() {
	m.owner.Dispose()
}

// Document returns the document events are published to.
func (m *Model) Document() *dom.Document { return m.doc }

// Popover returns the controller of the i-th item.
func (m *Model) Popover(i int) *popover.Controller { return m.entries[i].pop }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.listen()
}

func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		return taskMsg{fn: <-m.tasks}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		msg.fn()
		m.layout()
		return m, m.listen()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.Dispose()
			return m, tea.Quit
		case "esc":
			m.doc.Publish(dom.Event{Type: dom.KeyDown, Key: dom.KeyEscape, Target: m.focusedHID()})
		case "tab":
			m.moveFocus(1)
		case "shift+tab":
			m.moveFocus(-1)
		case "enter", " ":
			if m.focus >= 0 {
				e := m.entries[m.focus]
				e.pop.HandleEvent(popover.RegionTrigger, dom.Event{Type: dom.Click, Target: e.triggerHID})
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.layout()
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt := popover.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.pointerMoved(pt)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pointerMoved(pt)
		target, e, region := m.hit(pt)
		m.doc.Publish(dom.Event{Type: dom.PointerDown, Target: target, Button: dom.ButtonPrimary, X: pt.X, Y: pt.Y})
		if e != nil && region == popover.RegionTrigger {
			e.pop.HandleEvent(region, dom.Event{Type: dom.Click, Target: target, Button: dom.ButtonPrimary})
		}
	}
}

// pointerMoved reports enter and leave transitions per region.
func (m *Model) pointerMoved(pt popover.Point) {
	for _, e := range m.entries {
		inTrigger := e.trigger.Contains(pt)
		inContent := e.contentHID != "" && e.content.Contains(pt)

		if inTrigger != e.overTrigger {
			e.overTrigger = inTrigger
			e.pop.HandleEvent(popover.RegionTrigger, crossing(inTrigger, e.triggerHID))
		}
		if inContent != e.overContent {
			e.overContent = inContent
			e.pop.HandleEvent(popover.RegionContent, crossing(inContent, e.contentHID))
		}
	}
}

func crossing(enter bool, hid string) dom.Event {
	if enter {
		return dom.Event{Type: dom.PointerEnter, Target: hid}
	}
	return dom.Event{Type: dom.PointerLeave, Target: hid}
}

// hit returns the element under pt. Open content is drawn above triggers.
func (m *Model) hit(pt popover.Point) (string, *entry, popover.Region) {
	for _, e := range m.entries {
		if e.contentHID != "" && e.content.Contains(pt) {
			return e.contentHID, e, popover.RegionContent
		}
	}
	for _, e := range m.entries {
		if e.trigger.Contains(pt) {
			return e.triggerHID, e, popover.RegionTrigger
		}
	}
	return "", nil, popover.RegionTrigger
}

func (m *Model) moveFocus(delta int) {
	n := len(m.entries)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.doc.Publish(dom.Event{Type: dom.FocusIn, Target: m.focusedHID()})
}

func (m *Model) focusedHID() string {
	if m.focus < 0 || m.focus >= len(m.entries) {
		return ""
	}
	return m.entries[m.focus].triggerHID
}

// layout renders every popover into a tree so hit testing sees current
// roots, and recomputes content geometry.
func (m *Model) layout() {
	nodes := make([]any, 0, len(m.entries))
	for _, e := range m.entries {
		size := popover.Size{Width: float64(lipgloss.Width(e.item.Body) + 4), Height: boxHeight}
		e.pop.SetGeometry(e.trigger, size)
		nodes = append(nodes, popover.Render(e.pop,
			vdom.Span(vdom.Text(e.item.Label)),
			vdom.P(vdom.Text(e.item.Body)),
		))
	}
	root := vdom.Div(nodes...)
	vdom.AssignHIDs(root, vdom.NewHIDGenerator())

	for i, e := range m.entries {
		wrapper := root.Children[i]
		e.triggerHID = wrapper.Children[0].HID
		e.contentHID = ""
		if len(wrapper.Children) > 1 {
			e.contentHID = wrapper.Children[1].HID
			pt, _ := e.pop.Position()
			size := popover.Size{Width: float64(lipgloss.Width(e.item.Body) + 4), Height: boxHeight}
			e.content = popover.Rect{X: math.Round(pt.X), Y: math.Round(pt.Y), Width: size.Width, Height: size.Height}
		} else {
			e.overContent = false
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	c := newCanvas(m.width, m.height)

	for i, e := range m.entries {
		st := m.styles.trigger
		if e.pop.IsOpen() || i == m.focus {
			st = m.styles.open
		}
		c.box(e.trigger, e.item.Label, st)
	}
	for _, e := range m.entries {
		if e.contentHID != "" {
			c.box(e.content, e.item.Body, m.styles.content)
		}
	}

	help := m.styles.help.Render("mouse: hover/click  tab: focus  enter: activate  esc: dismiss  q: quit")
	return c.String() + "\n" + help
}

// canvas is a grid of styled cells.
type canvas struct {
	w, h  int
	cells [][]string
}

func newCanvas(w, h int) *canvas {
	cells := make([][]string, h)
	for y := range cells {
		cells[y] = make([]string, w)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, s string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = s
}

// box draws a rounded border around a single line of text.
func (c *canvas) box(r popover.Rect, text string, st lipgloss.Style) {
	b := lipgloss.RoundedBorder()
	x0, y0 := int(r.X), int(r.Y)
	w := int(r.Width)

	c.set(x0, y0, st.Render(b.TopLeft))
	c.set(x0+w-1, y0, st.Render(b.TopRight))
	c.set(x0, y0+2, st.Render(b.BottomLeft))
	c.set(x0+w-1, y0+2, st.Render(b.BottomRight))
	for x := x0 + 1; x < x0+w-1; x++ {
		c.set(x, y0, st.Render(b.Top))
		c.set(x, y0+2, st.Render(b.Bottom))
		c.set(x, y0+1, " ")
	}
	c.set(x0, y0+1, st.Render(b.Left))
	c.set(x0+w-1, y0+1, st.Render(b.Right))

	x := x0 + 2
	for _, r := range text {
		c.set(x, y0+1, st.Render(string(r)))
		x++
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// Run starts the preview program with mouse motion reporting.
func Run(opts Options) error {
	m := New(opts)
	defer m.Dispose()
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
