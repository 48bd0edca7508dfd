package popover

import (
	"log/slog"
	"time"

	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/vango"
)

// DefaultHoverCloseDelay is how long a hover popover stays open after the
// pointer has left both trigger and content.
const DefaultHoverCloseDelay = 150 * time.Millisecond

// Option configures a Controller.
type Option func(*config)

type config struct {
	id              string
	placement       Placement
	trigger         Trigger
	disabled        bool
	defaultOpen     bool
	open            *bool
	onOpenChange    func(bool)
	hoverCloseDelay time.Duration
	scheduler       vango.Scheduler
	document        *dom.Document
	owner           *vango.Owner
	metrics         *Metrics
	logger          *slog.Logger
}

func defaultConfig() config {
	return config{
		placement:       Placement{Side: SideBottom, Align: AlignCenter},
		trigger:         TriggerClick,
		hoverCloseDelay: DefaultHoverCloseDelay,
	}
}

// WithID sets the DOM id of the content, referenced by aria-controls on
// the trigger.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithSide sets the side of the trigger the content is placed on.
func WithSide(side Side) Option {
	return func(c *config) {
		c.placement.Side = side
	}
}

// WithAlign sets the alignment of the content along the trigger edge.
func WithAlign(align Align) Option {
	return func(c *config) {
		c.placement.Align = align
	}
}

// WithOffset sets the gap between trigger and content in pixels.
func WithOffset(px float64) Option {
	return func(c *config) {
		c.placement.Offset = px
	}
}

// WithPlacement sets side, align and offset at once.
func WithPlacement(p Placement) Option {
	return func(c *config) {
		c.placement = p
	}
}

// WithTrigger sets the trigger mode. It cannot be changed later.
func WithTrigger(t Trigger) Option {
	return func(c *config) {
		c.trigger = t
	}
}

// WithDisabled sets the initial disabled flag.
func WithDisabled(disabled bool) Option {
	return func(c *config) {
		c.disabled = disabled
	}
}

// WithDefaultOpen opens an uncontrolled popover at mount. For a controlled
// popover it seeds the displayed state only when WithOpen is not given.
func WithDefaultOpen(open bool) Option {
	return func(c *config) {
		c.defaultOpen = open
	}
}

// WithOpen supplies the externally owned open value of a controlled
// popover at mount. Ignored without WithOnOpenChange.
func WithOpen(open bool) Option {
	return func(c *config) {
		c.open = &open
	}
}

// WithOnOpenChange makes the popover controlled: state changes are
// requested through fn and take effect when the new value is passed to
// Controller.Sync.
func WithOnOpenChange(fn func(open bool)) Option {
	return func(c *config) {
		c.onOpenChange = fn
	}
}

// WithHoverCloseDelay sets the hover close delay. Non-positive values
// keep the default.
func WithHoverCloseDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.hoverCloseDelay = d
		}
	}
}

// WithScheduler sets the scheduler used for the hover close delay. Its
// callbacks must run on the goroutine that drives the Controller.
func WithScheduler(s vango.Scheduler) Option {
	return func(c *config) {
		c.scheduler = s
	}
}

// WithDocument sets the document the dismissal listener subscribes to.
func WithDocument(doc *dom.Document) Option {
	return func(c *config) {
		c.document = doc
	}
}

// WithOwner ties the Controller to owner: it is disposed with the owner,
// and a missing scheduler or document is looked up on the owner tree.
func WithOwner(owner *vango.Owner) Option {
	return func(c *config) {
		c.owner = owner
	}
}

// WithMetrics records transitions and dismissals on m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
