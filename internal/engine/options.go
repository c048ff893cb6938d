package engine

import (
	"time"

	"github.com/RicGue02/LifeOS/internal/logger"
)

type options struct {
	log     *logger.Logger
	loc     *time.Location
	now     func() time.Time
	events  *Events
	gateway Gateway
}

type Option func(*options)

func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithLocation sets the timezone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithEvents shares one observer list between components.
func WithEvents(e *Events) Option {
	return func(o *options) { o.events = e }
}

// WithGateway overrides the snapshot store used by NewService.
func WithGateway(g Gateway) Option {
	return func(o *options) { o.gateway = g }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	if o.loc == nil {
		o.loc = time.Local
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.events == nil {
		o.events = NewEvents()
	}
	return o
}
