package page

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/config"
	"github.com/goliatone/go-techshop/pkg/fields"
	"github.com/goliatone/go-techshop/pkg/render/template"
	"github.com/goliatone/go-techshop/pkg/schedule"
)

// Option configures a Page.
type Option func(*Page)

// WithConfig replaces the default element contract and timings.
func WithConfig(cfg config.Config) Option {
	return func(p *Page) {
		p.cfg = cfg
	}
}

// WithScheduler replaces the realtime scheduler.
func WithScheduler(s schedule.Scheduler) Option {
	return func(p *Page) {
		if s != nil {
			p.sched = s
		}
	}
}

// WithLogger attaches a logger. Pages log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Page) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithGeometry replaces the data-rect geometry source.
func WithGeometry(g Geometry) Option {
	return func(p *Page) {
		if g != nil {
			p.geometry = g
		}
	}
}

// WithSubmitter performs deferred add-to-cart submissions. Without one the
// add-to-cart flourish still plays but the native submission is left to the
// host. When the cart icon or the product image is missing nothing animates,
// the submission is not cancelled and the host submits right away instead of
// after the delay.
//
// Submit runs with the page unlocked, so it may call back into the page, for
// example to show a confirmation. Listeners and the other scheduled
// callbacks run under the page lock and must not.
func WithSubmitter(s Submitter) Option {
	return func(p *Page) {
		p.submitter = s
	}
}

// WithMessages overrides the inline error copy.
func WithMessages(m fields.Messages) Option {
	return func(p *Page) {
		p.messages = m.WithDefaults()
	}
}

// WithTheme resolves style tokens from manifest instead of the built-in
// techshop theme. The variant comes from the configuration.
func WithTheme(manifest *theme.Manifest) Option {
	return func(p *Page) {
		p.manifest = manifest
	}
}

// WithRenderer replaces the embedded snippet templates.
func WithRenderer(r template.TemplateRenderer) Option {
	return func(p *Page) {
		if r != nil {
			p.renderer = r
		}
	}
}
