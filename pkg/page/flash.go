package page

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/render/template"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// ShowConfirmation prepends a success flash to the flash container and
// removes it after the flash timeout.
func (p *Page) ShowConfirmation(message string) error {
	return p.flash(FlashSuccess, message)
}

// ShowError prepends an error flash to the flash container and removes it
// after the flash timeout.
func (p *Page) ShowError(message string) error {
	return p.flash(FlashError, message)
}

func (p *Page) flash(kind, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	container := p.doc.Find(p.cfg.Selectors.FlashContainer).First()
	if container.Length() == 0 {
		p.logger.Debug("flash container not found",
			zap.String("selector", p.cfg.Selectors.FlashContainer),
		)
		return nil
	}

	markup, err := p.renderer.RenderTemplate(template.FlashTemplate, template.FlashData{
		Kind:    kind,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("page: render flash: %w", err)
	}
	nodes, err := fragment(markup)
	if err != nil {
		return fmt.Errorf("page: parse flash: %w", err)
	}
	container.PrependNodes(nodes...)

	p.after(p.cfg.Timings.Flash, func() {
		for _, n := range nodes {
			if p.attached(n) {
				detach(n)
			}
		}
	})
	return nil
}
