package page

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/widgets"
)

type panelBinding struct {
	flow     widgets.CheckoutFlow
	sections map[widgets.Panel]*goquery.Selection
}

func (p *Page) bindPanels() {
	sel := p.cfg.Selectors
	choice := p.doc.Find(sel.CheckoutChoice).First()
	if choice.Length() == 0 {
		p.logger.Debug("checkout choice not found", zap.String("selector", sel.CheckoutChoice))
		return
	}

	b := &panelBinding{sections: map[widgets.Panel]*goquery.Selection{
		widgets.PanelChoice: choice,
	}}
	if login := p.doc.Find(sel.LoginSection).First(); login.Length() > 0 {
		b.sections[widgets.PanelLogin] = login
	}
	if guest := p.doc.Find(sel.GuestSection).First(); guest.Length() > 0 {
		b.sections[widgets.PanelGuest] = guest
	}
	p.panels = b

	wire := func(button string, panel widgets.Panel, step func(widgets.CheckoutFlow) widgets.CheckoutFlow) {
		btn := p.doc.Find(button).First()
		if btn.Length() == 0 || b.sections[panel] == nil {
			return
		}
		p.on(btn.Get(0), EventClick, func(*Event) {
			b.flow = step(b.flow)
			p.renderPanels(b)
		})
	}
	wire(sel.LoginButton, widgets.PanelLogin, widgets.CheckoutFlow.ChooseLogin)
	wire(sel.GuestButton, widgets.PanelGuest, widgets.CheckoutFlow.ChooseGuest)
	wire(sel.BackFromLogin, widgets.PanelLogin, widgets.CheckoutFlow.Back)
	wire(sel.BackFromGuest, widgets.PanelGuest, widgets.CheckoutFlow.Back)
}

func (p *Page) renderPanels(b *panelBinding) {
	vis := b.flow.Visibility()
	for panel, section := range b.sections {
		display := "none"
		if vis.Visible(panel) {
			display = "block"
		}
		setStyle(section, map[string]string{"display": display})
	}
}

// CheckoutPanel returns the visible checkout panel and whether the page has
// checkout panels at all.
func (p *Page) CheckoutPanel() (widgets.Panel, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.panels == nil {
		return widgets.PanelChoice, false
	}
	return p.panels.flow.Panel(), true
}
