package page

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/styles"
	"github.com/goliatone/go-techshop/pkg/widgets"
)

func (p *Page) bindAddToCart() {
	sel := p.cfg.Selectors
	p.doc.Find(sel.AddToCart).Each(func(_ int, form *goquery.Selection) {
		p.cartForms++
		p.on(form.Get(0), EventSubmit, func(ev *Event) {
			p.addToCart(form, ev)
		})
	})
}

// addToCart plays the fly-to-cart flourish. The default submission is only
// cancelled when a Submitter will perform it later; when the cart icon or
// the product image is missing nothing is cancelled and the host submits
// right away.
func (p *Page) addToCart(form *goquery.Selection, ev *Event) {
	sel := p.cfg.Selectors
	cart := p.doc.Find(sel.CartIcon).First()
	image := form.Closest(sel.ProductCard).Find(sel.MainImage).First()
	if cart.Length() == 0 || image.Length() == 0 {
		p.logger.Debug("add to cart without flourish",
			zap.Bool("cart_icon", cart.Length() > 0),
			zap.Bool("product_image", image.Length() > 0),
		)
		return
	}

	flight := widgets.PlanFlight(p.geometry.Rect(image), p.geometry.Rect(cart))

	clone := image.Clone()
	clone.RemoveAttr("id")
	clone.AddClass(p.tokens.Get(styles.TokenFlyingClass))
	setStyle(clone, flight.StartStyle())
	p.doc.Find("body").First().AppendSelection(clone)
	flying := clone.Get(0)

	// Next frame: the transition runs from the start box to the cart.
	p.after(0, func() {
		if p.attached(flying) {
			setStyle(clone, flight.EndStyle())
		}
	})

	bump := p.tokens.Get(styles.TokenBumpClass)
	cart.AddClass(bump)
	p.after(p.cfg.Timings.Cleanup, func() {
		detach(flying)
		cart.RemoveClass(bump)
	})

	if p.submitter == nil {
		return
	}
	ev.PreventDefault()
	submitter := p.submitter
	p.afterThen(p.cfg.Timings.Submit, func() func() {
		if !p.attached(form.Get(0)) {
			p.logger.Debug("add to cart form removed before submission")
			return nil
		}
		return func() { submitter.Submit(form) }
	})
}
