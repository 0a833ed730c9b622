package page

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/styles"
	"github.com/goliatone/go-techshop/pkg/widgets"
)

type carouselBinding struct {
	root   *goquery.Selection
	slides *goquery.Selection
	prev   *goquery.Selection
	next   *goquery.Selection
	state  widgets.Carousel
}

func (p *Page) bindCarousels() {
	sel := p.cfg.Selectors
	p.doc.Find(sel.Carousel).Each(func(i int, root *goquery.Selection) {
		b := &carouselBinding{
			root:   root,
			slides: root.Find(sel.Slide),
			prev:   root.Find(sel.CarouselPrev).First(),
			next:   root.Find(sel.CarouselNext).First(),
		}
		b.state = widgets.NewCarousel(b.slides.Length())
		p.carousels = append(p.carousels, b)
		p.renderCarousel(b)

		if !b.state.Enabled() {
			p.logger.Debug("carousel navigation disabled",
				zap.Int("carousel", i),
				zap.Int("slides", b.slides.Length()),
			)
			return
		}
		if b.prev.Length() > 0 {
			p.on(b.prev.Get(0), EventClick, func(*Event) {
				b.state = b.state.Prev()
				p.renderCarousel(b)
			})
		}
		if b.next.Length() > 0 {
			p.on(b.next.Get(0), EventClick, func(*Event) {
				b.state = b.state.Next()
				p.renderCarousel(b)
			})
		}
	})
}

func (p *Page) renderCarousel(b *carouselBinding) {
	view := b.state.View()
	if view.ControlsDisabled {
		b.prev.SetAttr("disabled", "true")
		b.next.SetAttr("disabled", "true")
	}
	active := p.tokens.Get(styles.TokenActiveClass)
	b.slides.Each(func(i int, slide *goquery.Selection) {
		if i >= len(view.Slides) {
			return
		}
		if view.Slides[i].Active {
			slide.AddClass(active)
		} else {
			slide.RemoveClass(active)
		}
		slide.SetAttr("aria-hidden", strconv.FormatBool(view.Slides[i].Hidden))
	})
}
