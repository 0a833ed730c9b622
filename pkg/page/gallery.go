package page

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/goliatone/go-techshop/pkg/styles"
	"github.com/goliatone/go-techshop/pkg/widgets"
)

type galleryBinding struct {
	image   *goquery.Selection
	thumbs  *goquery.Selection
	wrapper *goquery.Selection
	state   widgets.Gallery
}

func (p *Page) bindGalleries() {
	sel := p.cfg.Selectors
	p.doc.Find(sel.ProductCard).Each(func(i int, card *goquery.Selection) {
		image := card.Find(sel.MainImage).First()
		thumbs := card.Find(sel.Thumb)
		if image.Length() == 0 || thumbs.Length() == 0 {
			p.logger.Debug("product gallery skipped",
				zap.Int("card", i),
				zap.Bool("image", image.Length() > 0),
				zap.Int("thumbs", thumbs.Length()),
			)
			return
		}

		defaultImage := image.AttrOr("data-default", "")
		if defaultImage == "" {
			defaultImage = image.AttrOr("src", "")
		}
		targets := make([]string, thumbs.Length())
		thumbs.Each(func(j int, thumb *goquery.Selection) {
			targets[j] = thumb.AttrOr("data-image", "")
		})

		b := &galleryBinding{
			image:   image,
			thumbs:  thumbs,
			wrapper: card.Find(sel.Gallery).First(),
			state:   widgets.NewGallery(defaultImage, targets),
		}
		p.galleries = append(p.galleries, b)

		thumbs.Each(func(j int, thumb *goquery.Selection) {
			if targets[j] == "" {
				return
			}
			show := func(*Event) {
				next, changed := b.state.Hover(j)
				if !changed {
					return
				}
				b.state = next
				p.renderGallery(b)
			}
			p.on(thumb.Get(0), EventMouseEnter, show)
			p.on(thumb.Get(0), EventFocus, show)
		})

		if b.wrapper.Length() == 0 {
			return
		}
		wrapper := b.wrapper.Get(0)
		p.on(wrapper, EventMouseLeave, func(*Event) {
			p.resetGallery(b)
		})
		p.on(wrapper, EventFocusOut, func(ev *Event) {
			related := ev.RelatedTarget
			if related != nil && (related == wrapper || b.wrapper.Contains(related)) {
				return
			}
			p.resetGallery(b)
		})
	})
}

func (p *Page) resetGallery(b *galleryBinding) {
	next := b.state.Leave()
	if next.Image() == b.state.Image() && next.Active() == b.state.Active() {
		return
	}
	b.state = next
	p.renderGallery(b)
}

func (p *Page) renderGallery(b *galleryBinding) {
	view := b.state.View()
	b.image.SetAttr("src", view.Image)
	active := p.tokens.Get(styles.TokenActiveClass)
	b.thumbs.Each(func(i int, thumb *goquery.Selection) {
		if i < len(view.Thumbs) && view.Thumbs[i] {
			thumb.AddClass(active)
		} else {
			thumb.RemoveClass(active)
		}
	})
}
