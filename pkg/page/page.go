package page

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/goliatone/go-techshop/pkg/config"
	"github.com/goliatone/go-techshop/pkg/fields"
	"github.com/goliatone/go-techshop/pkg/render/template"
	"github.com/goliatone/go-techshop/pkg/render/template/pongo"
	"github.com/goliatone/go-techshop/pkg/schedule"
	"github.com/goliatone/go-techshop/pkg/styles"
)

// ErrNilDocument is returned by New when no document is supplied.
var ErrNilDocument = errors.New("page: document is nil")

// Submitter performs the real submission of a form whose default submission
// was cancelled.
type Submitter interface {
	Submit(form *goquery.Selection)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(form *goquery.Selection)

// Submit implements Submitter.
func (f SubmitterFunc) Submit(form *goquery.Selection) { f(form) }

// Page is a document with the storefront widgets bound to it.
type Page struct {
	mu sync.Mutex

	doc       *goquery.Document
	cfg       config.Config
	sched     schedule.Scheduler
	logger    *zap.Logger
	geometry  Geometry
	submitter Submitter
	messages  fields.Messages
	manifest  *theme.Manifest
	tokens    styles.Tokens
	renderer  template.TemplateRenderer

	listeners map[*html.Node]map[string][]listener
	timers    map[uint64]schedule.Timer
	timerSeq  uint64
	closed    bool

	carousels  []*carouselBinding
	galleries  []*galleryBinding
	panels     *panelBinding
	checkout   *checkoutInputs
	quantities int
	cartForms  int
}

// Inventory counts the widgets bound to a page.
type Inventory struct {
	CheckoutForm   bool `json:"checkout_form"`
	QuantityInputs int  `json:"quantity_inputs"`
	Carousels      int  `json:"carousels"`
	Galleries      int  `json:"galleries"`
	AddToCartForms int  `json:"add_to_cart_forms"`
	CheckoutPanels bool `json:"checkout_panels"`
}

// New binds every widget found in doc. Missing optional elements skip
// their widget.
func New(doc *goquery.Document, options ...Option) (*Page, error) {
	if doc == nil || doc.Selection == nil {
		return nil, ErrNilDocument
	}

	p := &Page{
		doc:       doc,
		cfg:       config.Default(),
		sched:     schedule.Realtime{},
		logger:    zap.NewNop(),
		geometry:  AttrGeometry{},
		messages:  fields.DefaultMessages(),
		listeners: make(map[*html.Node]map[string][]listener),
		timers:    make(map[uint64]schedule.Timer),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}
	if p.renderer == nil {
		engine, err := pongo.New()
		if err != nil {
			return nil, fmt.Errorf("page: snippet renderer: %w", err)
		}
		p.renderer = engine
	}
	p.tokens = styles.Resolve(p.manifest, p.cfg.Theme.Variant)

	p.bindCheckoutForm()
	p.bindQuantityInputs()
	p.bindCarousels()
	p.bindGalleries()
	p.bindAddToCart()
	p.bindPanels()
	return p, nil
}

// Parse reads an HTML document and binds it.
func Parse(r io.Reader, options ...Option) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("page: parse document: %w", err)
	}
	return New(doc, options...)
}

// Document exposes the bound document. Callers must not mutate it while
// scheduled callbacks may run.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// Inventory reports what New found in the document.
func (p *Page) Inventory() Inventory {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Inventory{
		CheckoutForm:   p.checkout != nil,
		QuantityInputs: p.quantities,
		Carousels:      len(p.carousels),
		Galleries:      len(p.galleries),
		AddToCartForms: p.cartForms,
		CheckoutPanels: p.panels != nil,
	}
}

// Tokens returns the resolved style tokens.
func (p *Page) Tokens() styles.Tokens {
	return p.tokens
}

// HTML renders the current document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b strings.Builder
	if err := html.Render(&b, p.doc.Get(0)); err != nil {
		return "", fmt.Errorf("page: render: %w", err)
	}
	return b.String(), nil
}

// Render writes the current document to w.
func (p *Page) Render(w io.Writer) error {
	out, err := p.HTML()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Close stops every pending callback. Events dispatched afterwards are
// ignored.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	for id, t := range p.timers {
		t.Stop()
		delete(p.timers, id)
	}
}

// Dispatch delivers ev to the first node of target and reports whether the
// default action should proceed.
func (p *Page) Dispatch(target *goquery.Selection, ev Event) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || target == nil || target.Length() == 0 {
		return true
	}
	return p.dispatch(target.Get(0), &ev)
}

// Click dispatches a click on the first element matching selector.
func (p *Page) Click(selector string) bool {
	return p.fire(selector, Event{Type: EventClick}, nil)
}

// Submit dispatches a submit on the first form matching selector and
// reports whether the host should submit it natively.
func (p *Page) Submit(selector string) bool {
	return p.fire(selector, Event{Type: EventSubmit}, nil)
}

// Input sets the value of the first control matching selector and
// dispatches an input event.
func (p *Page) Input(selector, value string) bool {
	return p.fire(selector, Event{Type: EventInput}, func(s *goquery.Selection) {
		setControlValue(s, value)
	})
}

// MouseEnter dispatches mouseenter on the first element matching selector.
func (p *Page) MouseEnter(selector string) {
	p.fire(selector, Event{Type: EventMouseEnter}, nil)
}

// MouseLeave dispatches mouseleave on the first element matching selector.
func (p *Page) MouseLeave(selector string) {
	p.fire(selector, Event{Type: EventMouseLeave}, nil)
}

// Focus dispatches focus on the first element matching selector.
func (p *Page) Focus(selector string) {
	p.fire(selector, Event{Type: EventFocus}, nil)
}

// FocusOut dispatches focusout on the first element matching selector.
// related names the element gaining focus; empty means focus left the
// document.
func (p *Page) FocusOut(selector, related string) {
	p.mu.Lock()
	var relatedNode *html.Node
	if related != "" {
		if sel := p.doc.Find(related); sel.Length() > 0 {
			relatedNode = sel.Get(0)
		}
	}
	p.mu.Unlock()
	p.fire(selector, Event{Type: EventFocusOut, RelatedTarget: relatedNode}, nil)
}

func (p *Page) fire(selector string, ev Event, prepare func(*goquery.Selection)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return true
	}
	target := p.doc.Find(selector).First()
	if target.Length() == 0 {
		p.logger.Debug("event target not found",
			zap.String("event", ev.Type),
			zap.String("selector", selector),
		)
		return true
	}
	if prepare != nil {
		prepare(target)
	}
	return p.dispatch(target.Get(0), &ev)
}

// after schedules fn under the page lock. Callers hold p.mu.
func (p *Page) after(d time.Duration, fn func()) {
	p.afterThen(d, func() func() {
		fn()
		return nil
	})
}

// afterThen schedules fn under the page lock and then runs the function it
// returns, if any, with the lock released. Only that returned function may
// call back into the page. Callers hold p.mu.
func (p *Page) afterThen(d time.Duration, fn func() func()) {
	p.timerSeq++
	id := p.timerSeq
	p.timers[id] = p.sched.AfterFunc(d, func() {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			return
		}
		delete(p.timers, id)
		then := fn()
		p.mu.Unlock()

		if then != nil {
			then()
		}
	})
}

// attached reports whether n is still part of the document.
func (p *Page) attached(n *html.Node) bool {
	root := p.doc.Get(0)
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}

func detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func controlValue(s *goquery.Selection) string {
	if goquery.NodeName(s) == "textarea" {
		return s.Text()
	}
	return s.AttrOr("value", "")
}

func setControlValue(s *goquery.Selection, value string) {
	if goquery.NodeName(s) == "textarea" {
		s.SetText(value)
		return
	}
	s.SetAttr("value", value)
}
