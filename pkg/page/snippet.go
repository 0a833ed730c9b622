package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-techshop/pkg/render/template"
	"github.com/goliatone/go-techshop/pkg/styles"
)

// fragment parses rendered snippet markup in a div context.
func fragment(markup string) ([]*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func firstElement(nodes []*html.Node) *html.Node {
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

func (p *Page) errorClass() string {
	return p.cfg.Selectors.FieldErrorClass
}

// showFieldError places one message element right after field, replacing
// any previous one, and marks the field border.
func (p *Page) showFieldError(field *goquery.Selection, message string) {
	p.clearFieldError(field)

	nodes, err := p.renderFieldError(message)
	if err != nil {
		p.logger.Warn("render field error", zap.Error(err))
		nodes = []*html.Node{p.plainFieldError(message)}
	}
	field.AfterNodes(nodes...)
	setStyle(field, map[string]string{"border-color": p.tokens.Get(styles.TokenBorderInvalid)})
}

// clearFieldError removes the message following field and restores the
// neutral border.
func (p *Page) clearFieldError(field *goquery.Selection) {
	field.NextFiltered("." + p.errorClass()).Remove()
	setStyle(field, map[string]string{"border-color": p.tokens.Get(styles.TokenBorderValid)})
}

func (p *Page) renderFieldError(message string) ([]*html.Node, error) {
	markup, err := p.renderer.RenderTemplate(template.FieldErrorTemplate, template.FieldErrorData{
		Class:     p.errorClass(),
		Message:   message,
		Color:     p.tokens.Get(styles.TokenErrorColor),
		FontSize:  p.tokens.Get(styles.TokenErrorFontSize),
		MarginTop: p.tokens.Get(styles.TokenErrorMarginTop),
	})
	if err != nil {
		return nil, err
	}
	nodes, err := fragment(markup)
	if err != nil {
		return nil, fmt.Errorf("page: parse field error: %w", err)
	}
	if firstElement(nodes) == nil {
		return nil, errors.New("page: field error template rendered no element")
	}
	return nodes, nil
}

func (p *Page) plainFieldError(message string) *html.Node {
	div := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr: []html.Attribute{
			{Key: "class", Val: p.errorClass()},
			{Key: "style", Val: formatStyle([]declaration{
				{prop: "color", value: p.tokens.Get(styles.TokenErrorColor)},
				{prop: "font-size", value: p.tokens.Get(styles.TokenErrorFontSize)},
				{prop: "margin-top", value: p.tokens.Get(styles.TokenErrorMarginTop)},
			})},
		},
	}
	div.AppendChild(&html.Node{Type: html.TextNode, Data: message})
	return div
}
