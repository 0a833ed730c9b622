package page

import (
	"golang.org/x/net/html"
)

// Event types routed by a Page.
const (
	EventClick      = "click"
	EventSubmit     = "submit"
	EventInput      = "input"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventFocus      = "focus"
	EventFocusOut   = "focusout"
)

// Event is a synthetic DOM event. Target and CurrentTarget are filled in
// during dispatch.
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
	// RelatedTarget is the node receiving focus on focusout, nil when focus
	// leaves the document.
	RelatedTarget *html.Node

	defaultPrevented bool
	stopped          bool
}

// PreventDefault cancels the host's default action.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener cancelled the default action.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from reaching ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

type listener func(ev *Event)

func bubbles(eventType string) bool {
	switch eventType {
	case EventMouseEnter, EventMouseLeave, EventFocus:
		return false
	default:
		return true
	}
}

func (p *Page) on(n *html.Node, eventType string, fn listener) {
	if n == nil || fn == nil {
		return
	}
	byType, ok := p.listeners[n]
	if !ok {
		byType = make(map[string][]listener)
		p.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], fn)
}

// dispatch walks from target to the root, calling listeners. Callers hold
// p.mu.
func (p *Page) dispatch(target *html.Node, ev *Event) bool {
	ev.Target = target
	for n := target; n != nil; n = n.Parent {
		ev.CurrentTarget = n
		for _, fn := range p.listeners[n][ev.Type] {
			fn(ev)
		}
		if ev.stopped || !bubbles(ev.Type) {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}
