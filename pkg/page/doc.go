// Package page binds the storefront widgets to a parsed HTML document.
//
// A Page owns a goquery document and reacts to synthetic events (click,
// submit, input, mouseenter, mouseleave, focus, focusout) the way the
// storefront script reacts to browser events. Widget state lives in package
// widgets; this package locates the elements, routes events, schedules the
// delayed callbacks and writes the resulting attributes, classes and inline
// styles back into the document.
//
// A Page is meant to be driven from one goroutine. Scheduled callbacks take
// the page lock, so the realtime scheduler is safe to use as well.
package page
