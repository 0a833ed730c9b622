// Package widgets models the storefront's page widgets as small state
// values: the trends carousel, the product thumbnail gallery, the checkout
// path panels and the add-to-cart flight. Each type exposes transitions and a
// View describing what should be visible or active; applying a View to a
// document is left to package page.
package widgets
