// Package fields holds the storefront's form field rules: checkout
// credentials, shipping address, cart quantities and the registration
// identity document. Single-field validators return a bool; the form helpers
// collect one message per failing field in a Report.
package fields
