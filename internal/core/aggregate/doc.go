// Package aggregate turns raw collections fetched from the backend into the
// derived views shown on the dashboard, booking history, catalog and admin pages.
//
// Every function is pure: the same input yields the same output, inputs are
// never mutated, and time is always passed in by the caller.
package aggregate
