// Package settings registers admin-editable options, renders their form
// markup and emits the verification meta tag into the page head.
package settings

// OptionStore persists option values by key. A key that was never set reads
// back as "" with a nil error.
type OptionStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
