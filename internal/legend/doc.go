// Package legend holds the dashboard's legend tables: energy-source
// categories by classification, series colors, English/Japanese labels and
// the region list. Tables are built once and never mutated; a Registry can
// be shared by any number of goroutines.
//
// Lookups that miss return ErrUnknownCategory, ErrUnknownLocale or
// ErrUnknownKey wrapped with the offending value. A label missing from the
// requested locale falls back to the fallback locale ("en") unless the
// registry was built with StrictLabels.
package legend
