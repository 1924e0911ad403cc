// Package core provides a small, stable facade over the legend registry for
// external integrations such as chart front-ends and report generators. It
// re-exports a narrow API surface so callers depend on a stable import path
// without reaching into internal packages.
//
// Example:
//
//	col, err := core.ColorFor("solar")
//	if err != nil { /* handle */ }
//	label, _ := core.LabelFor(core.LocaleJP, "solar")
//	_ = core.MarshalLegend(os.Stdout, core.Default())
package core
