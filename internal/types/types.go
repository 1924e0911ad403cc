package types

// Category identifies an energy source or data series (e.g. "solar",
// "thermal_coal", "demand"). It is the key used for styling and labeling.
type Category string

// Class is the classification a category belongs to.
type Class string

const (
	ClassRenewable    Class = "renewable"
	ClassNonRenewable Class = "non_renewable"
	ClassMisc         Class = "misc"
)

// Color is a chart color value: a named CSS color ("gold") or a hex string
// ("#FF0000").
type Color string

// Locale selects a label table. Only "en" and "jp" are known.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJP Locale = "jp"
)

// Region is a grid-area identifier used to scope displayed data.
type Region string

func (c Category) String() string { return string(c) }
func (c Color) String() string    { return string(c) }
func (l Locale) String() string   { return string(l) }
func (r Region) String() string   { return string(r) }
