package normaliser

import "time"

// Identity is the pass-through normaliser. Unlike Normaliser it is
// deliberately loose: values travel through unchanged, nil included, and the
// output type mirrors the input type. It exists for fields that must not be
// touched at all and therefore does not implement the string-returning
// pipeline.
type Identity struct{}

// Input returns raw unchanged.
func (Identity) Input(raw any) any { return raw }

// Output returns stored unchanged.
func (Identity) Output(stored any) any { return stored }

// Date formats stored dates for display. Input passes values through
// unchanged so the storage layer keeps its native date representation;
// Output renders time.Time values using Layout and coerces anything else to
// a string as-is.
type Date struct {
	Layout string
}

// NewDate builds a Date normaliser. An empty layout defaults to the
// Brazilian day/month/year convention.
func NewDate(layout string) Date {
	if layout == "" {
		layout = "02/01/2006"
	}
	return Date{Layout: layout}
}

// Input returns raw unchanged.
func (Date) Input(raw any) any { return raw }

// Output formats time values with the configured layout and passes other
// values through as their string form.
func (d Date) Output(stored any) string {
	switch t := stored.(type) {
	case time.Time:
		return t.Format(d.Layout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(d.Layout)
	default:
		return Coerce(stored)
	}
}
