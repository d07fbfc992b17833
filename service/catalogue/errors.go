package catalogue

import "fmt"

// MissingReferenceError reports an unknown key in one of the reference tables
// (store index, category table, package sizes). Generation fails rather than
// substituting a default.
type MissingReferenceError struct {
	Kind string // "store", "category" or "unit"
	Key  string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing %s reference %q", e.Kind, e.Key)
}

// UnsupportedUnitError reports a unit outside the closed set. Unreachable as
// long as the package-size table only carries known units, but conversion must
// fail loudly rather than pick a rule.
type UnsupportedUnitError struct {
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("unsupported unit %q", e.Unit)
}
