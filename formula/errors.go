package formula

import "github.com/pkg/errors"

// auxPrefix marks names reserved for Tseytin's auxiliary variables. Any
// caller-supplied Variable name starting with this prefix is rejected.
const auxPrefix = "__ts_"

// ReservedNameError is returned when a caller tries to create a Variable
// whose name either begins with the Tseytin auxiliary prefix or has the
// shape intvar's EqConstTerm uses to encode integer-variable equality
// ("<name>==<value>"), so it could be mistaken for that encoding.
type ReservedNameError struct {
	Name string
}

func (e *ReservedNameError) Error() string {
	return errors.Errorf("variable name %q is reserved", e.Name).Error()
}

func newReservedName(name string) error {
	return errors.WithStack(&ReservedNameError{Name: name})
}
