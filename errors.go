package initval

import (
	"fmt"

	"github.com/groblegark/initval/param"
)

// InvalidAppNameError reports an application name shorter than the
// minimum length. It is returned before any database call.
type InvalidAppNameError struct {
	Name string
}

func (e *InvalidAppNameError) Error() string {
	return fmt.Sprintf("application name %q is too short (minimum %d characters)", e.Name, minAppNameLen)
}

// UnknownAppError reports an application name absent from the backing
// store. Known lists every distinct stored name, sorted.
type UnknownAppError struct {
	Name  string
	Known []string
}

func (e *UnknownAppError) Error() string {
	return fmt.Sprintf("unknown application %q: must be one of %v", e.Name, e.Known)
}

// AttributeError reports read access to a parameter name that was not
// loaded.
type AttributeError struct {
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("configuration has no parameter %q", e.Name)
}

// KindMismatchError reports a typed accessor called on a parameter of a
// different kind.
type KindMismatchError struct {
	Name string
	Want param.Kind
	Got  param.Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("parameter %q is %s, not %s", e.Name, e.Got, e.Want)
}
