package details

import (
	"errors"
	"fmt"

	"github.com/npillmayer/uistyle/dom"
)

// Error conditions of the styling core. Only resolver failures are returned
// from styling passes; the other conditions are recovered from locally.
var (
	ErrIdentityUnresolved = errors.New("style identity path cannot be resolved")
	ErrObserverTargetGone = errors.New("observed element has been released")
	ErrResolutionFailed   = errors.New("style resolution failed")
	ErrNoResolver         = errors.New("no style resolver configured")
	ErrElementReleased    = errors.New("element details have been released")
)

// ResolutionError is returned by styling passes when the cascade resolver
// fails for an element.
type ResolutionError struct {
	Node dom.NodeID
	Path string // identity path, if any
	Err  error  // error reported by the resolver
}

func (e *ResolutionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v for node %s: %v", ErrResolutionFailed, e.Node, e.Err)
	}
	return fmt.Sprintf("%v for node %s (%s): %v", ErrResolutionFailed, e.Node, e.Path, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Is makes every ResolutionError match ErrResolutionFailed.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolutionFailed
}
