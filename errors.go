package clearpass

import (
	"errors"
	"fmt"

	"github.com/gogpu/clearpass/render"
)

var (
	// ErrConfigMissing is returned when the world holds no *ClearColor
	// resource. It indicates a pipeline wiring bug.
	ErrConfigMissing = errors.New("clearpass: clear color configuration missing")

	// ErrNoEncoder is returned by Run when the render context carries no
	// command encoder.
	ErrNoEncoder = errors.New("clearpass: no command encoder")
)

// DestinationUnresolvedError reports a destination that must be cleared
// this frame but could not be resolved to a texture view.
type DestinationUnresolvedError struct {
	Destination render.Destination
	Err         error
}

func (e *DestinationUnresolvedError) Error() string {
	return fmt.Sprintf("clearpass: destination %s unresolved: %v", e.Destination, e.Err)
}

func (e *DestinationUnresolvedError) Unwrap() error {
	return e.Err
}
