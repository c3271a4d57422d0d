//go:build !gpu

package offload

import (
	"context"
	"errors"
)

const available = false

var errNoBackend = errors.New("offload: built without the gpu build tag")

func newBackend() (Backend, error) {
	return nil, errNoBackend
}

// stubBackend implements Backend by failing every call with errNoBackend.
// Nothing in the package uses it; newBackend never returns it.
type stubBackend struct{}

func (stubBackend) Ship(context.Context, []Point, []int32, []int32) error {
	return errNoBackend
}

func (stubBackend) Run(context.Context) ([]int64, error) {
	return nil, errNoBackend
}
