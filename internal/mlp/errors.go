package mlp

import (
	"errors"
	"fmt"
)

// ErrWrongSize reports a network declared with fewer than two layers.
var ErrWrongSize = errors.New("mlp: network needs at least an input and an output layer")

// WrongLayerSizeError reports a declared layer with no units.
type WrongLayerSizeError struct {
	Layer int // Index of the offending layer.
}

func (e *WrongLayerSizeError) Error() string {
	return fmt.Sprintf("mlp: layer %d needs at least one unit", e.Layer)
}

// WrongInputSizeError reports an input vector whose length does not match
// the declared input layer size.
type WrongInputSizeError struct {
	Got  int
	Want int
}

func (e *WrongInputSizeError) Error() string {
	return fmt.Sprintf("mlp: got %d inputs, network expects %d", e.Got, e.Want)
}
