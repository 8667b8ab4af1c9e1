// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is core.ErrVertexNotFound, returned for an absent source or target.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrNegativeWeight indicates a negative edge weight under WithValidateWeights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive or NaN InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of Dijkstra.
type Options struct {
	// Source is the start vertex.
	Source string
	// Target, if non-empty, stops the search once this vertex is settled.
	Target string
	// ReturnPath makes Dijkstra return the predecessor map.
	ReturnPath bool
	// MaxDistance caps the distances explored. Default +Inf.
	MaxDistance float64
	// InfEdgeThreshold marks edges with weight >= threshold as impassable. Default +Inf.
	InfEdgeThreshold float64
	// ValidateWeights enables the negative-weight pre-scan.
	ValidateWeights bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start vertex.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget sets a destination for early exit.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance; vertices farther away are not settled.
// A negative or NaN value makes Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight >= threshold as a wall.
// A non-positive or NaN value makes Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.err = fmt.Errorf("%w: got %g", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithValidateWeights rejects graphs containing negative weights with ErrNegativeWeight.
func WithValidateWeights() Option {
	return func(o *Options) {
		o.ValidateWeights = true
	}
}

// DefaultOptions returns Options for the given source with no path map,
// no target, no distance cap and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
