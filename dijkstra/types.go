// Package dijkstra defines configuration options for the shortest-path engine.
//
// Options:
//
//	– MaxDistance: optional cap; nodes whose tentative distance exceeds it are
//	               never queued nor finalized.
//	– EarlyExit:   ShortestPath stops once the goal is finalized (default true).
//	– OnFinalize:  hook called each time a node's distance becomes final.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/distance"
)

// ErrBadMaxDistance indicates MaxDistance was set below the zero distance.
// Raised via panic by WithMaxDistance, like other option argument errors.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Options configures a single engine run.
type Options[D distance.Distance[D]] struct {
	MaxDistance    D    // valid only when HasMaxDistance
	HasMaxDistance bool // whether MaxDistance applies
	EarlyExit      bool // ShortestPath stops when the goal is finalized

	// OnFinalize is called once per finalized node, in finalization order.
	// The source is reported first with the zero distance.
	OnFinalize func(id core.NodeID, d D)
}

// Option represents a functional option for configuring the engine.
type Option[D distance.Distance[D]] func(*Options[D])

// DefaultOptions returns the defaults: no distance cap, early exit on, no-op hook.
func DefaultOptions[D distance.Distance[D]]() Options[D] {
	return Options[D]{
		EarlyExit:  true,
		OnFinalize: func(core.NodeID, D) {},
	}
}

// WithMaxDistance caps exploration at limit.
// Panics with ErrBadMaxDistance if limit orders before the zero distance.
func WithMaxDistance[D distance.Distance[D]](limit D) Option[D] {
	return func(o *Options[D]) {
		if distance.Less(limit, distance.Zero[D]()) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
		o.HasMaxDistance = true
	}
}

// WithoutEarlyExit makes ShortestPath finalize every reachable node before
// returning. Tree never exits early regardless of this option.
func WithoutEarlyExit[D distance.Distance[D]]() Option[D] {
	return func(o *Options[D]) {
		o.EarlyExit = false
	}
}

// WithOnFinalize registers a hook run when a node's distance becomes final.
// A nil fn is ignored.
func WithOnFinalize[D distance.Distance[D]](fn func(id core.NodeID, d D)) Option[D] {
	return func(o *Options[D]) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}
