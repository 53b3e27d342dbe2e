// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Dataset records, merged stops, routes and sentinel errors.

package transit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for dataset loading and route queries.
var (
	// ErrEmptyDataset indicates a dataset without any station record.
	ErrEmptyDataset = errors.New("transit: dataset has no stations")

	// ErrUnknownStation indicates a record referencing a station id that no
	// record defines (next, previous or same-line continuation).
	ErrUnknownStation = errors.New("transit: reference to unknown station")

	// ErrStationNotFound indicates a query matching no stop by id or name.
	ErrStationNotFound = errors.New("transit: station not found")

	// ErrNoRoute indicates that the destination is unreachable from the origin.
	ErrNoRoute = errors.New("transit: no route between stations")
)

// Station is one record of the dataset: a station as served by one line.
// The same physical station appears once per line, linked by TransferStationIDs.
type Station struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Line               string   `json:"line"`
	NextStationID      string   `json:"nextStationId,omitempty"`     // towards the line's end; "" at the terminus
	PreviousStationID  string   `json:"previousStationId,omitempty"` // towards the line's start; "" at the terminus
	TransferStationIDs []string `json:"transferStationIds"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
}

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Stop is a physical station after transfer records are merged.
// It is the payload of every graph node.
type Stop struct {
	IDs      []string   `json:"ids"`   // every record id naming this stop, first one canonical
	Name     string     `json:"name"`  // from the first record seen
	Lines    []string   `json:"lines"` // served lines, in dataset order
	Position Coordinate `json:"position"`
}

// ID returns the canonical (first) record id.
func (s *Stop) ID() string { return s.IDs[0] }

// Serves reports whether line stops at s.
func (s *Stop) Serves(line string) bool {
	for _, l := range s.Lines {
		if l == line {
			return true
		}
	}

	return false
}

// Leg is one edge of a route.
type Leg struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Line       string  `json:"line,omitempty"`
	Kilometres float64 `json:"km"`
}

// Route is a resolved itinerary between two stops.
type Route struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Legs       []Leg   `json:"legs"`
	Kilometres float64 `json:"km"`
}

// String renders the itinerary one leg per line.
func (r *Route) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s → %s: %.2f km\n", r.From, r.To, r.Kilometres)
	if len(r.Legs) == 0 {
		sb.WriteString("  already there\n")
		return sb.String()
	}
	for i, leg := range r.Legs {
		line := leg.Line
		if line == "" {
			line = "?"
		}
		fmt.Fprintf(&sb, "  %d. %s → %s [%s] %.2f km\n", i+1, leg.From, leg.To, line, leg.Kilometres)
	}

	return sb.String()
}
