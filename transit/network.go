// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Assemble the (stops, adjacency matrix) pair from line topology and
// build the route graph; resolve station queries; answer route requests.
// Policy:
//   - Stops are ordered by first appearance in the dataset.
//   - Records linked through transferStationIds, in either direction and
//     transitively, are one stop.
//   - Each stop gets an edge to every stop further along each of its lines,
//     in both directions, weighted by the cumulative haversine distance.
//   - Each edge remembers the line that produced its weight.
//   - The network is read-only after NewNetwork; queries may run concurrently.

package transit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/distance"
)

// Network is a loaded dataset together with its route graph.
type Network struct {
	graph   *core.Graph[*Stop, distance.Float]
	byID    map[string]core.NodeID // every record id → stop
	lines   []string               // distinct line names, dataset order
	edgeVia [][]string             // [from][to] → line giving the edge weight
}

// Decode reads a JSON array of Station records.
func Decode(r io.Reader) ([]Station, error) {
	var records []Station
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("transit: decode dataset: %w", err)
	}

	return records, nil
}

// Load reads and decodes the dataset file at path.
func Load(path string) ([]Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transit: open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// lineKey addresses one stop as served by one line.
type lineKey struct {
	stop int
	line string
}

// link holds a stop's neighbours on one line, as stop indices (-1 = terminus).
type link struct {
	next, prev int
}

// NewNetwork merges records into stops, assembles the adjacency matrix and
// builds the graph.
//
// Implementation:
//   - Stage 1: union every record id with its TransferStationIDs, then
//     give each group one stop, named by its first record.
//   - Stage 2: resolve next/previous ids per (stop, line) into stop indices.
//   - Stage 3: from every (stop, line), in dataset order, walk each direction
//     to the terminus accumulating haversine distance, and record an edge to
//     every stop passed. When lines connect the same pair the shortest
//     weight wins; on a tie the line seen first keeps it.
//   - Stage 4: core.Build.
//
// Errors:
//   - ErrEmptyDataset:    no records.
//   - ErrUnknownStation:  a next/previous id no record defines, or a line
//     continuing through a stop with no record for that line.
//   - distance.ErrInvalidDistance: a NaN coordinate.
func NewNetwork(records []Station) (*Network, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	// 1) Merge transfer records into stops.
	//    parent links each id towards its group root; find compresses paths.
	parent := make(map[string]string)
	find := func(id string) string {
		if _, ok := parent[id]; !ok {
			parent[id] = id
		}
		for parent[id] != id {
			parent[id] = parent[parent[id]]
			id = parent[id]
		}

		return id
	}
	for _, rec := range records {
		for _, alias := range rec.TransferStationIDs {
			if a, b := find(rec.ID), find(alias); a != b {
				parent[b] = a
			}
		}
	}

	var stops []*Stop
	byID := make(map[string]core.NodeID)
	byRoot := make(map[string]core.NodeID)
	var lines []string
	seenLine := make(map[string]bool)
	addID := func(idx core.NodeID, id string) {
		if _, known := byID[id]; !known {
			byID[id] = idx
			stops[idx].IDs = append(stops[idx].IDs, id)
		}
	}
	for _, rec := range records {
		root := find(rec.ID)
		idx, ok := byRoot[root]
		if !ok {
			idx = core.NodeID(len(stops))
			stops = append(stops, &Stop{
				Name:     rec.Name,
				Position: Coordinate{Latitude: rec.Latitude, Longitude: rec.Longitude},
			})
			byRoot[root] = idx
		}
		addID(idx, rec.ID)
		for _, alias := range rec.TransferStationIDs {
			addID(idx, alias)
		}
		if !stops[idx].Serves(rec.Line) {
			stops[idx].Lines = append(stops[idx].Lines, rec.Line)
		}
		if !seenLine[rec.Line] {
			seenLine[rec.Line] = true
			lines = append(lines, rec.Line)
		}
	}

	// 2) Resolve line links.
	links := make(map[lineKey]link, len(records))
	keys := make([]lineKey, 0, len(records))
	resolve := func(id, field string, rec Station) (int, error) {
		if id == "" {
			return -1, nil
		}
		idx, ok := byID[id]
		if !ok {
			return 0, fmt.Errorf("station %q line %q %s %q: %w", rec.ID, rec.Line, field, id, ErrUnknownStation)
		}

		return int(idx), nil
	}
	for _, rec := range records {
		next, err := resolve(rec.NextStationID, "nextStationId", rec)
		if err != nil {
			return nil, err
		}
		prev, err := resolve(rec.PreviousStationID, "previousStationId", rec)
		if err != nil {
			return nil, err
		}
		key := lineKey{stop: int(byID[rec.ID]), line: rec.Line}
		if _, dup := links[key]; !dup {
			keys = append(keys, key)
		}
		links[key] = link{next: next, prev: prev}
	}

	// 3) Walk every line in both directions from every stop.
	n := len(stops)
	w := &weights{
		km:   make([][]float64, n),
		has:  make([][]bool, n),
		line: make([][]string, n),
	}
	for i := range w.km {
		w.km[i] = make([]float64, n)
		w.has[i] = make([]bool, n)
		w.line[i] = make([]string, n)
	}
	for _, key := range keys {
		for _, forward := range []bool{true, false} {
			if err := walk(stops, links, key, forward, w); err != nil {
				return nil, err
			}
		}
	}

	// 4) Convert to validated distances and build.
	matrix := make([][]*distance.Float, n)
	for i := range matrix {
		matrix[i] = make([]*distance.Float, n)
		for j := range matrix[i] {
			if !w.has[i][j] {
				continue
			}
			d, err := distance.NewFloat(w.km[i][j])
			if err != nil {
				return nil, fmt.Errorf("transit: %s → %s: %w", stops[i].Name, stops[j].Name, err)
			}
			matrix[i][j] = &d
		}
	}
	g, err := core.Build(stops, matrix)
	if err != nil {
		return nil, fmt.Errorf("transit: build graph: %w", err)
	}

	return &Network{graph: g, byID: byID, lines: lines, edgeVia: w.line}, nil
}

// weights accumulates the best known distance between stop pairs and the
// line it was measured along.
type weights struct {
	km   [][]float64
	has  [][]bool
	line [][]string
}

// offer keeps sum as the from→to weight when it beats the current one.
func (w *weights) offer(from, to int, sum float64, line string) {
	if !w.has[from][to] || sum < w.km[from][to] {
		w.km[from][to] = sum
		w.has[from][to] = true
		w.line[from][to] = line
	}
}

// walk follows one line from key.stop to its terminus in one direction.
// Circular lines stop once the walk returns to a stop it already passed.
func walk(stops []*Stop, links map[lineKey]link, key lineKey, forward bool, w *weights) error {
	from := key.stop
	visited := map[int]bool{from: true}
	prev := from
	cur := step(links[key], forward)
	sum := 0.0
	for cur >= 0 && !visited[cur] {
		visited[cur] = true
		sum += Haversine(stops[prev].Position, stops[cur].Position)
		w.offer(from, cur, sum, key.line)

		l, ok := links[lineKey{stop: cur, line: key.line}]
		if !ok {
			return fmt.Errorf("station %q has no record for line %q: %w", stops[cur].ID(), key.line, ErrUnknownStation)
		}
		prev, cur = cur, step(l, forward)
	}

	return nil
}

func step(l link, forward bool) int {
	if forward {
		return l.next
	}

	return l.prev
}

// Graph exposes the route graph (read-only).
func (n *Network) Graph() *core.Graph[*Stop, distance.Float] { return n.graph }

// Lines returns the distinct line names in dataset order.
func (n *Network) Lines() []string {
	out := make([]string, len(n.lines))
	copy(out, n.lines)

	return out
}

// Stops returns every stop in node order.
func (n *Network) Stops() []*Stop {
	out := make([]*Stop, 0, n.graph.Len())
	for _, id := range n.graph.Nodes() {
		out = append(out, n.graph.Value(id))
	}

	return out
}

// Resolve maps a user query to a node: an exact record id first, then a
// case-insensitive stop name.
func (n *Network) Resolve(query string) (core.NodeID, error) {
	q := strings.TrimSpace(query)
	if id, ok := n.byID[q]; ok {
		return id, nil
	}
	if id, ok := n.graph.Find(func(s *Stop) bool { return strings.EqualFold(s.Name, q) }); ok {
		return id, nil
	}

	return -1, fmt.Errorf("%q: %w", query, ErrStationNotFound)
}

// Route resolves both queries and returns the shortest itinerary.
//
// Errors:
//   - ErrStationNotFound: either query matches no stop.
//   - ErrNoRoute:         the destination is unreachable.
func (n *Network) Route(from, to string) (*Route, error) {
	start, err := n.Resolve(from)
	if err != nil {
		return nil, err
	}
	goal, err := n.Resolve(to)
	if err != nil {
		return nil, err
	}

	path, ok := dijkstra.ShortestPath(n.graph, start, goal)
	if !ok {
		return nil, fmt.Errorf("%s → %s: %w", n.graph.Value(start).Name, n.graph.Value(goal).Name, ErrNoRoute)
	}

	route := &Route{
		From:       n.graph.Value(start).Name,
		To:         n.graph.Value(goal).Name,
		Legs:       make([]Leg, 0, len(path)),
		Kilometres: dijkstra.Total(path).Float64(),
	}
	for _, e := range path {
		a, b := n.graph.Value(e.From), n.graph.Value(e.To)
		route.Legs = append(route.Legs, Leg{
			From:       a.Name,
			To:         b.Name,
			Line:       n.edgeVia[e.From][e.To],
			Kilometres: e.Distance.Float64(),
		})
	}

	return route, nil
}
