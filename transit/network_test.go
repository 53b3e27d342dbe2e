package transit_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/transit"
)

// hop is the great-circle length of 0.1° along the equator or a meridian.
const hop = transit.EarthCircumference * 0.1 / 360

type NetworkSuite struct {
	suite.Suite
	net *transit.Network
}

func (s *NetworkSuite) SetupTest() {
	records, err := transit.Load("testdata/stations.json")
	require.NoError(s.T(), err)
	s.net, err = transit.NewNetwork(records)
	require.NoError(s.T(), err)
}

func (s *NetworkSuite) TestTransfersCollapse() {
	require := require.New(s.T())
	require.Equal(6, s.net.Graph().Len(), "102 and 202 are one stop")
	require.Equal([]string{"1", "2", "3"}, s.net.Lines())

	a, err := s.net.Resolve("102")
	require.NoError(err)
	b, err := s.net.Resolve("202")
	require.NoError(err)
	require.Equal(a, b)

	birch := s.net.Graph().Value(a)
	require.Equal([]string{"102", "202"}, birch.IDs)
	require.Equal([]string{"1", "2"}, birch.Lines)
	require.Equal("102", birch.ID())
}

func (s *NetworkSuite) TestResolveByName() {
	require := require.New(s.T())
	id, err := s.net.Resolve("  cedar ")
	require.NoError(err)
	require.Equal("Cedar", s.net.Graph().Value(id).Name)

	_, err = s.net.Resolve("Zelkova")
	require.True(errors.Is(err, transit.ErrStationNotFound), "got %v", err)
}

// TestExpressEdges checks that every stop links to every later stop on its
// line with the cumulative distance, in both directions.
func (s *NetworkSuite) TestExpressEdges() {
	require := require.New(s.T())
	g := s.net.Graph()
	alder, _ := s.net.Resolve("101")
	cedar, _ := s.net.Resolve("103")

	var found bool
	for _, e := range g.Adjacent(alder) {
		if e.To == cedar {
			found = true
			require.InDelta(2*hop, e.Distance.Float64(), 1e-9)
		}
	}
	require.True(found, "Alder → Cedar express edge missing")

	found = false
	for _, e := range g.Adjacent(cedar) {
		if e.To == alder {
			found = true
		}
	}
	require.True(found, "Cedar → Alder express edge missing")

	fir, _ := s.net.Resolve("Fir")
	require.Empty(g.Adjacent(fir))
}

func (s *NetworkSuite) TestRouteAcrossTransfer() {
	require := require.New(s.T())
	route, err := s.net.Route("Alder", "Elm")
	require.NoError(err)
	require.Equal("Alder", route.From)
	require.Equal("Elm", route.To)
	require.Len(route.Legs, 2)
	require.Equal(transit.Leg{From: "Alder", To: "Birch", Line: "1", Kilometres: route.Legs[0].Kilometres}, route.Legs[0])
	require.Equal("2", route.Legs[1].Line)
	require.InDelta(2*hop, route.Kilometres, 1e-9)

	text := route.String()
	require.True(strings.HasPrefix(text, "Alder → Elm"), text)
	require.Contains(text, "[2]")
}

func (s *NetworkSuite) TestRouteSameStation() {
	require := require.New(s.T())
	route, err := s.net.Route("102", "Birch")
	require.NoError(err)
	require.Empty(route.Legs)
	require.Zero(route.Kilometres)
	require.Contains(route.String(), "already there")
}

func (s *NetworkSuite) TestRouteUnreachable() {
	require := require.New(s.T())
	_, err := s.net.Route("Alder", "Fir")
	require.True(errors.Is(err, transit.ErrNoRoute), "got %v", err)

	_, err = s.net.Route("Nowhere", "Fir")
	require.True(errors.Is(err, transit.ErrStationNotFound), "got %v", err)
}

func (s *NetworkSuite) TestStops() {
	stops := s.net.Stops()
	require.Len(s.T(), stops, 6)
	require.Equal(s.T(), "Alder", stops[0].Name)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestNewNetwork_Errors(t *testing.T) {
	_, err := transit.NewNetwork(nil)
	require.True(t, errors.Is(err, transit.ErrEmptyDataset))

	_, err = transit.NewNetwork([]transit.Station{
		{ID: "1", Name: "A", Line: "L", NextStationID: "404"},
	})
	require.True(t, errors.Is(err, transit.ErrUnknownStation), "got %v", err)

	// 2 is known but has no record on line L.
	_, err = transit.NewNetwork([]transit.Station{
		{ID: "1", Name: "A", Line: "L", NextStationID: "2"},
		{ID: "2", Name: "B", Line: "M"},
	})
	require.True(t, errors.Is(err, transit.ErrUnknownStation), "got %v", err)

	_, err = transit.NewNetwork([]transit.Station{
		{ID: "1", Name: "A", Line: "L", NextStationID: "2", Latitude: math.NaN()},
		{ID: "2", Name: "B", Line: "L", PreviousStationID: "1"},
	})
	require.True(t, errors.Is(err, core.ErrInvalidDistance), "got %v", err)
}

// TestNewNetwork_CircularLine ensures loops terminate and keep the shorter way round.
func TestNewNetwork_CircularLine(t *testing.T) {
	records := []transit.Station{
		{ID: "a", Name: "A", Line: "O", NextStationID: "b", PreviousStationID: "c", Longitude: 0},
		{ID: "b", Name: "B", Line: "O", NextStationID: "c", PreviousStationID: "a", Longitude: 0.1},
		{ID: "c", Name: "C", Line: "O", NextStationID: "a", PreviousStationID: "b", Longitude: 0.2},
	}
	net, err := transit.NewNetwork(records)
	require.NoError(t, err)

	route, err := net.Route("A", "C")
	require.NoError(t, err)
	require.InDelta(t, 2*hop, route.Kilometres, 1e-9)
}

func TestDecode_BadJSON(t *testing.T) {
	_, err := transit.Decode(strings.NewReader("{not json"))
	require.Error(t, err)

	_, err = transit.Load("testdata/missing.json")
	require.Error(t, err)
}

func TestHaversine(t *testing.T) {
	p := transit.Coordinate{Latitude: 37.5, Longitude: 127}
	require.Zero(t, transit.Haversine(p, p))

	a := transit.Coordinate{}
	b := transit.Coordinate{Longitude: 0.1}
	require.InDelta(t, hop, transit.Haversine(a, b), 1e-9)
	require.InDelta(t, transit.Haversine(a, b), transit.Haversine(b, a), 1e-12)
}

// TestRoute_LegLineIsTheShorterLine puts A and B on two lines: L1 detours
// through a far stop X, L2 runs them back to back. The direct leg must carry
// L2, the line its distance was measured on.
func TestRoute_LegLineIsTheShorterLine(t *testing.T) {
	net, err := transit.NewNetwork([]transit.Station{
		{ID: "a1", Name: "A", Line: "L1", NextStationID: "x"},
		{ID: "x", Name: "X", Line: "L1", PreviousStationID: "a1", NextStationID: "b1", Latitude: 1, Longitude: 0.05},
		{ID: "b1", Name: "B", Line: "L1", PreviousStationID: "x", Longitude: 0.1},
		{ID: "a2", Name: "A", Line: "L2", NextStationID: "b2", TransferStationIDs: []string{"a1"}},
		{ID: "b2", Name: "B", Line: "L2", PreviousStationID: "a2", TransferStationIDs: []string{"b1"}, Longitude: 0.1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, net.Graph().Len())

	route, err := net.Route("A", "B")
	require.NoError(t, err)
	require.Len(t, route.Legs, 1)
	require.Equal(t, "L2", route.Legs[0].Line)
	require.InDelta(t, hop, route.Legs[0].Kilometres, 1e-9)

	back, err := net.Route("B", "A")
	require.NoError(t, err)
	require.Len(t, back.Legs, 1)
	require.Equal(t, "L2", back.Legs[0].Line)
}

// TestNewNetwork_TransferListedByLaterRecord merges a hub whose first record
// names no transfers and whose second record points back at the first.
func TestNewNetwork_TransferListedByLaterRecord(t *testing.T) {
	net, err := transit.NewNetwork([]transit.Station{
		{ID: "x", Name: "Hub", Line: "L1", NextStationID: "p"},
		{ID: "p", Name: "P", Line: "L1", PreviousStationID: "x", Longitude: 0.1},
		{ID: "y", Name: "Hub", Line: "L2", NextStationID: "q", TransferStationIDs: []string{"x"}},
		{ID: "q", Name: "Q", Line: "L2", PreviousStationID: "y", Latitude: 0.1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, net.Graph().Len())

	x, err := net.Resolve("x")
	require.NoError(t, err)
	y, err := net.Resolve("y")
	require.NoError(t, err)
	require.Equal(t, x, y)

	hub := net.Graph().Value(x)
	require.Equal(t, []string{"x", "y"}, hub.IDs)
	require.Equal(t, []string{"L1", "L2"}, hub.Lines)

	route, err := net.Route("P", "Q")
	require.NoError(t, err)
	require.Len(t, route.Legs, 2)
	require.Equal(t, transit.Leg{From: "P", To: "Hub", Line: "L1", Kilometres: route.Legs[0].Kilometres}, route.Legs[0])
	require.Equal(t, transit.Leg{From: "Hub", To: "Q", Line: "L2", Kilometres: route.Legs[1].Kilometres}, route.Legs[1])
	require.InDelta(t, 2*hop, route.Kilometres, 1e-9)
}

// TestNewNetwork_TransfersAreTransitive joins three records through a chain
// of one-way transfer references.
func TestNewNetwork_TransfersAreTransitive(t *testing.T) {
	net, err := transit.NewNetwork([]transit.Station{
		{ID: "1", Name: "Hub", Line: "A"},
		{ID: "2", Name: "Hub", Line: "B"},
		{ID: "3", Name: "Hub", Line: "C", TransferStationIDs: []string{"1", "2"}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, net.Graph().Len())
	require.Equal(t, []string{"1", "2", "3"}, net.Graph().Value(0).IDs)
}
