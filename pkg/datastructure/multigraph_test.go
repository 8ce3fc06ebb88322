package datastructure

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/transitx/pkg"
)

func TestAddStationInsertAndOverwrite(t *testing.T) {
	tn := NewTransitNetwork()

	tn.AddStation("Central", 1000, 1.0, 2.0)
	station, ok := tn.GetStation("Central")
	if !ok {
		t.Fatalf("station Central should exist")
	}
	if station.GetCapacity() != 1000 || !Eq(station.GetLat(), 1.0) || !Eq(station.GetLon(), 2.0) {
		t.Fatalf("station attributes not stored")
	}

	// same id again overwrites attributes, station count stays the same
	tn.AddStation("Central", 500, 3.0, 4.0)
	if tn.NumberOfStations() != 1 {
		t.Fatalf("got %d stations, want 1", tn.NumberOfStations())
	}
	station, _ = tn.GetStation("Central")
	if station.GetCapacity() != 500 || !Eq(station.GetLat(), 3.0) {
		t.Fatalf("overwrite did not update attributes")
	}
}

func TestAddStationRandomCoords(t *testing.T) {
	tn := NewTransitNetwork()
	station := tn.AddStationRandomCoords("Central", 100)

	if station.GetLat() < 0 || station.GetLat() > 1 || station.GetLon() < 0 || station.GetLon() > 1 {
		t.Fatalf("random coordinates should lie in the unit square, got (%f, %f)",
			station.GetLat(), station.GetLon())
	}
}

func TestAddConnection(t *testing.T) {
	testCases := []struct {
		name          string
		transportMode string
		wantType      pkg.TransportType
	}{
		{name: "metro connection", transportMode: "Metro", wantType: pkg.METRO},
		{name: "bus connection", transportMode: "Bus", wantType: pkg.BUS},
		{name: "train connection", transportMode: "Train", wantType: pkg.TRAIN},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			tn := NewTransitNetwork()
			connID, err := tn.AddConnection("A", "B", tt.transportMode, 12.5, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			conn := tn.GetConnection(connID)
			if conn.GetTransportType() != tt.wantType {
				t.Errorf("got transport type %v, want %v", conn.GetTransportType(), tt.wantType)
			}
			if !Eq(conn.GetTravelTime(), 12.5) {
				t.Errorf("got travel time %f, want 12.5", conn.GetTravelTime())
			}
		})
	}
}

func TestAddConnectionImplicitStations(t *testing.T) {
	tn := NewTransitNetwork()

	if _, err := tn.AddConnection("A", "B", "Bus", 10, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// endpoints were never added explicitly but are part of the network
	if !tn.HasStation("A") || !tn.HasStation("B") {
		t.Fatalf("connection endpoints should be implicit stations")
	}
	if _, ok := tn.GetStation("A"); ok {
		t.Fatalf("implicit station should have no station record")
	}
	if tn.NumberOfStations() != 2 {
		t.Fatalf("got %d stations, want 2", tn.NumberOfStations())
	}
}

func TestAddConnectionDefaultTimetable(t *testing.T) {
	tn := NewTransitNetwork()

	connID, err := tn.AddConnection("A", "B", "Metro", 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	timetable := tn.GetConnection(connID).GetTimetable()
	if len(timetable) != 73 {
		t.Fatalf("got %d departures, want the 73 default ones", len(timetable))
	}
	if timetable[0] != "05:00" || timetable[len(timetable)-1] != "23:00" {
		t.Fatalf("default timetable window is wrong: %s .. %s",
			timetable[0], timetable[len(timetable)-1])
	}

	custom := []string{"07:00", "08:00"}
	connID, err = tn.AddConnection("A", "C", "Metro", 5, custom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tn.GetConnection(connID).GetTimetable()) != 2 {
		t.Fatalf("explicit timetable should be kept as given")
	}
}

func TestAddConnectionInvalidTransportType(t *testing.T) {
	testCases := []struct {
		name          string
		transportMode string
	}{
		{name: "unknown mode", transportMode: "Tram"},
		{name: "empty mode", transportMode: ""},
		{name: "wrong case is not the api name", transportMode: "METRO"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			tn := NewTransitNetwork()
			_, err := tn.AddConnection("A", "B", tt.transportMode, 10, nil)
			if err == nil {
				t.Fatalf("expected error for transport mode %q", tt.transportMode)
			}
			if !errors.Is(err, ErrInvalidTransportType) {
				t.Errorf("error should wrap ErrInvalidTransportType, got %v", err)
			}

			// the failed insert must not touch the network
			if tn.NumberOfStations() != 0 || tn.NumberOfConnections() != 0 {
				t.Errorf("network modified by a rejected connection")
			}
		})
	}
}

func TestAddConnectionOverwritesSameTypePair(t *testing.T) {
	tn := NewTransitNetwork()

	first, err := tn.AddConnection("A", "B", "Bus", 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// same unordered pair and type, reversed orientation
	second, err := tn.AddConnection("B", "A", "Bus", 7, []string{"06:00"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("overwrite should keep the connection id, got %d and %d", first, second)
	}
	if tn.NumberOfConnections() != 1 {
		t.Fatalf("got %d connections, want 1", tn.NumberOfConnections())
	}

	conn := tn.GetConnection(first)
	if !Eq(conn.GetTravelTime(), 7) {
		t.Errorf("travel time not overwritten, got %f", conn.GetTravelTime())
	}
	if len(conn.GetTimetable()) != 1 {
		t.Errorf("timetable not overwritten")
	}
}

func TestConnectionsBetweenParallelEdges(t *testing.T) {
	tn := NewTransitNetwork()

	busID, _ := tn.AddConnection("A", "B", "Bus", 8, nil)
	metroID, _ := tn.AddConnection("A", "B", "Metro", 10, nil)
	tn.AddConnection("A", "C", "Train", 20, nil)

	conns := tn.ConnectionsBetween("A", "B")
	if len(conns) != 2 {
		t.Fatalf("got %d parallel connections, want 2", len(conns))
	}

	// arena order: the bus line was inserted first
	if conns[0].GetID() != busID || conns[1].GetID() != metroID {
		t.Errorf("parallel connections not in arena order")
	}

	// both orientations see the same undirected pair
	if len(tn.ConnectionsBetween("B", "A")) != 2 {
		t.Errorf("reversed orientation should return the same connections")
	}

	if len(tn.ConnectionsBetween("A", "X")) != 0 {
		t.Errorf("unlinked pair should return no connections")
	}
}

func TestNeighborsOfDeduplicatesParallelEdges(t *testing.T) {
	tn := NewTransitNetwork()

	tn.AddConnection("A", "B", "Bus", 8, nil)
	tn.AddConnection("A", "B", "Metro", 10, nil)
	tn.AddConnection("A", "C", "Train", 20, nil)

	neighbors := tn.NeighborsOf("A")
	if len(neighbors) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(neighbors))
	}
	if neighbors[0] != "B" || neighbors[1] != "C" {
		t.Errorf("neighbors not in first-seen order: %v", neighbors)
	}
}

func TestSelfLoopListedOnce(t *testing.T) {
	tn := NewTransitNetwork()

	if _, err := tn.AddConnection("A", "A", "Bus", 5, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tn.OutDegree("A"); got != 1 {
		t.Fatalf("self loop should appear once in adjacency, got %d entries", got)
	}
	if len(tn.ConnectionsBetween("A", "A")) != 1 {
		t.Fatalf("self loop should be queryable as a pair")
	}
}

func TestStationIDsFirstSeenOrder(t *testing.T) {
	tn := NewTransitNetwork()

	tn.AddStation("C", 10, 0, 0)
	tn.AddConnection("A", "B", "Bus", 5, nil)
	tn.AddStation("B", 20, 0, 0) // already implicit, keeps its position

	ids := tn.StationIDs()
	want := []string{"C", "A", "B"}
	if len(ids) != len(want) {
		t.Fatalf("got %d station ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("station ids = %v, want %v", ids, want)
		}
	}
}
