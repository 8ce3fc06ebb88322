package datastructure

import (
	"path/filepath"
	"testing"
)

func buildSnapshotFixture(t *testing.T) *TransitNetwork {
	t.Helper()

	tn := NewTransitNetwork()
	tn.AddStation("Central Station", 1000, -6.17511, 106.82715)
	tn.AddStation("Harbor", 300, -6.12, 106.81)

	mustAdd := func(from, to, mode string, travelTime float64, timetable []string) {
		t.Helper()
		if _, err := tn.AddConnection(from, to, mode, travelTime, timetable); err != nil {
			t.Fatalf("add connection %s-%s: %v", from, to, err)
		}
	}

	mustAdd("Central Station", "Harbor", "Metro", 12, nil)
	mustAdd("Central Station", "Harbor", "Bus", 25.5, []string{"06:00", "06:30"})
	// Depot is implicit, never explicitly added
	mustAdd("Harbor", "Depot", "Train", 40, []string{})

	return tn
}

func TestNetworkSnapshotRoundTrip(t *testing.T) {
	tn := buildSnapshotFixture(t)

	filename := filepath.Join(t.TempDir(), "transit.graph")
	if err := tn.WriteNetwork(filename); err != nil {
		t.Fatalf("write network: %v", err)
	}

	got, err := ReadNetwork(filename)
	if err != nil {
		t.Fatalf("read network: %v", err)
	}

	if got.NumberOfStations() != tn.NumberOfStations() {
		t.Fatalf("station count = %d, want %d", got.NumberOfStations(), tn.NumberOfStations())
	}
	if got.NumberOfConnections() != tn.NumberOfConnections() {
		t.Fatalf("connection count = %d, want %d", got.NumberOfConnections(), tn.NumberOfConnections())
	}

	// station order and explicit records survive
	wantIDs := tn.StationIDs()
	gotIDs := got.StationIDs()
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("station order changed: %v vs %v", gotIDs, wantIDs)
		}
	}

	central, ok := got.GetStation("Central Station")
	if !ok {
		t.Fatalf("explicit station lost")
	}
	if central.GetCapacity() != 1000 || !Eq(central.GetLat(), -6.17511) || !Eq(central.GetLon(), 106.82715) {
		t.Errorf("station attributes changed on round trip")
	}

	if _, ok := got.GetStation("Depot"); ok {
		t.Errorf("implicit station gained a record on round trip")
	}
	if !got.HasStation("Depot") {
		t.Errorf("implicit station lost on round trip")
	}

	// connection arena survives id by id
	for id := Index(0); int(id) < tn.NumberOfConnections(); id++ {
		want := tn.GetConnection(id)
		gotConn := got.GetConnection(id)

		if gotConn.GetFrom() != want.GetFrom() || gotConn.GetTo() != want.GetTo() {
			t.Fatalf("connection %d endpoints changed", id)
		}
		if gotConn.GetTransportType() != want.GetTransportType() {
			t.Fatalf("connection %d transport type changed", id)
		}
		if !Eq(gotConn.GetTravelTime(), want.GetTravelTime()) {
			t.Fatalf("connection %d travel time changed", id)
		}
		if len(gotConn.GetTimetable()) != len(want.GetTimetable()) {
			t.Fatalf("connection %d timetable length changed", id)
		}
		for i := range want.GetTimetable() {
			if gotConn.GetTimetable()[i] != want.GetTimetable()[i] {
				t.Fatalf("connection %d timetable entry %d changed", id, i)
			}
		}
	}

	// pair queries behave the same
	if len(got.ConnectionsBetween("Central Station", "Harbor")) != 2 {
		t.Errorf("parallel connections lost on round trip")
	}
}

func TestReadNetworkMissingFile(t *testing.T) {
	if _, err := ReadNetwork(filepath.Join(t.TempDir(), "nope.graph")); err == nil {
		t.Fatalf("expected error for missing snapshot file")
	}
}
