package netbuilder

import (
	"testing"

	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

func TestSampleNetwork(t *testing.T) {
	tn, err := SampleNetwork()
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if tn.NumberOfStations() != 6 {
		t.Fatalf("FAIL: Expected 6 stations, got: %v", tn.NumberOfStations())
	}
	if tn.NumberOfConnections() != 7 {
		t.Fatalf("FAIL: Expected 7 connections, got: %v", tn.NumberOfConnections())
	}

	hub, ok := tn.GetStation("Ramsis_square")
	if !ok {
		t.Fatalf("FAIL: Expected the hub station to exist")
	}
	if hub.GetCapacity() != 1000 {
		t.Fatalf("FAIL: Expected hub capacity 1000, got: %v", hub.GetCapacity())
	}

	testCases := []struct {
		from       string
		to         string
		mode       pkg.TransportType
		travelTime float64
	}{
		{"Ramsis_square", "North", pkg.METRO, 21},
		{"Ramsis_square", "South", pkg.METRO, 20},
		{"Ramsis_square", "Airport", pkg.TRAIN, 24},
		{"North", "East", pkg.BUS, 30},
		{"South", "West", pkg.BUS, 25},
		{"East", "Airport", pkg.BUS, 30},
		{"West", "Airport", pkg.TRAIN, 25},
	}

	for _, tc := range testCases {
		conns := tn.ConnectionsBetween(tc.from, tc.to)
		if len(conns) != 1 {
			t.Fatalf("FAIL: Expected one connection between %v and %v, got: %v",
				tc.from, tc.to, len(conns))
		}

		conn := conns[0]
		if conn.GetTransportType() != tc.mode {
			t.Fatalf("FAIL: %v-%v: Expected mode %v, got: %v",
				tc.from, tc.to, tc.mode, conn.GetTransportType())
		}
		if !da.Eq(conn.GetTravelTime(), tc.travelTime) {
			t.Fatalf("FAIL: %v-%v: Expected travel time %v, got: %v",
				tc.from, tc.to, tc.travelTime, conn.GetTravelTime())
		}

		// every connection runs on the synthesized default timetable
		timetable := conn.GetTimetable()
		if len(timetable) != 73 {
			t.Fatalf("FAIL: %v-%v: Expected 73 departures, got: %v",
				tc.from, tc.to, len(timetable))
		}
		if timetable[0] != "05:00" || timetable[len(timetable)-1] != "23:00" {
			t.Fatalf("FAIL: %v-%v: Expected the default service window, got: %v to %v",
				tc.from, tc.to, timetable[0], timetable[len(timetable)-1])
		}
	}

	// demo coordinates stay inside the unit square
	tn.ForStations(func(station *da.Station) {
		if station.GetLat() < 0 || station.GetLat() > 1 ||
			station.GetLon() < 0 || station.GetLon() > 1 {
			t.Fatalf("FAIL: station %v placed outside the unit square", station.GetID())
		}
	})
}
