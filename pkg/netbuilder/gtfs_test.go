package netbuilder

import (
	"testing"
	"time"

	"github.com/jamespfennell/gtfs"
	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/logger"
)

func TestRouteTypeToTransportMode(t *testing.T) {
	testCases := []struct {
		name      string
		routeType int
		wantMode  string
		wantOk    bool
	}{
		{"tram counts as metro", 0, pkg.METRO_NAME, true},
		{"subway counts as metro", 1, pkg.METRO_NAME, true},
		{"monorail counts as metro", 12, pkg.METRO_NAME, true},
		{"rail counts as train", 2, pkg.TRAIN_NAME, true},
		{"bus is bus", 3, pkg.BUS_NAME, true},
		{"trolleybus counts as bus", 11, pkg.BUS_NAME, true},
		{"ferry unsupported", 4, "", false},
		{"funicular unsupported", 7, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mode, ok := routeTypeToTransportMode(tc.routeType)
			if ok != tc.wantOk || mode != tc.wantMode {
				t.Fatalf("FAIL: Expected (%v, %v), got: (%v, %v)",
					tc.wantMode, tc.wantOk, mode, ok)
			}
		})
	}
}

func TestDepartureClock(t *testing.T) {
	testCases := []struct {
		departure time.Duration
		want      string
	}{
		{0, "00:00"},
		{8 * time.Hour, "08:00"},
		{8*time.Hour + 30*time.Minute, "08:30"},
		{23*time.Hour + 45*time.Minute, "23:45"},
		{25*time.Hour + 30*time.Minute, "25:30"},
	}

	for _, tc := range testCases {
		if got := departureClock(tc.departure); got != tc.want {
			t.Fatalf("FAIL: Expected %v for %v, got: %v", tc.want, tc.departure, got)
		}
	}
}

func f64(v float64) *float64 {
	return &v
}

func newTestGTFSImporter(t *testing.T) *GTFSImporter {
	t.Helper()

	log, err := logger.New()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	return NewGTFSImporter(log)
}

func TestFromGTFSStatic(t *testing.T) {
	metroLine := &gtfs.Route{Id: "M1", Type: 1}
	busLine := &gtfs.Route{Id: "B7", Type: 3}
	ferryLine := &gtfs.Route{Id: "F2", Type: 4}

	s1 := &gtfs.Stop{Id: "S1"}
	s2 := &gtfs.Stop{Id: "S2"}
	s3 := &gtfs.Stop{Id: "S3"}

	staticData := &gtfs.Static{
		Stops: []gtfs.Stop{
			{Id: "S1", Latitude: f64(30.0626), Longitude: f64(31.2497)},
			{Id: "S2", Latitude: f64(30.0700), Longitude: f64(31.2600)},
			{Id: "S3", Latitude: f64(30.0800), Longitude: f64(31.2700)},
			{Id: "NoCoords"},
		},
		Trips: []gtfs.ScheduledTrip{
			{
				ID:    "metro-morning",
				Route: metroLine,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: s1, ArrivalTime: 8 * time.Hour, DepartureTime: 8 * time.Hour, StopSequence: 1},
					{Stop: s2, ArrivalTime: 8*time.Hour + 10*time.Minute, DepartureTime: 8*time.Hour + 11*time.Minute, StopSequence: 2},
					{Stop: s3, ArrivalTime: 8*time.Hour + 20*time.Minute, DepartureTime: 8*time.Hour + 21*time.Minute, StopSequence: 3},
				},
			},
			{
				// a faster run over the same first hop, the minimum wins
				ID:    "metro-express",
				Route: metroLine,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: s1, ArrivalTime: 9 * time.Hour, DepartureTime: 9 * time.Hour, StopSequence: 1},
					{Stop: s2, ArrivalTime: 9*time.Hour + 8*time.Minute, DepartureTime: 9*time.Hour + 9*time.Minute, StopSequence: 2},
				},
			},
			{
				// reverse direction aggregates into the same undirected hop
				ID:    "metro-return",
				Route: metroLine,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: s2, ArrivalTime: 10 * time.Hour, DepartureTime: 10 * time.Hour, StopSequence: 1},
					{Stop: s1, ArrivalTime: 10*time.Hour + 9*time.Minute, DepartureTime: 10*time.Hour + 10*time.Minute, StopSequence: 2},
				},
			},
			{
				ID:    "bus-parallel",
				Route: busLine,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: s1, ArrivalTime: 8 * time.Hour, DepartureTime: 8 * time.Hour, StopSequence: 1},
					{Stop: s2, ArrivalTime: 8*time.Hour + 12*time.Minute, DepartureTime: 8*time.Hour + 13*time.Minute, StopSequence: 2},
				},
			},
			{
				ID:    "ferry-ignored",
				Route: ferryLine,
				StopTimes: []gtfs.ScheduledStopTime{
					{Stop: s1, ArrivalTime: 8 * time.Hour, DepartureTime: 8 * time.Hour, StopSequence: 1},
					{Stop: s3, ArrivalTime: 8*time.Hour + 40*time.Minute, DepartureTime: 8*time.Hour + 40*time.Minute, StopSequence: 2},
				},
			},
		},
	}

	gi := newTestGTFSImporter(t)
	tn, err := gi.FromGTFSStatic(staticData)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	// S1, S2, S3 got coordinates, NoCoords was dropped and never referenced
	if tn.NumberOfStations() != 3 {
		t.Fatalf("FAIL: Expected 3 stations, got: %v", tn.NumberOfStations())
	}
	if tn.HasStation("NoCoords") {
		t.Fatalf("FAIL: Expected the stop without coordinates to be dropped")
	}

	// S1-S2 metro + bus, S2-S3 metro. the ferry trip contributes nothing
	if tn.NumberOfConnections() != 3 {
		t.Fatalf("FAIL: Expected 3 connections, got: %v", tn.NumberOfConnections())
	}

	firstHop := tn.ConnectionsBetween("S1", "S2")
	if len(firstHop) != 2 {
		t.Fatalf("FAIL: Expected 2 parallel connections between S1 and S2, got: %v", len(firstHop))
	}

	var metroConn, busConn *da.Connection
	for _, conn := range firstHop {
		switch conn.GetTransportType() {
		case pkg.METRO:
			metroConn = conn
		case pkg.BUS:
			busConn = conn
		}
	}
	if metroConn == nil || busConn == nil {
		t.Fatalf("FAIL: Expected one metro and one bus connection between S1 and S2")
	}

	// express run 8 min beats the 10 min local and the 9 min return
	if !da.Eq(metroConn.GetTravelTime(), 8.0) {
		t.Fatalf("FAIL: Expected metro travel time 8, got: %v", metroConn.GetTravelTime())
	}
	if !da.Eq(busConn.GetTravelTime(), 12.0) {
		t.Fatalf("FAIL: Expected bus travel time 12, got: %v", busConn.GetTravelTime())
	}

	// union of departures over both directions, sorted
	wantTimetable := []string{"08:00", "09:00", "10:00"}
	gotTimetable := metroConn.GetTimetable()
	if len(gotTimetable) != len(wantTimetable) {
		t.Fatalf("FAIL: Expected timetable %v, got: %v", wantTimetable, gotTimetable)
	}
	for i := range wantTimetable {
		if gotTimetable[i] != wantTimetable[i] {
			t.Fatalf("FAIL: Expected timetable %v, got: %v", wantTimetable, gotTimetable)
		}
	}

	secondHop := tn.ConnectionsBetween("S2", "S3")
	if len(secondHop) != 1 || secondHop[0].GetTransportType() != pkg.METRO {
		t.Fatalf("FAIL: Expected a single metro connection between S2 and S3")
	}
	// 08:20 arrival minus 08:11 departure
	if !da.Eq(secondHop[0].GetTravelTime(), 9.0) {
		t.Fatalf("FAIL: Expected metro travel time 9, got: %v", secondHop[0].GetTravelTime())
	}
}
