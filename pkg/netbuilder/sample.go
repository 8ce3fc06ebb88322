package netbuilder

import (
	"github.com/lintang-b-s/transitx/pkg/datastructure"
)

// SampleNetwork builds the six station reference network used by the demo
// binary and the test suites: a central hub with two metro spurs, a bus
// ring and two train links to the airport. coordinates are synthetic unit
// square positions, good enough for spatial index smoke tests.
func SampleNetwork() (*datastructure.TransitNetwork, error) {
	tn := datastructure.NewTransitNetwork()

	tn.AddStation("Ramsis_square", 1000, 0.5, 0.5)
	tn.AddStation("North", 500, 0.5, 0.8)
	tn.AddStation("South", 500, 0.5, 0.2)
	tn.AddStation("East", 300, 0.8, 0.5)
	tn.AddStation("West", 300, 0.2, 0.5)
	tn.AddStation("Airport", 800, 0.9, 0.9)

	connections := []struct {
		from       string
		to         string
		mode       string
		travelTime float64
	}{
		{"Ramsis_square", "North", "Metro", 21},
		{"Ramsis_square", "South", "Metro", 20},
		{"Ramsis_square", "Airport", "Train", 24},
		{"North", "East", "Bus", 30},
		{"South", "West", "Bus", 25},
		{"East", "Airport", "Bus", 30},
		{"West", "Airport", "Train", 25},
	}

	for _, c := range connections {
		if _, err := tn.AddConnection(c.from, c.to, c.mode, c.travelTime, nil); err != nil {
			return nil, err
		}
	}

	return tn, nil
}
