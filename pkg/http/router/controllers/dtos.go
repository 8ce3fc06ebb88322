package controllers

import (
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/metrics"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
)

// the search behind every served plan
const routeSearchAlg = "dijkstra"

// findRouteRequest is shared by the GET endpoint (query params) and the
// websocket request payload. preference multipliers are keyed by transport
// mode name, missing modes ride on their defaults.
type findRouteRequest struct {
	Start       string             `json:"start" validate:"required"`
	End         string             `json:"end" validate:"required"`
	Preferences map[string]float64 `json:"preferences" validate:"omitempty,dive,gt=0"`
}

type nearestStationsRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"omitempty,gt=0,lte=500"`
}

type routeLegResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	TransportType string  `json:"transport_type"`
	TravelTime    float64 `json:"travel_time"`
	Polyline      string  `json:"polyline,omitempty"`
}

type findRouteResponse struct {
	Path      []string           `json:"path"`
	Legs      []routeLegResponse `json:"legs"`
	TotalTime float64            `json:"total_time"`
	Transfers int32              `json:"transfers"`
	Alg       string             `json:"alg"`
	Found     bool               `json:"found"`
}

func NewFindRouteResponse(plan *datastructure.RoutePlan, legPolylines []string,
	found bool) findRouteResponse {
	legs := make([]routeLegResponse, 0, len(plan.GetLegs()))
	for i, leg := range plan.GetLegs() {
		polyline := ""
		if i < len(legPolylines) {
			polyline = legPolylines[i]
		}
		legs = append(legs, routeLegResponse{
			From:          leg.GetFrom(),
			To:            leg.GetTo(),
			TransportType: leg.GetTransportType().String(),
			TravelTime:    leg.GetTravelTime(),
			Polyline:      polyline,
		})
	}

	return findRouteResponse{
		Path:      plan.GetPath(),
		Legs:      legs,
		TotalTime: plan.GetTotalTime(),
		Transfers: plan.GetTransfers(),
		Alg:       routeSearchAlg,
		Found:     found,
	}
}

type nearestStationResponse struct {
	ID         string  `json:"id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKM float64 `json:"distance_km"`
	Bearing    float64 `json:"bearing"`
}

func NewNearestStationsResponse(neighbors []spatialindex.StationNeighbor) []nearestStationResponse {
	stations := make([]nearestStationResponse, 0, len(neighbors))
	for _, neighbor := range neighbors {
		station := neighbor.GetStation()
		stations = append(stations, nearestStationResponse{
			ID:         station.GetID(),
			Lat:        station.GetLat(),
			Lon:        station.GetLon(),
			DistanceKM: neighbor.GetDistanceKM(),
			Bearing:    neighbor.GetBearing(),
		})
	}
	return stations
}

type statsResponse struct {
	Stations          int            `json:"stations"`
	Connections       int            `json:"connections"`
	ConnectionsByType map[string]int `json:"connections_by_type"`
}

func NewStatsResponse(stats metrics.NetworkStats) statsResponse {
	byType := make(map[string]int, len(pkg.TransportTypes()))
	for _, transportType := range pkg.TransportTypes() {
		byType[transportType.String()] = stats.GetConnectionsOfType(transportType)
	}

	return statsResponse{
		Stations:          stats.GetStations(),
		Connections:       stats.GetConnections(),
		ConnectionsByType: byType,
	}
}
