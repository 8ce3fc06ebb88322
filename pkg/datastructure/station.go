package datastructure

type Station struct {
	id       string
	capacity int32
	lat      float64
	lon      float64
}

func NewStation(id string, capacity int32, lat, lon float64) *Station {
	return &Station{
		id:       id,
		capacity: capacity,
		lat:      lat,
		lon:      lon,
	}
}

func (s *Station) GetID() string {
	return s.id
}

func (s *Station) GetCapacity() int32 {
	return s.capacity
}

func (s *Station) SetCapacity(capacity int32) {
	s.capacity = capacity
}

func (s *Station) GetLat() float64 {
	return s.lat
}

func (s *Station) GetLon() float64 {
	return s.lon
}

func (s *Station) SetCoordinates(lat, lon float64) {
	s.lat = lat
	s.lon = lon
}

// StationPair is the unordered endpoint pair of a connection. both
// orientations of the same two stations map to the same pair.
type StationPair struct {
	a, b string
}

func NewStationPair(u, v string) StationPair {
	if u > v {
		u, v = v, u
	}
	return StationPair{a: u, b: v}
}

func (p StationPair) GetA() string {
	return p.a
}

func (p StationPair) GetB() string {
	return p.b
}
