package datastructure

import (
	"github.com/lintang-b-s/transitx/pkg"
)

// Connection is one undirected transit link between two stations. parallel
// connections with different transport types may exist for the same pair,
// each one occupies its own slot in the network arena.
type Connection struct {
	id            Index
	from          string
	to            string
	transportType pkg.TransportType
	travelTime    float64
	timetable     []string
}

func NewConnection(id Index, from, to string, transportType pkg.TransportType,
	travelTime float64, timetable []string) *Connection {
	return &Connection{
		id:            id,
		from:          from,
		to:            to,
		transportType: transportType,
		travelTime:    travelTime,
		timetable:     timetable,
	}
}

func (c *Connection) GetID() Index {
	return c.id
}

func (c *Connection) GetFrom() string {
	return c.from
}

func (c *Connection) GetTo() string {
	return c.to
}

func (c *Connection) GetTransportType() pkg.TransportType {
	return c.transportType
}

func (c *Connection) GetTravelTime() float64 {
	return c.travelTime
}

func (c *Connection) SetTravelTime(travelTime float64) {
	c.travelTime = travelTime
}

func (c *Connection) GetTimetable() []string {
	return c.timetable
}

func (c *Connection) SetTimetable(timetable []string) {
	c.timetable = timetable
}

// OtherEndpoint returns the endpoint opposite to station. for a self loop
// it returns station itself.
func (c *Connection) OtherEndpoint(station string) string {
	if c.from == station {
		return c.to
	}
	return c.from
}
