package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/transitx/pkg/util"
)

// snapshot format, bzip2 compressed text. string fields are tab separated
// because station ids may contain spaces:
//
//	numStations numExplicitStations numConnections
//	station id lines, one per station in first-seen order
//	explicit station records: id \t capacity \t lat \t lon
//	connection records: from \t to \t type \t travelTime \t timetable csv
//
// reading replays the records through AddStation/AddConnection, so arena
// ids, adjacency order and station order all round trip.

func (tn *TransitNetwork) WriteNetwork(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %d\n",
		len(tn.stationOrder), len(tn.stations), len(tn.connections))

	for _, id := range tn.stationOrder {
		fmt.Fprintf(w, "%s\n", id)
	}

	for _, id := range tn.stationOrder {
		station, ok := tn.stations[id]
		if !ok {
			continue
		}
		latF := strconv.FormatFloat(station.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(station.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", station.id, station.capacity, latF, lonF)
	}

	for _, conn := range tn.connections {
		travelTimeF := strconv.FormatFloat(conn.travelTime, 'f', -1, 64)

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			conn.from, conn.to, conn.transportType.String(), travelTimeF,
			strings.Join(conn.timetable, ","))
	}

	return w.Flush()
}

func ReadNetwork(filename string) (*TransitNetwork, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("bad network snapshot header: %q", line)
	}

	numStations, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, err
	}
	numExplicit, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, err
	}
	numConnections, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, err
	}

	tn := NewTransitNetwork()

	for i := 0; i < numStations; i++ {
		id, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		tn.registerStation(id)
	}

	for i := 0; i < numExplicit; i++ {
		stationLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		if err := tn.parseStationRecord(stationLine); err != nil {
			return nil, err
		}
	}

	for i := 0; i < numConnections; i++ {
		connLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		if err := tn.parseConnectionRecord(connLine); err != nil {
			return nil, err
		}
	}

	return tn, nil
}

func (tn *TransitNetwork) parseStationRecord(line string) error {
	tokens := strings.Split(line, "\t")
	if len(tokens) != 4 {
		return fmt.Errorf("bad station record: %q", line)
	}

	capacity, err := strconv.ParseInt(tokens[1], 10, 32)
	if err != nil {
		return err
	}
	lat, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return err
	}
	lon, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return err
	}

	tn.AddStation(tokens[0], int32(capacity), lat, lon)
	return nil
}

func (tn *TransitNetwork) parseConnectionRecord(line string) error {
	tokens := strings.Split(line, "\t")
	if len(tokens) != 5 {
		return fmt.Errorf("bad connection record: %q", line)
	}

	travelTime, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return err
	}

	timetable := []string{}
	if tokens[4] != "" {
		timetable = strings.Split(tokens[4], ",")
	}

	_, err = tn.AddConnection(tokens[0], tokens[1], tokens[2], travelTime, timetable)
	return err
}
