// Package export writes flattened schedules to interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/quantaops/pulsekit/core/schedule"
)

// Row is one flattened schedule entry.
type Row struct {
	Time     int64  `json:"time"`
	Duration int64  `json:"duration"`
	Channel  string `json:"channel"`
	Name     string `json:"name"`
}

// Flatten converts a schedule into rows, one per instruction and channel,
// in time order.
func Flatten(s *schedule.Schedule) []Row {
	var rows []Row
	for _, e := range s.Instructions() {
		for _, ch := range e.Inst.Channels() {
			rows = append(rows, Row{
				Time:     e.Time,
				Duration: e.Inst.Duration(),
				Channel:  ch.Name(),
				Name:     e.Inst.Name(),
			})
		}
	}
	return rows
}

// WriteJSON writes the flattened schedule to w in JSON format.
func WriteJSON(w io.Writer, s *schedule.Schedule) error {
	enc := json.NewEncoder(w)
	return enc.Encode(Flatten(s))
}

// WriteCSV writes the flattened schedule to w in CSV format.
func WriteCSV(w io.Writer, s *schedule.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "duration", "channel", "name"}); err != nil {
		return err
	}
	for _, r := range Flatten(s) {
		rec := []string{
			strconv.FormatInt(r.Time, 10),
			strconv.FormatInt(r.Duration, 10),
			r.Channel,
			r.Name,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
