package player

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// rosterHeader is the canonical column order for roster import and export.
var rosterHeader = []string{
	"id", "full_name", "email", "date_of_birth", "gender",
	"role", "state", "country", "jersey_number",
}

// dobLayouts are the accepted date formats for roster files, tried in order.
var dobLayouts = []string{"2006-01-02", "02/01/2006", "01-02-2006"}

// RowError reports a roster row that could not be imported. Row numbers are
// 1-based and include the header row, matching what a spreadsheet shows.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ParseRoster reads a CSV roster and returns the importable players plus
// per-row errors. A bad row never aborts the batch. A missing or unparseable
// date of birth falls back to today rather than rejecting the row.
func ParseRoster(r io.Reader, today time.Time) ([]Player, []RowError) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var players []Player
	var rowErrs []RowError

	header, err := cr.Read()
	if err != nil {
		return nil, []RowError{{Row: 1, Message: "could not read header row: " + err.Error()}}
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"full_name", "email"} {
		if _, ok := col[required]; !ok {
			return nil, []RowError{{Row: 1, Message: "missing required column " + required}}
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: row, Message: "malformed row: " + err.Error()})
			continue
		}

		p := Player{
			ID:               field(record, "id"),
			FullName:         field(record, "full_name"),
			Email:            field(record, "email"),
			Gender:           field(record, "gender"),
			Role:             field(record, "role"),
			State:            field(record, "state"),
			Country:          field(record, "country"),
			RegistrationDate: today,
		}
		if p.FullName == "" {
			rowErrs = append(rowErrs, RowError{Row: row, Message: "full_name is required"})
			continue
		}
		if p.Email == "" {
			rowErrs = append(rowErrs, RowError{Row: row, Message: "email is required"})
			continue
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		p.DateOfBirth = today
		if dob := field(record, "date_of_birth"); dob != "" {
			for _, layout := range dobLayouts {
				if t, err := time.Parse(layout, dob); err == nil {
					p.DateOfBirth = t
					break
				}
			}
		}

		if jn := field(record, "jersey_number"); jn != "" {
			n, err := strconv.Atoi(jn)
			if err != nil {
				rowErrs = append(rowErrs, RowError{Row: row, Message: fmt.Sprintf("invalid jersey_number %q", jn)})
				continue
			}
			p.JerseyNumber = &n
		}

		players = append(players, p)
	}
	return players, rowErrs
}

// WriteRoster renders players as a CSV roster in the canonical column order.
func WriteRoster(w io.Writer, players []Player) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rosterHeader); err != nil {
		return err
	}
	for _, p := range players {
		jersey := ""
		if p.JerseyNumber != nil {
			jersey = strconv.Itoa(*p.JerseyNumber)
		}
		record := []string{
			p.ID, p.FullName, p.Email, p.DateOfBirth.Format("2006-01-02"),
			p.Gender, p.Role, p.State, p.Country, jersey,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
