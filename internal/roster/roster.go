package roster

import (
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Employee is one roster row. Records are immutable once parsed and
// carry no identity beyond their position within a single run.
type Employee struct {
	FirstName  string
	LastName   string
	BirthDay   int // 1-31; 0 when the source value was not numeric
	BirthMonth int // 1-12; 0 when the source value was not numeric
	PhotoName  string
}

// FullName joins first and last name with a single space, dropping
// empty parts.
func (e Employee) FullName() string {
	parts := make([]string, 0, 2)
	if f := strings.TrimSpace(e.FirstName); f != "" {
		parts = append(parts, f)
	}
	if l := strings.TrimSpace(e.LastName); l != "" {
		parts = append(parts, l)
	}
	return strings.Join(parts, " ")
}

// HasValidBirthday reports whether the day/month pair could ever match
// a calendar date. Out-of-range values are kept on the record but are
// guaranteed to never select.
func (e Employee) HasValidBirthday() bool {
	return e.BirthDay >= 1 && e.BirthDay <= 31 && e.BirthMonth >= 1 && e.BirthMonth <= 12
}

// ParseCSV reads employees from a CSV stream with the column order
// firstName,lastName,birthDay,birthMonth,photoName. Day and month are
// parsed permissively: a non-numeric value yields 0, which never
// matches any window date, rather than failing the whole roster.
func ParseCSV(r io.Reader) ([]Employee, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var employees []Employee
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row should not discard the rest of the roster.
			slog.Warn(config.MsgSkippedRow,
				config.LogKeyComponent, config.CompRoster,
				config.LogKeyError, err,
			)
			continue
		}

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if len(record) < config.CSVFieldCount {
			slog.Warn(config.MsgSkippedRow,
				config.LogKeyComponent, config.CompRoster,
				config.LogKeyCount, len(record),
			)
			continue
		}

		employees = append(employees, Employee{
			FirstName:  strings.TrimSpace(record[0]),
			LastName:   strings.TrimSpace(record[1]),
			BirthDay:   permissiveInt(record[2]),
			BirthMonth: permissiveInt(record[3]),
			PhotoName:  strings.TrimSpace(record[4]),
		})
	}
	return employees, nil
}

// isHeader detects the conventional header row so it does not become a
// phantom employee.
func isHeader(record []string) bool {
	return len(record) > 0 &&
		strings.EqualFold(strings.TrimSpace(record[0]), config.CSVHeaderFirstCol)
}

// permissiveInt converts a day/month cell, mapping anything non-numeric
// to 0 so it can never match a window date.
func permissiveInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
