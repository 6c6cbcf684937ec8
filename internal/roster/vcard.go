package roster

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/birthday-board/internal/config"
)

// ParseVCards reads employees from a vCard stream, for teams whose
// directory exports contacts instead of a spreadsheet. Cards without a
// parseable BDAY are skipped; a malformed card never aborts the rest
// of the stream.
func ParseVCards(r io.Reader) ([]Employee, error) {
	decoder := vcard.NewDecoder(r)

	var employees []Employee
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompRoster,
				config.LogKeyError, err,
			)
			continue
		}

		bday := card.Get(vcard.FieldBirthday)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := parseBDay(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompRoster,
				config.LogKeyError, err,
			)
			continue
		}

		first, last := cardName(card)
		photo := ""
		if p := card.Get(vcard.FieldPhoto); p != nil {
			photo = strings.TrimSpace(p.Value)
		}

		employees = append(employees, Employee{
			FirstName:  first,
			LastName:   last,
			BirthDay:   birthDate.Day(),
			BirthMonth: int(birthDate.Month()),
			PhotoName:  photo,
		})
	}
	return employees, nil
}

// cardName extracts a first/last pair, preferring the structured N
// field and falling back to splitting the formatted FN on the first
// space.
func cardName(card vcard.Card) (first, last string) {
	if name := card.Name(); name != nil {
		return strings.TrimSpace(name.GivenName), strings.TrimSpace(name.FamilyName)
	}
	if fn := card.Get(vcard.FieldFormattedName); fn != nil {
		full := strings.TrimSpace(fn.Value)
		if i := strings.IndexByte(full, ' '); i > 0 {
			return full[:i], strings.TrimSpace(full[i+1:])
		}
		return full, ""
	}
	return "", ""
}

// parseBDay handles full and truncated (--MM-DD) vCard date formats.
func parseBDay(value string) (time.Time, error) {
	withYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
	}
	for _, f := range withYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	withoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range withoutYear {
		if t, err := time.Parse(f, value); err == nil {
			// Leap-year fallback keeps --02-29 parseable.
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.New(config.MsgSkippedDate)
}
