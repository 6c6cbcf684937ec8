package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/birthday-board/internal/config"
	"github.com/tartampluch/birthday-board/internal/roster"
)

// BuildCalendar renders the roster's birthdays for the current year as
// an iCalendar feed, so the board has a subscribable companion. Records
// with day/month values that form no real date are left out. An empty
// roster yields the minimal valid stub calendar.
func BuildCalendar(now time.Time, employees []roster.Employee) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	year := now.Year()
	for _, e := range employees {
		if !e.HasValidBirthday() {
			continue
		}

		eventDate := time.Date(year, time.Month(e.BirthMonth), e.BirthDay, 0, 0, 0, 0, now.Location())
		if eventDate.Day() != e.BirthDay || int(eventDate.Month()) != e.BirthMonth {
			// Feb 30 and friends normalize away; skip them.
			continue
		}

		name := e.FullName()

		// Deterministic UID so feed clients keep event identity stable
		// across regenerations.
		input := fmt.Sprintf(config.FormatHashInput, name, e.BirthMonth, e.BirthDay, config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uid := fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, uid)
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
