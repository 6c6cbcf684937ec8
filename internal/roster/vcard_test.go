package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vcardStream(cards ...string) string {
	return strings.Join(cards, "")
}

func simpleCard(fn, n, bday string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\nVERSION:4.0\r\n")
	if fn != "" {
		b.WriteString("FN:" + fn + "\r\n")
	}
	if n != "" {
		b.WriteString("N:" + n + "\r\n")
	}
	if bday != "" {
		b.WriteString("BDAY:" + bday + "\r\n")
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestParseVCards_StructuredName(t *testing.T) {
	stream := simpleCard("John Doe", "Doe;John;;;", "1990-07-19")

	employees, err := ParseVCards(strings.NewReader(stream))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "John", employees[0].FirstName)
	assert.Equal(t, "Doe", employees[0].LastName)
	assert.Equal(t, 19, employees[0].BirthDay)
	assert.Equal(t, 7, employees[0].BirthMonth)
}

func TestParseVCards_FormattedNameFallback(t *testing.T) {
	stream := simpleCard("Jane van Dyke", "", "19851225")

	employees, err := ParseVCards(strings.NewReader(stream))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Jane", employees[0].FirstName)
	assert.Equal(t, "van Dyke", employees[0].LastName, "FN splits on the first space only")
	assert.Equal(t, 25, employees[0].BirthDay)
	assert.Equal(t, 12, employees[0].BirthMonth)
}

func TestParseVCards_TruncatedBirthday(t *testing.T) {
	stream := vcardStream(
		simpleCard("No Year", "Year;No;;;", "--03-14"),
		simpleCard("Leap Day", "Day;Leap;;;", "--02-29"),
	)

	employees, err := ParseVCards(strings.NewReader(stream))

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, 14, employees[0].BirthDay)
	assert.Equal(t, 3, employees[0].BirthMonth)
	assert.Equal(t, 29, employees[1].BirthDay, "--02-29 must survive the year-less parse")
	assert.Equal(t, 2, employees[1].BirthMonth)
}

func TestParseVCards_CardsWithoutBirthdayAreSkipped(t *testing.T) {
	stream := vcardStream(
		simpleCard("No Birthday", "Birthday;No;;;", ""),
		simpleCard("Has Birthday", "Birthday;Has;;;", "1990-06-01"),
	)

	employees, err := ParseVCards(strings.NewReader(stream))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Has", employees[0].FirstName)
}

func TestParseVCards_UnparseableBirthdayIsSkipped(t *testing.T) {
	stream := simpleCard("Bad Date", "Date;Bad;;;", "sometime in June")

	employees, err := ParseVCards(strings.NewReader(stream))

	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestParseVCards_PhotoProperty(t *testing.T) {
	stream := "BEGIN:VCARD\r\nVERSION:4.0\r\n" +
		"FN:John Doe\r\n" +
		"BDAY:1990-07-19\r\n" +
		"PHOTO:https://cdn.example.com/john.png\r\n" +
		"END:VCARD\r\n"

	employees, err := ParseVCards(strings.NewReader(stream))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "https://cdn.example.com/john.png", employees[0].PhotoName)
}

func TestParseVCards_Empty(t *testing.T) {
	employees, err := ParseVCards(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, employees)
}
