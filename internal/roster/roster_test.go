package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Test Cases: FullName
// -----------------------------------------------------------------------------

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		employee Employee
		expected string
	}{
		{
			name:     "Both parts present",
			employee: Employee{FirstName: "John", LastName: "Doe"},
			expected: "John Doe",
		},
		{
			name:     "Missing last name yields no trailing space",
			employee: Employee{FirstName: "Cher"},
			expected: "Cher",
		},
		{
			name:     "Missing first name yields no leading space",
			employee: Employee{LastName: "Doe"},
			expected: "Doe",
		},
		{
			name:     "Whitespace-only parts are dropped",
			employee: Employee{FirstName: "  ", LastName: " Doe "},
			expected: "Doe",
		},
		{
			name:     "Both empty",
			employee: Employee{},
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.employee.FullName())
		})
	}
}

func TestHasValidBirthday(t *testing.T) {
	assert.True(t, Employee{BirthDay: 29, BirthMonth: 2}.HasValidBirthday())
	assert.False(t, Employee{BirthDay: 0, BirthMonth: 6}.HasValidBirthday())
	assert.False(t, Employee{BirthDay: 15, BirthMonth: 13}.HasValidBirthday())
	assert.False(t, Employee{BirthDay: 32, BirthMonth: 1}.HasValidBirthday())
}

// -----------------------------------------------------------------------------
// Test Cases: ParseCSV
// -----------------------------------------------------------------------------

func TestParseCSV_Basic(t *testing.T) {
	input := strings.Join([]string{
		"John,Doe,19,7,john.png",
		"Jane,Smith,25,12,jane.jpg",
	}, "\n")

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, Employee{FirstName: "John", LastName: "Doe", BirthDay: 19, BirthMonth: 7, PhotoName: "john.png"}, employees[0])
	assert.Equal(t, Employee{FirstName: "Jane", LastName: "Smith", BirthDay: 25, BirthMonth: 12, PhotoName: "jane.jpg"}, employees[1])
}

func TestParseCSV_HeaderRowIsSkipped(t *testing.T) {
	input := "firstName,lastName,birthDay,birthMonth,photoName\nJohn,Doe,19,7,john.png\n"

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "John", employees[0].FirstName)
}

func TestParseCSV_HeaderDetectionIsCaseInsensitive(t *testing.T) {
	input := "FIRSTNAME,LASTNAME,BIRTHDAY,BIRTHMONTH,PHOTONAME\nJohn,Doe,19,7,x.png\n"

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestParseCSV_NonNumericDatesMapToZero(t *testing.T) {
	input := "John,Doe,nineteen,7,john.png\n"

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, 0, employees[0].BirthDay, "A non-numeric day never matches a window date")
	assert.Equal(t, 7, employees[0].BirthMonth)
	assert.False(t, employees[0].HasValidBirthday())
}

func TestParseCSV_ShortRowsAreSkipped(t *testing.T) {
	input := strings.Join([]string{
		"John,Doe,19,7,john.png",
		"orphan,row",
		"Jane,Smith,25,12,jane.jpg",
	}, "\n")

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, employees, 2, "A short row must not discard the rest of the roster")
	assert.Equal(t, "Jane", employees[1].FirstName)
}

func TestParseCSV_ExtraColumnsAreIgnored(t *testing.T) {
	input := "John,Doe,19,7,john.png,extra,columns\n"

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "john.png", employees[0].PhotoName)
}

func TestParseCSV_FieldsAreTrimmed(t *testing.T) {
	input := "  John , Doe , 19 , 7 , john.png \n"

	employees, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "John", employees[0].FirstName)
	assert.Equal(t, 19, employees[0].BirthDay)
	assert.Equal(t, "john.png", employees[0].PhotoName)
}

func TestParseCSV_Empty(t *testing.T) {
	employees, err := ParseCSV(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, employees)
}
