package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredReportsFirstMissingField(t *testing.T) {
	err := Required(
		Field{Name: "vaccineName", Value: ""},
		Field{Name: "doseNumber", Value: ""},
		Field{Name: "location", Value: "Clinic"},
	)
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "vaccineName", missing.Field, "first missing field wins")
}

func TestRequiredTreatsWhitespaceAsEmpty(t *testing.T) {
	err := Required(Field{Name: "medicineName", Value: "   "})
	require.Error(t, err)

	field, ok := IsFieldError(err)
	assert.True(t, ok)
	assert.Equal(t, "medicineName", field)
}

func TestRequiredAllPresent(t *testing.T) {
	err := Required(
		Field{Name: "doctorName", Value: "Dr. X"},
		Field{Name: "specialty", Value: "Cardiology"},
	)
	assert.NoError(t, err)
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("startDate", "2024-01-31"))
	assert.NoError(t, Date("startDate", ""), "empty passes, Required owns presence")
	assert.Error(t, Date("startDate", "31/01/2024"))
	assert.Error(t, Date("startDate", "2024-13-01"))
}

func TestClock(t *testing.T) {
	assert.NoError(t, Clock("time", "08:30"))
	assert.NoError(t, Clock("time", "23:59"))
	assert.NoError(t, Clock("time", ""))
	assert.Error(t, Clock("time", "25:00"))
	assert.Error(t, Clock("time", "8am"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("email", "user@example.com"))
	assert.NoError(t, Email("email", ""))
	assert.Error(t, Email("email", "not-an-email"))
}

func TestMinLen(t *testing.T) {
	assert.NoError(t, MinLen("password", "secret1", 6))
	assert.Error(t, MinLen("password", "12345", 6))
	assert.Error(t, MinLen("password", "  12345  ", 6), "length counted after trimming")
}

func TestIsFieldErrorOnOtherErrors(t *testing.T) {
	_, ok := IsFieldError(assert.AnError)
	assert.False(t, ok)
}
