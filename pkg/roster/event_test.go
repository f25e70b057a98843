package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent("15/01/2024", "9:00 AM", "17:30", "02-01-2006", "")
	require.NoError(t, err)
	assert.Equal(t, Event{Date: "15-01-2024", From: "09:00", To: "17:30"}, ev)
}

func TestNewEvent_DefaultsAndOptionalTimes(t *testing.T) {
	ev, err := NewEvent(" 2024-01-15 ", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, Event{Date: "2024-01-15"}, ev)
}

func TestNewEvent_Errors(t *testing.T) {
	_, err := NewEvent("", "09:00", "10:00", "", "")
	assert.ErrorIs(t, err, ErrEventDateRequired)

	_, err = NewEvent("yesterday", "", "", "", "")
	assert.Error(t, err)

	_, err = NewEvent("2024-01-15", "25:99", "", "", "")
	assert.Error(t, err)

	_, err = NewEvent("2024-01-15", "17:00", "09:00", "", "")
	assert.EqualError(t, err, "end time 09:00 is before start time 17:00")
}

func TestApplyEvent_DoesNotMutateInput(t *testing.T) {
	in := []Record{{Name: "A", Date: "old", From: "1", To: "2"}}
	out := ApplyEvent(in, Event{Date: "new"})

	assert.Equal(t, "old", in[0].Date)
	assert.Equal(t, "new", out[0].Date)
	assert.Empty(t, out[0].From)
}
