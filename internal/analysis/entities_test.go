package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntities_LabeledDateWinsOverBareNumbers(t *testing.T) {
	text := "Contact: 9876543210 Date: March 15, 2026"
	got := ExtractEntities(text)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2026-03-15", *got.Date)
}

func TestExtractEntities_NumericDate(t *testing.T) {
	got := ExtractEntities("Join us on 15/03/2026 at the main campus")
	require.NotNil(t, got.Date)
	assert.Equal(t, "2026-03-15", *got.Date)
}

func TestExtractEntities_TimeRange(t *testing.T) {
	got := ExtractEntities("Time: 9:00 am - 6:00 pm")
	require.NotNil(t, got.Time)
	assert.Equal(t, "9:00 AM - 6:00 PM", *got.Time)
}

func TestExtractEntities_TimeWithTo(t *testing.T) {
	got := ExtractEntities("Timing: 10:00 AM to 5:00 PM")
	require.NotNil(t, got.Time)
	assert.Equal(t, "10:00 AM - 5:00 PM", *got.Time)
}

func TestExtractEntities_BareTime(t *testing.T) {
	got := ExtractEntities("Doors open at 10:00 AM sharp")
	require.NotNil(t, got.Time)
	assert.Equal(t, "10:00 AM", *got.Time)
}

func TestExtractEntities_VenueStopsAtNextLabel(t *testing.T) {
	got := ExtractEntities("Venue: Main Auditorium Block-A Date: March 15, 2026")
	require.NotNil(t, got.Location)
	assert.Equal(t, "Main Auditorium Block-A", *got.Location)
}

func TestExtractEntities_OrganizerStripsCollaborationTail(t *testing.T) {
	got := ExtractEntities("Organized by Dept of CSE in collaboration with IEEE")
	require.NotNil(t, got.Organizer)
	assert.Equal(t, "Dept of CSE", *got.Organizer)
}

func TestExtractEntities_OrganizerLabeled(t *testing.T) {
	got := ExtractEntities("Organized by: Computer Science Department Contact: events@amity.edu")
	require.NotNil(t, got.Organizer)
	assert.Equal(t, "Computer Science Department", *got.Organizer)
}

func TestExtractEntities_Deadline(t *testing.T) {
	got := ExtractEntities("Register by: March 10, 2026")
	require.NotNil(t, got.Deadline)
	assert.Equal(t, "2026-03-10", *got.Deadline)
}

func TestExtractEntities_LastDateDeadline(t *testing.T) {
	got := ExtractEntities("Last date: 10/03/2026")
	require.NotNil(t, got.Deadline)
	assert.Equal(t, "2026-03-10", *got.Deadline)
}

func TestExtractEntities_EmailAndPhone(t *testing.T) {
	got := ExtractEntities("Contact: 9876543210 or events@amity.edu")
	require.NotNil(t, got.Email)
	assert.Equal(t, "events@amity.edu", *got.Email)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "9876543210", *got.Phone)
}

func TestExtractEntities_NothingFound(t *testing.T) {
	got := ExtractEntities("an evening of music and dance")
	assert.Nil(t, got.Date)
	assert.Nil(t, got.Time)
	assert.Nil(t, got.Location)
	assert.Nil(t, got.Organizer)
	assert.Nil(t, got.Deadline)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.Phone)
}
