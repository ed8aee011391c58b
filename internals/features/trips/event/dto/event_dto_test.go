package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventModel "naviplan_backend/internals/features/trips/event/model"
	locationModel "naviplan_backend/internals/features/trips/location/model"
	"naviplan_backend/internals/helpers/isoduration"
)

func strPtr(v string) *string { return &v }

func TestResolvedAddress_PrefersStructuredAddress(t *testing.T) {
	req := CreateEventRequest{
		EventLocation:   "Main St Museum",
		LocationAddress: strPtr("1 Main St, Springfield"),
	}
	assert.Equal(t, "1 Main St, Springfield", req.ResolvedAddress())

	req.LocationAddress = nil
	assert.Equal(t, "Main St Museum", req.ResolvedAddress())
}

func TestResolvedTitle_FallsBackToEventTitle(t *testing.T) {
	req := UpdateEventRequest{
		EventTitle:    "Museum visit",
		LocationTitle: strPtr("Springfield Museum"),
	}
	assert.Equal(t, "Springfield Museum", req.ResolvedTitle())

	req.LocationTitle = nil
	assert.Equal(t, "Museum visit", req.ResolvedTitle())
}

func TestNormalize_BlankPointersBecomeNil(t *testing.T) {
	req := CreateEventRequest{
		EventTitle:      "  Museum visit  ",
		EventLocation:   " Main St Museum ",
		EventDuration:   " PT2H ",
		LocationAddress: strPtr("   "),
		LocationTitle:   strPtr("  Springfield Museum  "),
	}
	req.Normalize()

	assert.Equal(t, "Museum visit", req.EventTitle)
	assert.Equal(t, "Main St Museum", req.EventLocation)
	assert.Equal(t, "PT2H", req.EventDuration)
	assert.Nil(t, req.LocationAddress)
	require.NotNil(t, req.LocationTitle)
	assert.Equal(t, "Springfield Museum", *req.LocationTitle)
}

func TestToModel_DenormalizesEventLocation(t *testing.T) {
	req := CreateEventRequest{
		EventTitle:      "Museum visit",
		EventLocation:   "Main St Museum",
		LocationAddress: strPtr("1 Main St, Springfield"),
	}
	m := req.ToModel(7, isoduration.MustParse("PT2H"))

	assert.Equal(t, 7, m.TripID)
	assert.Equal(t, "Museum visit", m.EventTitle)
	// alamat terstruktur menang atas teks bebas
	assert.Equal(t, "1 Main St, Springfield", m.EventLocation)
	assert.Equal(t, "PT2H", m.EventDuration.String())
}

func TestNewEventResponse(t *testing.T) {
	ev := eventModel.EventModel{
		EventID:          3,
		EventTitle:       "Museum visit",
		EventDescription: "Morning",
		EventLocation:    "Main St Museum",
		EventDuration:    isoduration.MustParse("PT2H"),
		TripID:           1,
	}

	t.Run("without location", func(t *testing.T) {
		resp := NewEventResponse(ev, nil)
		assert.Equal(t, 3, resp.ID)
		assert.Nil(t, resp.Location)
		assert.Nil(t, resp.LocationLatitude)
		assert.Nil(t, resp.LocationLongitude)
	})

	t.Run("with location", func(t *testing.T) {
		loc := locationModel.LocationModel{
			LocationID:        11,
			LocationLatitude:  40.0,
			LocationLongitude: -73.9,
			LocationAddress:   strPtr("Main St Museum"),
			LocationTitle:     strPtr("Museum visit"),
			LocationEventID:   3,
		}
		resp := NewEventResponse(ev, &loc)
		require.NotNil(t, resp.Location)
		assert.Equal(t, 11, resp.Location.ID)
		assert.Equal(t, 3, resp.Location.EventID)
		require.NotNil(t, resp.LocationLatitude)
		assert.Equal(t, 40.0, *resp.LocationLatitude)
		require.NotNil(t, resp.LocationLongitude)
		assert.Equal(t, -73.9, *resp.LocationLongitude)
	})
}
