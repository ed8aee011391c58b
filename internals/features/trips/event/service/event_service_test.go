package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventDTO "naviplan_backend/internals/features/trips/event/dto"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }

func validCreate() eventDTO.CreateEventRequest {
	return eventDTO.CreateEventRequest{
		EventTitle:    "Museum visit",
		EventLocation: "Main St Museum",
		EventDuration: "PT2H",
	}
}

func validUpdate() eventDTO.UpdateEventRequest {
	return eventDTO.UpdateEventRequest{
		EventTitle:       "Museum visit",
		EventDescription: "Morning at the museum",
		EventLocation:    "Main St Museum",
		EventDuration:    "PT2H",
	}
}

func TestValidateEventForCreate(t *testing.T) {
	t.Run("valid minimal payload", func(t *testing.T) {
		assert.Nil(t, ValidateEventForCreate(validCreate()))
	})

	t.Run("empty description is allowed on create", func(t *testing.T) {
		req := validCreate()
		req.EventDescription = ""
		assert.Nil(t, ValidateEventForCreate(req))
	})

	t.Run("blank title rejected", func(t *testing.T) {
		req := validCreate()
		req.EventTitle = "   "
		verr := ValidateEventForCreate(req)
		require.NotNil(t, verr)
		assert.Equal(t, "Event title cannot be empty", verr.Reason)
	})

	t.Run("no location text and no address rejected", func(t *testing.T) {
		req := validCreate()
		req.EventLocation = ""
		req.LocationAddress = nil
		verr := ValidateEventForCreate(req)
		require.NotNil(t, verr)
		assert.Equal(t, "Event location cannot be empty", verr.Reason)
	})

	t.Run("structured address alone satisfies location rule", func(t *testing.T) {
		req := validCreate()
		req.EventLocation = ""
		req.LocationAddress = ptrS("1 Main St")
		assert.Nil(t, ValidateEventForCreate(req))
	})

	t.Run("blank address does not satisfy location rule", func(t *testing.T) {
		req := validCreate()
		req.EventLocation = ""
		req.LocationAddress = ptrS("   ")
		assert.NotNil(t, ValidateEventForCreate(req))
	})
}

func TestValidateEventForUpdate_RequiresDescription(t *testing.T) {
	req := validUpdate()
	req.EventDescription = ""
	verr := ValidateEventForUpdate(req)
	require.NotNil(t, verr)
	assert.Equal(t, "Event description cannot be empty", verr.Reason)

	// create dengan payload setara tetap lolos — asimetri disengaja
	createReq := validCreate()
	createReq.EventDescription = ""
	assert.Nil(t, ValidateEventForCreate(createReq))
}

func TestCoordinatePairing(t *testing.T) {
	cases := []struct {
		name    string
		lat     *float64
		lon     *float64
		wantErr bool
	}{
		{"neither", nil, nil, false},
		{"both", ptrF(40.0), ptrF(-73.9), false},
		{"latitude only", ptrF(40.0), nil, true},
		{"longitude only", nil, ptrF(-73.9), true},
	}
	for _, tc := range cases {
		t.Run("create "+tc.name, func(t *testing.T) {
			req := validCreate()
			req.LocationLatitude = tc.lat
			req.LocationLongitude = tc.lon
			verr := ValidateEventForCreate(req)
			if tc.wantErr {
				require.NotNil(t, verr)
				assert.Equal(t, "Both latitude and longitude are required when providing coordinates", verr.Reason)
			} else {
				assert.Nil(t, verr)
			}
		})
		t.Run("update "+tc.name, func(t *testing.T) {
			req := validUpdate()
			req.LocationLatitude = tc.lat
			req.LocationLongitude = tc.lon
			verr := ValidateEventForUpdate(req)
			if tc.wantErr {
				require.NotNil(t, verr)
			} else {
				assert.Nil(t, verr)
			}
		})
	}
}
