package dto

import (
	"strings"

	eventModel "naviplan_backend/internals/features/trips/event/model"
	locationModel "naviplan_backend/internals/features/trips/location/model"
	"naviplan_backend/internals/helpers/isoduration"
)

/* =========================================================
   CREATE / UPDATE REQUEST
   ========================================================= */

// CreateEventRequest adalah payload POST /trips/:tripId/events.
// trip_id diambil dari path, bukan body.
type CreateEventRequest struct {
	EventTitle        string   `json:"event_title" validate:"required,max=100"`
	EventDescription  string   `json:"event_description" validate:"max=500"`
	EventLocation     string   `json:"event_location" validate:"max=255"`
	EventDuration     string   `json:"event_duration" validate:"required,max=200"`
	LocationLatitude  *float64 `json:"location_latitude"`
	LocationLongitude *float64 `json:"location_longitude"`
	LocationAddress   *string  `json:"location_address"`
	LocationTitle     *string  `json:"location_title"`
}

// UpdateEventRequest adalah payload PUT /events/:eventId — full replace,
// bukan partial patch; seluruh entity divalidasi ulang.
type UpdateEventRequest struct {
	EventTitle        string   `json:"event_title" validate:"required,max=100"`
	EventDescription  string   `json:"event_description" validate:"required,max=500"`
	EventLocation     string   `json:"event_location" validate:"max=255"`
	EventDuration     string   `json:"event_duration" validate:"required,max=200"`
	LocationLatitude  *float64 `json:"location_latitude"`
	LocationLongitude *float64 `json:"location_longitude"`
	LocationAddress   *string  `json:"location_address"`
	LocationTitle     *string  `json:"location_title"`
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}

func (r *CreateEventRequest) Normalize() {
	r.EventTitle = strings.TrimSpace(r.EventTitle)
	r.EventDescription = strings.TrimSpace(r.EventDescription)
	r.EventLocation = strings.TrimSpace(r.EventLocation)
	r.EventDuration = strings.TrimSpace(r.EventDuration)
	trimPtr(&r.LocationAddress)
	trimPtr(&r.LocationTitle)
}

func (r *UpdateEventRequest) Normalize() {
	r.EventTitle = strings.TrimSpace(r.EventTitle)
	r.EventDescription = strings.TrimSpace(r.EventDescription)
	r.EventLocation = strings.TrimSpace(r.EventLocation)
	r.EventDuration = strings.TrimSpace(r.EventDuration)
	trimPtr(&r.LocationAddress)
	trimPtr(&r.LocationTitle)
}

// ResolvedAddress: alamat terstruktur menang, fallback ke teks bebas.
// Dipakai untuk denormalisasi event_location dan default kolom lokasi.
func (r CreateEventRequest) ResolvedAddress() string {
	if r.LocationAddress != nil {
		return *r.LocationAddress
	}
	return r.EventLocation
}

func (r UpdateEventRequest) ResolvedAddress() string {
	if r.LocationAddress != nil {
		return *r.LocationAddress
	}
	return r.EventLocation
}

// ResolvedTitle: judul lokasi fallback ke judul event.
func (r CreateEventRequest) ResolvedTitle() string {
	if r.LocationTitle != nil {
		return *r.LocationTitle
	}
	return r.EventTitle
}

func (r UpdateEventRequest) ResolvedTitle() string {
	if r.LocationTitle != nil {
		return *r.LocationTitle
	}
	return r.EventTitle
}

func (r CreateEventRequest) ToModel(tripID int, duration isoduration.Duration) eventModel.EventModel {
	return eventModel.EventModel{
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription, // boleh kosong saat create
		EventLocation:    r.ResolvedAddress(),
		EventDuration:    duration,
		TripID:           tripID,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type LocationResponse struct {
	ID        int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
	Title     *string `json:"title,omitempty"`
	EventID   int     `json:"event_id"`
}

// EventResponse = event + lokasi (opsional) hasil join per event.
type EventResponse struct {
	ID               int                  `json:"id"`
	EventTitle       string               `json:"event_title"`
	EventDescription string               `json:"event_description"`
	EventLocation    string               `json:"event_location"`
	EventDuration    isoduration.Duration `json:"event_duration"`
	TripID           int                  `json:"trip_id"`

	LocationLatitude  *float64 `json:"location_latitude,omitempty"`
	LocationLongitude *float64 `json:"location_longitude,omitempty"`
	LocationAddress   *string  `json:"location_address,omitempty"`
	LocationTitle     *string  `json:"location_title,omitempty"`

	Location *LocationResponse `json:"location,omitempty"`
}

func NewLocationResponse(m locationModel.LocationModel) LocationResponse {
	return LocationResponse{
		ID:        m.LocationID,
		Latitude:  m.LocationLatitude,
		Longitude: m.LocationLongitude,
		Address:   m.LocationAddress,
		Title:     m.LocationTitle,
		EventID:   m.LocationEventID,
	}
}

// NewEventResponse merangkai view event; loc boleh nil.
func NewEventResponse(ev eventModel.EventModel, loc *locationModel.LocationModel) EventResponse {
	resp := EventResponse{
		ID:               ev.EventID,
		EventTitle:       ev.EventTitle,
		EventDescription: ev.EventDescription,
		EventLocation:    ev.EventLocation,
		EventDuration:    ev.EventDuration,
		TripID:           ev.TripID,
	}
	if loc != nil {
		lr := NewLocationResponse(*loc)
		resp.Location = &lr
		resp.LocationLatitude = &loc.LocationLatitude
		resp.LocationLongitude = &loc.LocationLongitude
		resp.LocationAddress = loc.LocationAddress
		resp.LocationTitle = loc.LocationTitle
	}
	return resp
}
