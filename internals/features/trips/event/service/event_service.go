package service

import (
	"strings"

	eventDTO "naviplan_backend/internals/features/trips/event/dto"
)

// Validasi murni sebelum write — tanpa akses DB, tanpa side effect.
// Caller branch lewat *ValidationError, bukan panic.

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalid(reason string) *ValidationError { return &ValidationError{Reason: reason} }

// ValidateEventForCreate: judul wajib, lokasi (teks bebas atau alamat
// terstruktur) wajib salah satu, koordinat harus berpasangan.
// Deskripsi boleh kosong saat create.
func ValidateEventForCreate(req eventDTO.CreateEventRequest) *ValidationError {
	if isBlank(req.EventTitle) {
		return invalid("Event title cannot be empty")
	}
	if isBlank(req.EventLocation) && isBlankPtr(req.LocationAddress) {
		return invalid("Event location cannot be empty")
	}
	return validateCoordinatePair(req.LocationLatitude, req.LocationLongitude)
}

// ValidateEventForUpdate: aturan create + deskripsi wajib terisi.
// Asimetri ini disengaja — full replace memvalidasi seluruh entity.
func ValidateEventForUpdate(req eventDTO.UpdateEventRequest) *ValidationError {
	if isBlank(req.EventTitle) {
		return invalid("Event title cannot be empty")
	}
	if isBlank(req.EventDescription) {
		return invalid("Event description cannot be empty")
	}
	if isBlank(req.EventLocation) && isBlankPtr(req.LocationAddress) {
		return invalid("Event location cannot be empty")
	}
	return validateCoordinatePair(req.LocationLatitude, req.LocationLongitude)
}

func validateCoordinatePair(lat, lon *float64) *ValidationError {
	if (lat != nil) != (lon != nil) {
		return invalid("Both latitude and longitude are required when providing coordinates")
	}
	return nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func isBlankPtr(s *string) bool { return s == nil || strings.TrimSpace(*s) == "" }
