package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventDTO "naviplan_backend/internals/features/trips/event/dto"
	eventModel "naviplan_backend/internals/features/trips/event/model"
	"naviplan_backend/internals/features/trips/event/service"
	locationModel "naviplan_backend/internals/features/trips/location/model"
	tripModel "naviplan_backend/internals/features/trips/trip/model"
	"naviplan_backend/internals/helpers/isoduration"
)

var (
	// ErrEventNotFound: id tidak ada — "nothing to do", bukan kegagalan validasi.
	ErrEventNotFound = errors.New("event not found")
	// ErrTripNotFound: FK trip_id tidak resolve — referential failure, caller
	// memetakan ke status berbeda dari validasi.
	ErrTripNotFound = errors.New("trip not found")
)

// EventRepository adalah façade persistence untuk event + lokasinya.
// Setiap method membuka satu transaksi sendiri; commit/rollback selesai
// bersama return — tidak ada transaksi nyebrang antar request.
type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// ListByTrip mengembalikan semua event milik trip beserta lokasinya
// (bila ada). Urutan mengikuti primary key, tanpa kontrak ordering.
func (r *EventRepository) ListByTrip(ctx context.Context, tripID int) ([]eventDTO.EventResponse, error) {
	var out []eventDTO.EventResponse
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var events []eventModel.EventModel
		if err := tx.Where("trip_id = ?", tripID).Find(&events).Error; err != nil {
			return fmt.Errorf("list events: %w", err)
		}

		locByEvent, err := locationsForEvents(tx, events)
		if err != nil {
			return err
		}

		out = make([]eventDTO.EventResponse, 0, len(events))
		for _, ev := range events {
			loc := locByEvent[ev.EventID]
			out = append(out, eventDTO.NewEventResponse(ev, loc))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID mengembalikan satu event; id yang tidak ada → ErrEventNotFound.
func (r *EventRepository) GetByID(ctx context.Context, eventID int) (*eventDTO.EventResponse, error) {
	var out *eventDTO.EventResponse
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ev eventModel.EventModel
		if err := tx.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("get event: %w", err)
		}
		loc, err := locationForEvent(tx, ev.EventID)
		if err != nil {
			return err
		}
		resp := eventDTO.NewEventResponse(ev, loc)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create memvalidasi payload, menyisipkan event ber-trip_id, lalu
// meng-upsert lokasinya dari koordinat payload — semua dalam satu transaksi.
func (r *EventRepository) Create(ctx context.Context, tripID int, req eventDTO.CreateEventRequest) (*eventDTO.EventResponse, error) {
	req.Normalize()
	if verr := service.ValidateEventForCreate(req); verr != nil {
		return nil, verr
	}
	duration, err := isoduration.Parse(req.EventDuration)
	if err != nil {
		return nil, &service.ValidationError{Reason: "Invalid event duration format"}
	}

	var out *eventDTO.EventResponse
	txErr := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// cek FK dulu supaya referential failure terlapor jelas
		var cnt int64
		if err := tx.Model(&tripModel.TripModel{}).Where("trip_id = ?", tripID).Count(&cnt).Error; err != nil {
			return fmt.Errorf("check trip: %w", err)
		}
		if cnt == 0 {
			return ErrTripNotFound
		}

		ev := req.ToModel(tripID, duration)
		if err := tx.Create(&ev).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrTripNotFound
			}
			return fmt.Errorf("insert event: %w", err)
		}

		if err := upsertLocation(tx, ev.EventID, req.LocationLatitude, req.LocationLongitude, req.ResolvedAddress(), req.ResolvedTitle()); err != nil {
			return err
		}

		loc, err := locationForEvent(tx, ev.EventID)
		if err != nil {
			return err
		}
		resp := eventDTO.NewEventResponse(ev, loc)
		out = &resp
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return out, nil
}

// Update adalah full-field overwrite (bukan patch). Nol baris ter-match →
// ErrEventNotFound. Lokasi di-upsert dari koordinat entity pengganti.
func (r *EventRepository) Update(ctx context.Context, eventID int, req eventDTO.UpdateEventRequest) (*eventDTO.EventResponse, error) {
	req.Normalize()
	if verr := service.ValidateEventForUpdate(req); verr != nil {
		return nil, verr
	}
	duration, err := isoduration.Parse(req.EventDuration)
	if err != nil {
		return nil, &service.ValidationError{Reason: "Invalid event duration format"}
	}

	var out *eventDTO.EventResponse
	txErr := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&eventModel.EventModel{}).
			Where("event_id = ?", eventID).
			Updates(map[string]any{
				"event_title":       req.EventTitle,
				"event_description": req.EventDescription,
				"event_location":    req.ResolvedAddress(),
				"event_duration":    duration.String(),
			})
		if res.Error != nil {
			return fmt.Errorf("update event: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}

		if err := upsertLocation(tx, eventID, req.LocationLatitude, req.LocationLongitude, req.ResolvedAddress(), req.ResolvedTitle()); err != nil {
			return err
		}

		var ev eventModel.EventModel
		if err := tx.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
			return fmt.Errorf("reload event: %w", err)
		}
		loc, err := locationForEvent(tx, eventID)
		if err != nil {
			return err
		}
		resp := eventDTO.NewEventResponse(ev, loc)
		out = &resp
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return out, nil
}

// Delete menghapus tepat satu event by id; nol baris → ErrEventNotFound.
// Lokasinya ikut dihapus dalam transaksi yang sama (FK CASCADE jadi backstop)
// supaya tidak ada baris lokasi yatim.
func (r *EventRepository) Delete(ctx context.Context, eventID int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location_event_id = ?", eventID).Delete(&locationModel.LocationModel{}).Error; err != nil {
			return fmt.Errorf("delete location: %w", err)
		}
		res := tx.Where("event_id = ?", eventID).Delete(&eventModel.EventModel{})
		if res.Error != nil {
			return fmt.Errorf("delete event: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}

// upsertLocation: tanpa koordinat tidak ada baris lokasi sama sekali —
// alamat teks saja tidak pernah menghasilkan row. Dengan koordinat, satu
// INSERT … ON CONFLICT (location_event_id) DO UPDATE menimpa keempat field,
// jadi maksimal satu lokasi per event walau ada penulis konkuren.
func upsertLocation(tx *gorm.DB, eventID int, lat, lon *float64, address, title string) error {
	if lat == nil || lon == nil {
		return nil
	}

	loc := locationModel.LocationModel{
		LocationLatitude:  *lat,
		LocationLongitude: *lon,
		LocationAddress:   &address,
		LocationTitle:     &title,
		LocationEventID:   eventID,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "location_event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"location_latitude",
			"location_longitude",
			"location_address",
			"location_title",
		}),
	}).Create(&loc).Error
	if err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

func locationForEvent(tx *gorm.DB, eventID int) (*locationModel.LocationModel, error) {
	var loc locationModel.LocationModel
	err := tx.Where("location_event_id = ?", eventID).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load location: %w", err)
	}
	return &loc, nil
}

func locationsForEvents(tx *gorm.DB, events []eventModel.EventModel) (map[int]*locationModel.LocationModel, error) {
	byEvent := make(map[int]*locationModel.LocationModel, len(events))
	if len(events) == 0 {
		return byEvent, nil
	}
	ids := make([]int, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.EventID)
	}
	var locs []locationModel.LocationModel
	if err := tx.Where("location_event_id IN ?", ids).Find(&locs).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	for i := range locs {
		byEvent[locs[i].LocationEventID] = &locs[i]
	}
	return byEvent, nil
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "violates foreign key") || strings.Contains(msg, "sqlstate 23503")
}
