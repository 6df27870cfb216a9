package booking

import (
	"nightlife-booking/model"
	"time"
)

// Occupancy is compared per calendar day. Backends have returned both bare
// days and full timestamps here, so both shapes are accepted.
var dayLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func dayOf(date string) string {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return date
}

func sameDay(a, b string) bool {
	return dayOf(a) == dayOf(b)
}

func occupies(b model.Booking, date string) bool {
	return b.Status.Occupies() && sameDay(b.Date, date)
}

// IsTableBooked reports whether a table is already taken on the given date by
// any booking that still occupies its tables.
func IsTableBooked(id int64, date string, bookings []model.Booking) bool {
	for _, b := range bookings {
		if !occupies(b, date) {
			continue
		}
		for _, tableId := range b.TableIDs {
			if tableId == id {
				return true
			}
		}
	}
	return false
}

// IsSlotBooked is the slot counterpart of IsTableBooked.
func IsSlotBooked(id int, date string, bookings []model.Booking) bool {
	for _, b := range bookings {
		if !occupies(b, date) {
			continue
		}
		for _, slotId := range b.SlotIDs {
			if slotId == id {
				return true
			}
		}
	}
	return false
}

// OccupiedTables collects the distinct table ids taken on the given date,
// preserving first-seen order.
func OccupiedTables(date string, bookings []model.Booking) []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0)

	for _, b := range bookings {
		if !occupies(b, date) {
			continue
		}
		for _, tableId := range b.TableIDs {
			if !seen[tableId] {
				seen[tableId] = true
				ids = append(ids, tableId)
			}
		}
	}

	return ids
}

// OccupiedSlots collects the distinct slot ids taken on the given date,
// preserving first-seen order.
func OccupiedSlots(date string, bookings []model.Booking) []int {
	seen := make(map[int]bool)
	ids := make([]int, 0)

	for _, b := range bookings {
		if !occupies(b, date) {
			continue
		}
		for _, slotId := range b.SlotIDs {
			if !seen[slotId] {
				seen[slotId] = true
				ids = append(ids, slotId)
			}
		}
	}

	return ids
}
