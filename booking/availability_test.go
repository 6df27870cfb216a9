package booking

import (
	"github.com/stretchr/testify/assert"
	"nightlife-booking/model"
	"testing"
)

func TestIsTableBooked(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		date     string
		bookings []model.Booking
		expected bool
	}{
		{
			name: "pending booking holds the table",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusPending, TableIDs: []int64{3, 4}},
			},
			expected: true,
		},
		{
			name: "confirmed booking holds the table",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusConfirmed, TableIDs: []int64{3}},
			},
			expected: true,
		},
		{
			name: "canceled booking frees the table",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusCanceled, TableIDs: []int64{3}},
			},
			expected: false,
		},
		{
			name: "rejected booking frees the table",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusRejected, TableIDs: []int64{3}},
			},
			expected: false,
		},
		{
			name: "booking on another day does not count",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-13", Status: model.ScheduleStatusPending, TableIDs: []int64{3}},
			},
			expected: false,
		},
		{
			name: "timestamp date compares by calendar day",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12T21:30:00", Status: model.ScheduleStatusPending, TableIDs: []int64{3}},
			},
			expected: true,
		},
		{
			name: "other table ids do not count",
			id:   3,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusPending, TableIDs: []int64{1, 2}},
			},
			expected: false,
		},
		{
			name:     "no bookings",
			id:       3,
			date:     "2026-09-12",
			bookings: nil,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsTableBooked(tc.id, tc.date, tc.bookings))
		})
	}
}

func TestIsSlotBooked(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		date     string
		bookings []model.Booking
		expected bool
	}{
		{
			name: "pending booking holds the slot",
			id:   10,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusPending, SlotIDs: []int{10, 11}},
			},
			expected: true,
		},
		{
			name: "canceled booking frees the slot",
			id:   10,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusCanceled, SlotIDs: []int{10}},
			},
			expected: false,
		},
		{
			name: "same slot on another day is free",
			id:   10,
			date: "2026-09-12",
			bookings: []model.Booking{
				{ID: "bk-1", Date: "2026-09-11", Status: model.ScheduleStatusConfirmed, SlotIDs: []int{10}},
			},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSlotBooked(tc.id, tc.date, tc.bookings))
		})
	}
}

func TestOccupiedTables(t *testing.T) {
	bookings := []model.Booking{
		{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusPending, TableIDs: []int64{5, 2}},
		{ID: "bk-2", Date: "2026-09-12", Status: model.ScheduleStatusConfirmed, TableIDs: []int64{2, 7}},
		{ID: "bk-3", Date: "2026-09-12", Status: model.ScheduleStatusCanceled, TableIDs: []int64{9}},
		{ID: "bk-4", Date: "2026-09-13", Status: model.ScheduleStatusPending, TableIDs: []int64{1}},
	}

	// Duplicates collapse, first-seen order is preserved, canceled and
	// other-day bookings are skipped.
	assert.Equal(t, []int64{5, 2, 7}, OccupiedTables("2026-09-12", bookings))
	assert.Empty(t, OccupiedTables("2026-09-14", bookings))
}

func TestOccupiedSlots(t *testing.T) {
	bookings := []model.Booking{
		{ID: "bk-1", Date: "2026-09-12", Status: model.ScheduleStatusPending, SlotIDs: []int{11, 12}},
		{ID: "bk-2", Date: "2026-09-12", Status: model.ScheduleStatusConfirmed, SlotIDs: []int{12, 1}},
		{ID: "bk-3", Date: "2026-09-12", Status: model.ScheduleStatusRejected, SlotIDs: []int{2}},
	}

	assert.Equal(t, []int{11, 12, 1}, OccupiedSlots("2026-09-12", bookings))
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{name: "bare day", date: "2026-09-12", expected: "2026-09-12"},
		{name: "timestamp without zone", date: "2026-09-12T21:30:00", expected: "2026-09-12"},
		{name: "rfc3339", date: "2026-09-12T21:30:00Z", expected: "2026-09-12"},
		{name: "unparseable passes through", date: "next friday", expected: "next friday"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dayOf(tc.date))
		})
	}
}
