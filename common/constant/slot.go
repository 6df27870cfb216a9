package constant

import "nightlife-booking/model"

// Performer bookings are sold per 2-hour slot at a flat price; the deposit is
// collected up front, the rest is settled at the venue.
const (
	SlotPrice   int64 = 500_000
	SlotDeposit int64 = 50_000
)

// SlotsData is the fixed performer booking day: twelve 2-hour slots, ids 1-12.
var SlotsData = []model.Slot{
	{ID: 1, Label: "00:00 - 02:00"},
	{ID: 2, Label: "02:00 - 04:00"},
	{ID: 3, Label: "04:00 - 06:00"},
	{ID: 4, Label: "06:00 - 08:00"},
	{ID: 5, Label: "08:00 - 10:00"},
	{ID: 6, Label: "10:00 - 12:00"},
	{ID: 7, Label: "12:00 - 14:00"},
	{ID: 8, Label: "14:00 - 16:00"},
	{ID: 9, Label: "16:00 - 18:00"},
	{ID: 10, Label: "18:00 - 20:00"},
	{ID: 11, Label: "20:00 - 22:00"},
	{ID: 12, Label: "22:00 - 24:00"},
}

func SlotLabelById(id int) string {
	for _, s := range SlotsData {
		if s.ID == id {
			return s.Label
		}
	}
	return ""
}
