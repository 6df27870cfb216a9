package model

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "Pending"
	ScheduleStatusConfirmed ScheduleStatus = "Confirmed"
	ScheduleStatusCompleted ScheduleStatus = "Completed"
	ScheduleStatusCanceled  ScheduleStatus = "Canceled"
	ScheduleStatusRejected  ScheduleStatus = "Rejected"
)

// Occupies reports whether a booking in this status still holds its
// tables/slots. Canceled and rejected bookings free them up.
func (s ScheduleStatus) Occupies() bool {
	return s != ScheduleStatusCanceled && s != ScheduleStatusRejected
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// Booking is a booking record as returned by the platform backend for a
// receiver (bar account or performer account) on a given date.
type Booking struct {
	ID            string         `json:"id"`
	ReceiverID    string         `json:"receiverId"`
	Date          string         `json:"date"`
	Status        ScheduleStatus `json:"scheduleStatus"`
	PaymentStatus PaymentStatus  `json:"paymentStatus"`
	TableIDs      []int64        `json:"tableIds,omitempty"`
	SlotIDs       []int          `json:"slotIds,omitempty"`
	TotalPrice    int64          `json:"totalPrice"`
	Deposit       int64          `json:"deposit"`
}

// BookingDraft accumulates everything the flow collects before submission.
// It lives in memory for one wizard/request and is discarded afterwards.
type BookingDraft struct {
	DraftID     string
	RequesterID string
	ReceiverID  string
	Date        string
	TableIDs    []int64
	// TableDeposits carries the deposit price of each selected table, keyed
	// by table id, as shown in the catalog at selection time.
	TableDeposits map[int64]int64
	SlotIDs       []int
	TotalPrice    int64
	Deposit       int64
	DisplayName   string
	Phone         string
	Note          string
	Address       Address
}
