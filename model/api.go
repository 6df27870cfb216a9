package model

type ErrorResponse struct {
	Error string `json:"error"`
	Data  any    `json:"data,omitempty"`
}

type CreateTableBookingRequest struct {
	BarID       string  `json:"bar_id" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	TableIds    []int64 `json:"table_ids" validate:"required,min=1"`
	DisplayName string  `json:"display_name" validate:"required,min=4,max=100"`
	Phone       string  `json:"phone" validate:"required,vnphone"`
	Note        string  `json:"note" validate:"max=500"`
}

type CreatePerformerBookingRequest struct {
	PerformerID  string `json:"performer_id" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	SlotIds      []int  `json:"slot_ids" validate:"required,min=1,dive,min=1,max=12"`
	OfferedPrice int64  `json:"offered_price" validate:"min=0"`
	Phone        string `json:"phone" validate:"required,vnphone"`
	Note         string `json:"note" validate:"max=500"`

	AddressDetail string `json:"address_detail" validate:"required"`
	ProvinceID    string `json:"province_id" validate:"required"`
	ProvinceName  string `json:"province_name" validate:"required"`
	DistrictID    string `json:"district_id" validate:"required"`
	DistrictName  string `json:"district_name" validate:"required"`
	WardID        string `json:"ward_id" validate:"required"`
	WardName      string `json:"ward_name" validate:"required"`
}

type CreateBookingResponse struct {
	BookingId  string `json:"booking_id"`
	TotalPrice int64  `json:"total_price"`
	Deposit    int64  `json:"deposit"`
	PaymentUrl string `json:"payment_url"`
}

type AvailabilityResponse struct {
	ReceiverId     string  `json:"receiver_id"`
	Date           string  `json:"date"`
	BookedTableIds []int64 `json:"booked_table_ids"`
	BookedSlotIds  []int   `json:"booked_slot_ids"`
}

type SlotResponse struct {
	Id      int    `json:"id"`
	Label   string `json:"label"`
	Price   int64  `json:"price"`
	Deposit int64  `json:"deposit"`
}

type SaveSessionRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Token  string `json:"token" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Avatar string `json:"avatar"`
}
