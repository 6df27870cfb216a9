package constant

// User-facing alert messages, kept in Vietnamese to match the product.
const (
	MsgCreateBookingFailed = "Không thể tạo booking"
	MsgCreatePaymentFailed = "Không thể tạo QR thanh toán"
)

const (
	StepCreateBooking = "create_booking"
	StepCreatePayment = "create_payment"
)
