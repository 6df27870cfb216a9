package http

import (
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"nightlife-booking/booking"
	"nightlife-booking/model"
	"nightlife-booking/outbound/platform"
	platformMock "nightlife-booking/outbound/platform/mocks"
	"nightlife-booking/session"
	"strings"
	"testing"
	"time"
)

const testJwtSecret = "test-secret"

func signTestToken(t *testing.T, accountID string) string {
	t.Helper()

	claims := session.Claims{
		AccountID: accountID,
		Role:      "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJwtSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	return signed
}

type BookingHttpTestSuite struct {
	suite.Suite

	Platform *platformMock.MockClient

	token   string
	handler http.Handler
}

func (s *BookingHttpTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.Platform = platformMock.NewMockClient(ctrl)

	s.token = signTestToken(s.T(), "acc-1")

	mux := http.NewServeMux()
	RegisterBookingHttp(mux, s.Platform, booking.NewValidator(), message.NewPrinter(language.Vietnamese))

	s.handler = AuthMiddleware(testJwtSecret)(mux)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func TestBookingHttpTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHttpTestSuite))
}

func (s *BookingHttpTestSuite) do(path string, body string, withToken bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withToken {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)

	return w
}

func (s *BookingHttpTestSuite) TestCreateTable() {
	barTables := []model.Table{
		{ID: 3, Name: "VIP 3", Capacity: 8, TypeName: "VIP", DepositPrice: 500_000},
		{ID: 7, Name: "Booth 7", Capacity: 4, TypeName: "Booth", DepositPrice: 700_000},
	}

	validBody := `{"bar_id":"bar-1","date":"2026-09-12","table_ids":[3],"display_name":"Nguyen Van A","phone":"0912345678"}`

	tests := []struct {
		name           string
		reqBody        string
		withToken      bool
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "invalid json",
			reqBody:        `{invalid json`,
			withToken:      true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request"}`,
		},
		{
			name:           "validation error - missing phone",
			reqBody:        `{"bar_id":"bar-1","date":"2026-09-12","table_ids":[3],"display_name":"Nguyen Van A"}`,
			withToken:      true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Phone":"required"}}`,
		},
		{
			name:           "validation error - bad date",
			reqBody:        `{"bar_id":"bar-1","date":"12/09/2026","table_ids":[3],"display_name":"Nguyen Van A","phone":"0912345678"}`,
			withToken:      true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Date":"datetime"}}`,
		},
		{
			name:           "no token",
			reqBody:        validBody,
			withToken:      false,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:      "unknown table id",
			reqBody:   `{"bar_id":"bar-1","date":"2026-09-12","table_ids":[99],"display_name":"Nguyen Van A","phone":"0912345678"}`,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListBarTables(gomock.Any(), s.token, "bar-1").Return(barTables, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"TableIds":"not found"}}`,
		},
		{
			name:      "table already booked",
			reqBody:   validBody,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListBarTables(gomock.Any(), s.token, "bar-1").Return(barTables, nil)
				s.Platform.EXPECT().ListReceiverBookings(gomock.Any(), s.token, "bar-1", "2026-09-12").
					Return([]model.Booking{
						{ID: "bk-0", Date: "2026-09-12", Status: model.ScheduleStatusConfirmed, TableIDs: []int64{3}},
					}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Table already booked"}`,
		},
		{
			name:      "canceled booking does not block the table",
			reqBody:   validBody,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListBarTables(gomock.Any(), s.token, "bar-1").Return(barTables, nil)
				s.Platform.EXPECT().ListReceiverBookings(gomock.Any(), s.token, "bar-1", "2026-09-12").
					Return([]model.Booking{
						{ID: "bk-0", Date: "2026-09-12", Status: model.ScheduleStatusCanceled, TableIDs: []int64{3}},
					}, nil)
				s.Platform.EXPECT().CreateTableBooking(gomock.Any(), s.token, gomock.Any()).
					Return(&platform.BookingCreated{ID: "bk-1"}, nil)
				s.Platform.EXPECT().CreatePaymentLink(gomock.Any(), s.token, "bk-1", int64(500_000)).
					Return(&platform.PaymentLink{Url: "https://pay.example/qr/bk-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"booking_id":"bk-1","total_price":500000,"deposit":500000,"payment_url":"https://pay.example/qr/bk-1"}`,
		},
		{
			name:      "booking creation fails",
			reqBody:   validBody,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListBarTables(gomock.Any(), s.token, "bar-1").Return(barTables, nil)
				s.Platform.EXPECT().ListReceiverBookings(gomock.Any(), s.token, "bar-1", "2026-09-12").
					Return(nil, nil)
				s.Platform.EXPECT().CreateTableBooking(gomock.Any(), s.token, gomock.Any()).
					Return(nil, fmt.Errorf("backend down"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Không thể tạo booking","data":{"step":"create_booking"}}`,
		},
		{
			name:      "payment link fails and booking is canceled",
			reqBody:   validBody,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListBarTables(gomock.Any(), s.token, "bar-1").Return(barTables, nil)
				s.Platform.EXPECT().ListReceiverBookings(gomock.Any(), s.token, "bar-1", "2026-09-12").
					Return(nil, nil)
				s.Platform.EXPECT().CreateTableBooking(gomock.Any(), s.token, gomock.Any()).
					Return(&platform.BookingCreated{ID: "bk-1"}, nil)
				s.Platform.EXPECT().CreatePaymentLink(gomock.Any(), s.token, "bk-1", int64(500_000)).
					Return(nil, fmt.Errorf("gateway down"))
				s.Platform.EXPECT().CancelBooking(gomock.Any(), s.token, "bk-1").Return(nil)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"Không thể tạo QR thanh toán","data":{"step":"create_payment"}}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			w := s.do("/api/bookings/tables", tc.reqBody, tc.withToken)

			s.Equal(tc.expectedStatus, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func (s *BookingHttpTestSuite) TestCreatePerformer() {
	validBody := `{"performer_id":"performer-1","date":"2026-09-12","slot_ids":[10,11,12],"phone":"0912345678",` +
		`"address_detail":"12 Phan Đình Phùng","province_id":"01","province_name":"Hà Nội",` +
		`"district_id":"001","district_name":"Ba Đình","ward_id":"00001","ward_name":"Phúc Xá"}`

	tests := []struct {
		name           string
		reqBody        string
		withToken      bool
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "validation error - missing address",
			reqBody:        `{"performer_id":"performer-1","date":"2026-09-12","slot_ids":[10],"phone":"0912345678"}`,
			withToken:      true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"error":"Validation failed","data":{"AddressDetail":"required","DistrictID":"required",` +
				`"DistrictName":"required","ProvinceID":"required","ProvinceName":"required","WardID":"required","WardName":"required"}}`,
		},
		{
			name:           "validation error - slot id out of range",
			reqBody:        `{"performer_id":"performer-1","date":"2026-09-12","slot_ids":[13],"phone":"0912345678","address_detail":"x","province_id":"01","province_name":"Hà Nội","district_id":"001","district_name":"Ba Đình","ward_id":"00001","ward_name":"Phúc Xá"}`,
			withToken:      true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"SlotIds[0]":"max"}}`,
		},
		{
			name:      "slot already booked",
			reqBody:   validBody,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListReceiverBookings(gomock.Any(), s.token, "performer-1", "2026-09-12").
					Return([]model.Booking{
						{ID: "bk-0", Date: "2026-09-12", Status: model.ScheduleStatusPending, SlotIDs: []int{11}},
					}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Slot already booked"}`,
		},
		{
			name:      "success",
			reqBody:   validBody,
			withToken: true,
			setupMock: func() {
				s.Platform.EXPECT().ListReceiverBookings(gomock.Any(), s.token, "performer-1", "2026-09-12").
					Return(nil, nil)
				s.Platform.EXPECT().CreatePerformerBooking(gomock.Any(), s.token, gomock.Any()).
					Return(&platform.BookingCreated{ID: "bk-5"}, nil)
				s.Platform.EXPECT().CreatePaymentLink(gomock.Any(), s.token, "bk-5", int64(150_000)).
					Return(&platform.PaymentLink{Url: "https://pay.example/qr/bk-5"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"booking_id":"bk-5","total_price":1500000,"deposit":150000,"payment_url":"https://pay.example/qr/bk-5"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			w := s.do("/api/bookings/performers", tc.reqBody, tc.withToken)

			s.Equal(tc.expectedStatus, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}
