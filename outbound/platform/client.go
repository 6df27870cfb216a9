package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/spf13/viper"
	"net/http"
	"nightlife-booking/common/errs"
	"nightlife-booking/common/otel"
	"nightlife-booking/model"
)

// Client talks to the platform backend. Every call carries the caller's
// bearer token; the backend stays the authority on conflicts and payments.
type Client interface {
	CreateTableBooking(ctx context.Context, token string, req CreateTableBookingRequest) (*BookingCreated, error)
	CreatePerformerBooking(ctx context.Context, token string, req CreatePerformerBookingRequest) (*BookingCreated, error)
	CreatePaymentLink(ctx context.Context, token string, bookingID string, amount int64) (*PaymentLink, error)
	CancelBooking(ctx context.Context, token string, bookingID string) error
	ListReceiverBookings(ctx context.Context, token string, receiverID string, date string) ([]model.Booking, error)
	ListBarTables(ctx context.Context, token string, barID string) ([]model.Table, error)
}

type BookedTable struct {
	TableID      int64 `json:"tableId"`
	DepositPrice int64 `json:"depositPrice"`
}

type CreateTableBookingRequest struct {
	ReceiverID     string        `json:"receiverId"`
	Tables         []BookedTable `json:"tables"`
	Date           string        `json:"date"`
	DisplayName    string        `json:"displayName"`
	Phone          string        `json:"phone"`
	Note           string        `json:"note"`
	PaymentStatus  string        `json:"paymentStatus"`
	ScheduleStatus string        `json:"scheduleStatus"`
}

type CreatePerformerBookingRequest struct {
	ReceiverID   string `json:"receiverId"`
	Date         string `json:"date"`
	SlotIds      []int  `json:"slotIds"`
	OfferedPrice int64  `json:"offeredPrice"`
	Location     string `json:"location"`
	Phone        string `json:"phone"`
	Note         string `json:"note"`
}

type BookingCreated struct {
	ID         string `json:"id"`
	TotalPrice int64  `json:"totalPrice"`
	Deposit    int64  `json:"deposit"`
}

type PaymentLink struct {
	Url    string `json:"paymentUrl"`
	QrCode string `json:"qrCode"`
}

type HttpClient struct {
	baseUrl string
	http    *http.Client
}

func NewHttpClient(cfg *viper.Viper) *HttpClient {
	return &HttpClient{
		baseUrl: cfg.GetString("platform.base_url"),
		http: &http.Client{
			Timeout:   cfg.GetDuration("platform.timeout"),
			Transport: otel.TracingTransport{},
		},
	}
}

func (c *HttpClient) CreateTableBooking(ctx context.Context, token string, req CreateTableBookingRequest) (*BookingCreated, error) {
	var out BookingCreated
	err := c.call(ctx, http.MethodPost, "/bookingtable", token, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HttpClient) CreatePerformerBooking(ctx context.Context, token string, req CreatePerformerBookingRequest) (*BookingCreated, error) {
	var out BookingCreated
	err := c.call(ctx, http.MethodPost, "/booking/request", token, req, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HttpClient) CreatePaymentLink(ctx context.Context, token string, bookingID string, amount int64) (*PaymentLink, error) {
	body := map[string]int64{"amount": amount}

	var out PaymentLink
	err := c.call(ctx, http.MethodPost, fmt.Sprintf("/bookingtable/%s/create-payment", bookingID), token, body, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *HttpClient) CancelBooking(ctx context.Context, token string, bookingID string) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/bookingtable/%s/cancel", bookingID), token, nil, nil)
}

func (c *HttpClient) ListReceiverBookings(ctx context.Context, token string, receiverID string, date string) ([]model.Booking, error) {
	var out []model.Booking
	err := c.call(ctx, http.MethodGet, fmt.Sprintf("/bookingtable/receiver/%s?date=%s", receiverID, date), token, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *HttpClient) ListBarTables(ctx context.Context, token string, barID string) ([]model.Table, error) {
	var out []model.Table
	err := c.call(ctx, http.MethodGet, "/bartable/bar/"+barID, token, nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *HttpClient) call(ctx context.Context, method string, path string, token string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr model.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		message := apiErr.Error
		if message == "" {
			message = resp.Status
		}

		return &errs.HttpError{Code: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
