package http

import (
	"context"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/message"
	"log/slog"
	"net/http"
	"nightlife-booking/booking"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/errs"
	"nightlife-booking/common/otel"
	"nightlife-booking/model"
	"nightlife-booking/outbound/platform"
)

type BookingHttp struct {
	Platform     platform.Client
	Validate     *validator.Validate
	VndFormatter *message.Printer
}

func RegisterBookingHttp(
	mux *http.ServeMux,
	client platform.Client,
	validate *validator.Validate,
	vndFormatter *message.Printer,
) *BookingHttp {
	in := &BookingHttp{
		Platform:     client,
		Validate:     validate,
		VndFormatter: vndFormatter,
	}

	mux.HandleFunc("POST /api/bookings/tables", in.createTable)
	mux.HandleFunc("POST /api/bookings/performers", in.createPerformer)

	return in
}

func (in BookingHttp) createTable(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTableBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	auth, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.createTable")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create table booking receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	catalog, err := in.Platform.ListBarTables(ctx, auth.Token, req.BarID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list bar tables", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	depositByTable := make(map[int64]int64, len(catalog))
	for _, table := range catalog {
		depositByTable[table.ID] = table.DepositPrice
	}

	for _, id := range req.TableIds {
		if _, exists := depositByTable[id]; !exists {
			writeErrorResponse(w, &errs.HttpError{
				Code:    http.StatusBadRequest,
				Message: "Validation failed",
				Data:    map[string]any{"TableIds": "not found"},
			})
			return
		}
	}

	bookings, err := in.Platform.ListReceiverBookings(ctx, auth.Token, req.BarID, req.Date)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list receiver bookings", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	for _, id := range req.TableIds {
		if booking.IsTableBooked(id, req.Date, bookings) {
			slog.DebugContext(ctx, "table already booked", slog.Int64("table_id", id), traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Table already booked"})
			return
		}
	}

	draft := model.BookingDraft{
		DraftID:       ulid.Make().String(),
		RequesterID:   auth.Claims.AccountID,
		ReceiverID:    req.BarID,
		Date:          req.Date,
		TableIDs:      req.TableIds,
		TableDeposits: depositByTable,
		DisplayName:   req.DisplayName,
		Phone:         req.Phone,
		Note:          req.Note,
	}

	in.submit(ctx, w, auth.Token, booking.KindTable, draft, traceIdAttr)
}

func (in BookingHttp) createPerformer(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePerformerBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	auth, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.createPerformer")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create performer booking receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	bookings, err := in.Platform.ListReceiverBookings(ctx, auth.Token, req.PerformerID, req.Date)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list receiver bookings", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	for _, id := range req.SlotIds {
		if booking.IsSlotBooked(id, req.Date, bookings) {
			slog.DebugContext(ctx, "slot already booked", slog.Int("slot_id", id), traceIdAttr)
			writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Slot already booked"})
			return
		}
	}

	draft := model.BookingDraft{
		DraftID:     ulid.Make().String(),
		RequesterID: auth.Claims.AccountID,
		ReceiverID:  req.PerformerID,
		Date:        req.Date,
		SlotIDs:     req.SlotIds,
		Phone:       req.Phone,
		Note:        req.Note,
		Address: model.Address{
			Detail:       req.AddressDetail,
			ProvinceID:   req.ProvinceID,
			ProvinceName: req.ProvinceName,
			DistrictID:   req.DistrictID,
			DistrictName: req.DistrictName,
			WardID:       req.WardID,
			WardName:     req.WardName,
		},
	}

	in.submit(ctx, w, auth.Token, booking.KindPerformer, draft, traceIdAttr)
}

// submit runs the two-step flow on behalf of a caller that already confirmed
// in their own UI: validate and hold, then create booking and payment link.
func (in BookingHttp) submit(ctx context.Context, w http.ResponseWriter, token string, kind booking.Kind, draft model.BookingDraft, traceIdAttr slog.Attr) {
	orchestrator := booking.NewOrchestrator(in.Platform, in.Validate, in.VndFormatter)

	if _, err := orchestrator.Begin(token, kind, draft); err != nil {
		writeErrorResponse(w, err)
		return
	}

	resp, err := orchestrator.Confirm(ctx)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "booking flow finished", traceIdAttr, slog.Any(constant.LogFieldResponse, resp.BookingId))

	writeJSONResponse(w, http.StatusOK, resp)
}
