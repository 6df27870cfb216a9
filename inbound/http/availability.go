package http

import (
	"log/slog"
	"net/http"
	"nightlife-booking/booking"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/errs"
	"nightlife-booking/model"
	"nightlife-booking/outbound/platform"
)

type AvailabilityHttp struct {
	Platform platform.Client
}

func RegisterAvailabilityHttp(mux *http.ServeMux, client platform.Client) *AvailabilityHttp {
	in := &AvailabilityHttp{Platform: client}

	mux.HandleFunc("GET /api/availability", in.get)

	return in
}

// get returns the table and slot ids already taken for a receiver on a date.
// The backend remains the authority; this only drives the selection UI.
func (in *AvailabilityHttp) get(w http.ResponseWriter, r *http.Request) {
	receiverId := r.URL.Query().Get("receiver_id")
	date := r.URL.Query().Get("date")

	if receiverId == "" || date == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "receiver_id and date are required"})
		return
	}

	auth, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	bookings, err := in.Platform.ListReceiverBookings(ctx, auth.Token, receiverId, date)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list receiver bookings", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.AvailabilityResponse{
		ReceiverId:     receiverId,
		Date:           date,
		BookedTableIds: booking.OccupiedTables(date, bookings),
		BookedSlotIds:  booking.OccupiedSlots(date, bookings),
	})
}
