package http

import (
	"log/slog"
	"net/http"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/model"
	"nightlife-booking/outbound/platform"
)

type CatalogHttp struct {
	Platform platform.Client
}

func RegisterCatalogHttp(mux *http.ServeMux, client platform.Client) *CatalogHttp {
	in := &CatalogHttp{Platform: client}

	mux.HandleFunc("GET /api/slots", in.slots)
	mux.HandleFunc("GET /api/bars/{barId}/tables", in.barTables)

	return in
}

func (in *CatalogHttp) slots(w http.ResponseWriter, r *http.Request) {
	slots := make([]model.SlotResponse, 0, len(constant.SlotsData))
	for _, slot := range constant.SlotsData {
		slots = append(slots, model.SlotResponse{
			Id:      slot.ID,
			Label:   slot.Label,
			Price:   constant.SlotPrice,
			Deposit: constant.SlotDeposit,
		})
	}

	writeJSONResponse(w, http.StatusOK, slots)
}

func (in *CatalogHttp) barTables(w http.ResponseWriter, r *http.Request) {
	auth, ok := requireAuth(w, r)
	if !ok {
		return
	}

	ctx := r.Context()

	tables, err := in.Platform.ListBarTables(ctx, auth.Token, r.PathValue("barId"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list bar tables", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, tables)
}
