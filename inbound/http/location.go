package http

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net/http"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/vars"
	"nightlife-booking/model"
	"nightlife-booking/outbound/location"
)

type LocationHttp struct {
	Cache    *redis.Client
	Location location.Client
}

func RegisterLocationHttp(mux *http.ServeMux, cache *redis.Client, client location.Client) *LocationHttp {
	in := &LocationHttp{Cache: cache, Location: client}

	mux.HandleFunc("GET /api/locations/provinces", in.provinces)
	mux.HandleFunc("GET /api/locations/districts/{provinceId}", in.districts)
	mux.HandleFunc("GET /api/locations/wards/{districtId}", in.wards)

	return in
}

// provinces serves the in-memory snapshot kept fresh by the location cron,
// falling back to the upstream API on a cold start.
func (in *LocationHttp) provinces(w http.ResponseWriter, r *http.Request) {
	provinces := vars.GetProvinces()
	if len(provinces) > 0 {
		writeJSONResponse(w, http.StatusOK, provinces)
		return
	}

	ctx := r.Context()

	provinces, err := in.Location.Provinces(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch provinces", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	vars.SetProvinces(provinces)

	writeJSONResponse(w, http.StatusOK, provinces)
}

func (in *LocationHttp) districts(w http.ResponseWriter, r *http.Request) {
	provinceId := r.PathValue("provinceId")
	ctx := r.Context()
	cacheKey := fmt.Sprintf(constant.DistrictsListKey, provinceId)

	cached, err := in.Cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var districts []model.District
		if err := json.Unmarshal([]byte(cached), &districts); err == nil {
			writeJSONResponse(w, http.StatusOK, districts)
			return
		}
	} else if err != redis.Nil {
		slog.ErrorContext(ctx, "district cache read failed", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
	}

	districts, err := in.Location.Districts(ctx, provinceId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch districts", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	in.cacheList(ctx, cacheKey, districts)

	writeJSONResponse(w, http.StatusOK, districts)
}

func (in *LocationHttp) wards(w http.ResponseWriter, r *http.Request) {
	districtId := r.PathValue("districtId")
	ctx := r.Context()
	cacheKey := fmt.Sprintf(constant.WardsListKey, districtId)

	cached, err := in.Cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var wards []model.Ward
		if err := json.Unmarshal([]byte(cached), &wards); err == nil {
			writeJSONResponse(w, http.StatusOK, wards)
			return
		}
	} else if err != redis.Nil {
		slog.ErrorContext(ctx, "ward cache read failed", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
	}

	wards, err := in.Location.Wards(ctx, districtId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch wards", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	in.cacheList(ctx, cacheKey, wards)

	writeJSONResponse(w, http.StatusOK, wards)
}

func (in *LocationHttp) cacheList(ctx context.Context, key string, list any) {
	data, err := json.Marshal(list)
	if err != nil {
		return
	}

	if err := in.Cache.Set(ctx, key, string(data), constant.LocationDefaultTTL).Err(); err != nil {
		slog.ErrorContext(ctx, "location cache write failed", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
	}
}
