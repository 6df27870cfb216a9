package cron

import (
	"context"
	"github.com/spf13/viper"
	"log/slog"
	"nightlife-booking/common"
	"nightlife-booking/common/constant"
	"nightlife-booking/common/vars"
	"nightlife-booking/outbound/location"
	"time"
)

// LocationCron keeps the province snapshot fresh. Provinces change rarely,
// so one upstream fetch per interval covers every client.
type LocationCron struct {
	Cfg      *viper.Viper
	Location location.Client
}

func (in LocationCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.location.refresh.interval"))
	defer refreshTicker.Stop()

	// Run initial refresh
	in.refresh(ctx)

	slog.Info("location cron started")

	// Block in the main function, not in a goroutine
	for {
		select {
		case <-refreshTicker.C:
			in.refresh(ctx)
		case <-ctx.Done():
			slog.Info("location cron stopped")
			return
		}
	}
}

func (in LocationCron) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.location.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "refreshing provinces", traceIdAttr)

	provinces, err := in.Location.Provinces(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch provinces", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	if len(provinces) == 0 {
		slog.WarnContext(ctx, "province refresh returned empty list, keeping previous snapshot", traceIdAttr)
		return
	}

	vars.SetProvinces(provinces)

	slog.DebugContext(ctx, "provinces refreshed successfully", traceIdAttr)
}
