package cmd

import (
	"context"
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"log"
	"log/slog"
	"net/http"
	"nightlife-booking/booking"
	inboundCron "nightlife-booking/inbound/cron"
	inboundHttp "nightlife-booking/inbound/http"
	"nightlife-booking/session"
	"os"
	"runtime/pprof"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	shutdownTracer := newTracer(ctx, cfg)

	validate := booking.NewValidator()
	vndFormatter := message.NewPrinter(language.Vietnamese)

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	platformClient := newPlatformClient(cfg)
	locationClient := newLocationClient(cfg)

	sessionStore := session.NewStore(cfg, cacheClient)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)
	authMiddleware := inboundHttp.AuthMiddleware(cfg.GetString("jwt.secret"))

	inboundHttp.RegisterBookingHttp(mux, platformClient, validate, vndFormatter)
	inboundHttp.RegisterAvailabilityHttp(mux, platformClient)
	inboundHttp.RegisterLocationHttp(mux, cacheClient, locationClient)
	inboundHttp.RegisterCatalogHttp(mux, platformClient)
	inboundHttp.RegisterSessionHttp(mux, sessionStore, validate, cfg.GetString("jwt.secret"))

	locationCron := inboundCron.LocationCron{
		Cfg:      cfg,
		Location: locationClient,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(authMiddleware(mux))),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		locationCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	if err := shutdownTracer(ctxShutDown); err != nil {
		slog.Error("unable to shutdown tracer provider", slog.Any("err", err))
	}

	slog.Info("http server stopped")
}
