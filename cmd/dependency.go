package cmd

import (
	"context"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log"
	"nightlife-booking/common/otel"
	"nightlife-booking/outbound/location"
	"nightlife-booking/outbound/platform"
	"os"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	return config
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       0,
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newPlatformClient(cfg *viper.Viper) *platform.HttpClient {
	return platform.NewHttpClient(cfg)
}

func newLocationClient(cfg *viper.Viper) *location.HttpClient {
	return location.NewHttpClient(cfg)
}

// newTracer is a no-op unless otel.enabled is set; the returned func flushes
// spans on shutdown.
func newTracer(ctx context.Context, cfg *viper.Viper) func(context.Context) error {
	if !cfg.GetBool("otel.enabled") {
		return func(context.Context) error { return nil }
	}

	shutdown, err := otel.InitTracerProvider(ctx, cfg.GetString("otel.endpoint"))
	if err != nil {
		log.Fatalln("unable to init tracer provider", err)
	}

	return shutdown
}
