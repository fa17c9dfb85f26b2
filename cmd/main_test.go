package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/kselvam/pulseboard/internal/adapters/http/api"
	"github.com/kselvam/pulseboard/internal/adapters/repository"
	app "github.com/kselvam/pulseboard/internal/app"
	"github.com/kselvam/pulseboard/internal/config"
	"github.com/kselvam/pulseboard/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PULSE_ADDR", ":8080")
			_ = os.Setenv("PULSE_MAX_TABLE_LIMIT", "25")
			defer func() {
				_ = os.Unsetenv("PULSE_ADDR")
				_ = os.Unsetenv("PULSE_MAX_TABLE_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxTableLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When wiring the service end to end", func() {
			ctx := context.Background()
			convey.So(logger.Init(), convey.ShouldBeNil)

			store, err := repository.NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "wiring.db"))
			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = store.Close() }()

			svc := app.New(
				app.WithLogger(logger.Get()),
				app.WithLoader(repository.NewCachedLoader(store)),
			)
			mux := http.NewServeMux()
			api.NewServer(svc).Register(ctx, mux)

			convey.Convey("Then the route table should be populated", func() {
				for _, path := range []string{"/healthz", "/categories", "/kpis", "/table", "/stats", "/dashboard"} {
					req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
					convey.So(err, convey.ShouldBeNil)
					_, pattern := mux.Handler(req)
					convey.So(pattern, convey.ShouldNotBeEmpty)
				}
			})
		})
	})
}
