package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/okian/execap/internal/adapters/http/api"
	"github.com/okian/execap/internal/adapters/http/swagger"
	app "github.com/okian/execap/internal/app"
	"github.com/okian/execap/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("EXECAP_ADDR", ":8080")
			_ = os.Setenv("EXECAP_DEFAULT_YEAR", "2023")
			defer func() {
				_ = os.Unsetenv("EXECAP_ADDR")
				_ = os.Unsetenv("EXECAP_DEFAULT_YEAR")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultYear, convey.ShouldEqual, 2023)
			})
		})

		convey.Convey("When testing source selection", func() {
			convey.Convey("Then the bundled source is the default", func() {
				src, err := buildSource(context.Background(), config.New())
				convey.So(err, convey.ShouldBeNil)
				convey.So(src.Name(), convey.ShouldEqual, "fortune10")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithDefaultYear(2023),
					app.WithCapBudget(80_000_000),
					app.WithLuxuryTaxThreshold(1.2),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP route registration", func() {
			svc := app.New()
			mux := http.NewServeMux()
			ctx := context.Background()

			convey.So(func() {
				swagger.Register(ctx, mux)
				api.NewServer(svc, svc, config.New().MaxLeaderboardLimit).Register(ctx, mux)
			}, convey.ShouldNotPanic)
		})
	})
}
