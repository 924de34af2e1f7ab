package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	transporthttp "github.com/rafaelfiap/go-vehicle-insurance/internal/http"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/http/handlers"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/http/health"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/jobs"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/middleware"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/config"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/logging"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/store/memory"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	clientRepo := memory.NewClientRepo()
	vehicleRepo := memory.NewVehicleRepo()
	insuranceRepo := memory.NewInsuranceRepo()
	policyRepo := memory.NewPolicyRepo()
	claimRepo := memory.NewClaimRepo()

	// Services
	clientSvc := core.NewClientService(clientRepo, cfg.DiscountMode)
	vehicleSvc := core.NewVehicleService(vehicleRepo)
	insuranceSvc := core.NewInsuranceService(insuranceRepo, vehicleRepo)
	policySvc := core.NewPolicyService(policyRepo, vehicleRepo, clientSvc)
	claimSvc := core.NewClaimService(claimRepo)

	// Background renewal sweep
	worker := jobs.NewRenewalWorker(insuranceSvc, time.Duration(cfg.WorkerIntervalSec)*time.Second, log)
	go worker.Start(ctx)

	// Router
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPM, time.Minute)
	rateLimiter.Start(ctx)
	metrics := middleware.NewHTTPMetrics()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
	r.Use(metrics.Middleware)

	r.Mount("/", health.New())
	r.Handle("/metrics", promhttp.Handler())

	api := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewClientHandler(clientSvc, log),
			handlers.NewVehicleHandler(vehicleSvc, log),
			handlers.NewInsuranceHandler(insuranceSvc, log),
			handlers.NewPolicyHandler(policySvc, log),
			handlers.NewClaimHandler(claimSvc, log),
		},
	})
	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		r.Use(middleware.APIKey(cfg.APIKey))
		r.Mount("/api/v1", api)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("server listening", "addr", addr, "env", cfg.Env, "discount_mode", string(cfg.DiscountMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
