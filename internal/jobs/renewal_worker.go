package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

// RenewalWorker sweeps stored insurance contracts and applies automatic
// renewal to any that are within the renewal window of their end date.
type RenewalWorker struct {
	BaseWorker
	insurances core.InsuranceService
}

func NewRenewalWorker(insurances core.InsuranceService, interval time.Duration, log *slog.Logger) *RenewalWorker {
	return &RenewalWorker{
		BaseWorker: NewBaseWorker("renewal", interval, log),
		insurances: insurances,
	}
}

func (w *RenewalWorker) Name() string { return w.name }

func (w *RenewalWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.sweep)
}

func (w *RenewalWorker) sweep(ctx context.Context) error {
	all, err := w.insurances.List(ctx)
	if err != nil {
		return err
	}

	for _, ins := range all {
		renewed, updated, err := w.insurances.AutomaticRenewal(ctx, ins.Number)
		if err != nil {
			w.log.Error("automatic renewal failed", "number", ins.Number, "err", err)
			continue
		}
		if renewed {
			w.log.Info("insurance renewed",
				slog.String("number", updated.Number),
				slog.Time("new_end_date", updated.EndDate))
		}
	}
	return nil
}
