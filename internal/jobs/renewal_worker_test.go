package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/store/memory"
)

func TestRenewalWorkerSweep(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewInsuranceRepo()
	svc := core.NewInsuranceService(repo, memory.NewVehicleRepo())
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// One contract expiring in ten days, one with most of its term left.
	expiring, err := svc.Register(ctx, core.Insurance{
		Number:       "SEG-001",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    today.AddDate(-1, 0, 10),
		EndDate:      today.AddDate(0, 0, 10),
	})
	require.NoError(t, err)
	healthy, err := svc.Register(ctx, core.Insurance{
		Number:       "SEG-002",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    today,
		EndDate:      today.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	w := NewRenewalWorker(svc, time.Minute, log)
	require.NoError(t, w.sweep(ctx))

	got, err := svc.GetByNumber(ctx, expiring.Number)
	require.NoError(t, err)
	assert.True(t, got.EndDate.After(expiring.EndDate), "expiring contract should have been extended")

	got, err = svc.GetByNumber(ctx, healthy.Number)
	require.NoError(t, err)
	assert.Equal(t, healthy.EndDate, got.EndDate, "healthy contract should be untouched")
}

func TestRenewalWorkerStopsOnCancel(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := core.NewInsuranceService(memory.NewInsuranceRepo(), memory.NewVehicleRepo())

	w := NewRenewalWorker(svc, 10*time.Millisecond, log)
	assert.Equal(t, "renewal", w.Name())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
