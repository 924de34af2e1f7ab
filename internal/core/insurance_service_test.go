package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insuranceFixture(t *testing.T, now time.Time) (InsuranceService, *fakeInsurances, *fakeVehicles) {
	t.Helper()
	insurances := newFakeInsurances()
	vehicles := newFakeVehicles()
	svc := &insuranceService{
		insurances: insurances,
		vehicles:   vehicles,
		clock:      fixedClock(now),
	}
	return svc, insurances, vehicles
}

func TestInsuranceCalculateValueIsVehiclePremium(t *testing.T) {
	now := day(2025, 1, 1)
	svc, _, vehicles := insuranceFixture(t, now)
	ctx := context.Background()

	v, err := NewVehicle(CategoryBus, "BUS-0001", "Marcopolo", "Paradiso", 2022, "silver", "diesel", now.Year())
	require.NoError(t, err)
	_, err = vehicles.Add(ctx, v)
	require.NoError(t, err)

	value, err := svc.CalculateValue(ctx, Insurance{
		Number:       "SEG-001",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "BUS-0001",
		StartDate:    day(2025, 1, 1),
		EndDate:      day(2026, 1, 1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 1700.0, value, 1e-9)
}

func TestInsuranceUpdateValue(t *testing.T) {
	svc, _, _ := insuranceFixture(t, day(2025, 1, 1))
	ctx := context.Background()

	ins, err := svc.Register(ctx, Insurance{
		Number:       "SEG-001",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    day(2025, 1, 1),
		EndDate:      day(2026, 1, 1),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateValue(ctx, ins.Number, 1234.56)
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, updated.Value, 1e-9)

	got, err := svc.GetByNumber(ctx, ins.Number)
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, got.Value, 1e-9)

	_, err = svc.UpdateValue(ctx, ins.Number, -1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateValue(ctx, "missing", 100)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInsuranceAutomaticRenewalInsideWindow(t *testing.T) {
	today := day(2025, 6, 1)
	svc, _, _ := insuranceFixture(t, today)
	ctx := context.Background()

	// Twenty days from expiry: inside the one month renewal window.
	ins, err := svc.Register(ctx, Insurance{
		Number:       "SEG-001",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    day(2024, 6, 21),
		EndDate:      day(2025, 6, 21),
	})
	require.NoError(t, err)

	renewed, got, err := svc.AutomaticRenewal(ctx, ins.Number)
	require.NoError(t, err)
	assert.True(t, renewed)
	assert.Equal(t, day(2026, 6, 1), got.EndDate)

	// A second pass the same day finds the fresh end date and leaves the
	// contract alone.
	renewed, got, err = svc.AutomaticRenewal(ctx, ins.Number)
	require.NoError(t, err)
	assert.False(t, renewed)
	assert.Equal(t, day(2026, 6, 1), got.EndDate)
}

func TestInsuranceAutomaticRenewalOutsideWindow(t *testing.T) {
	today := day(2025, 6, 1)
	svc, _, _ := insuranceFixture(t, today)
	ctx := context.Background()

	// Expiry exactly one month out is not yet renewable.
	ins, err := svc.Register(ctx, Insurance{
		Number:       "SEG-001",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    day(2024, 7, 1),
		EndDate:      day(2025, 7, 1),
	})
	require.NoError(t, err)

	renewed, got, err := svc.AutomaticRenewal(ctx, ins.Number)
	require.NoError(t, err)
	assert.False(t, renewed)
	assert.Equal(t, day(2025, 7, 1), got.EndDate)
}

func TestInsuranceAutomaticRenewalMissing(t *testing.T) {
	svc, _, _ := insuranceFixture(t, day(2025, 1, 1))
	_, _, err := svc.AutomaticRenewal(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInsuranceCancelInvalidatesSameDay(t *testing.T) {
	today := day(2025, 6, 1)
	svc, _, _ := insuranceFixture(t, today)
	ctx := context.Background()

	ins, err := svc.Register(ctx, Insurance{
		Number:       "SEG-001",
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    day(2025, 1, 1),
		EndDate:      day(2026, 1, 1),
	})
	require.NoError(t, err)
	require.True(t, svc.IsValid(ins))

	cancelled, err := svc.Cancel(ctx, ins.Number)
	require.NoError(t, err)
	assert.Equal(t, today, cancelled.EndDate)
	assert.False(t, svc.IsValid(cancelled))
}

func TestInsuranceRegisterAssignsNumber(t *testing.T) {
	svc, _, _ := insuranceFixture(t, day(2025, 1, 1))
	ins, err := svc.Register(context.Background(), Insurance{
		ClientCPF:    "123.456.789-00",
		VehiclePlate: "ABC-1234",
		StartDate:    day(2025, 1, 1),
		EndDate:      day(2026, 1, 1),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ins.Number)
}
