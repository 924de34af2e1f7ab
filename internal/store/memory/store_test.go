package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClientRepoRoundTrip(t *testing.T) {
	repo := NewClientRepo()
	ctx := context.Background()

	c := core.Client{CPF: "123.456.789-00", Name: "João Silva"}
	created, err := repo.Add(ctx, c)
	require.NoError(t, err)
	assert.True(t, created)

	got, err := repo.GetByCPF(ctx, c.CPF)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	c.Name = "João S. Atualizado"
	require.NoError(t, repo.Update(ctx, c))
	got, err = repo.GetByCPF(ctx, c.CPF)
	require.NoError(t, err)
	assert.Equal(t, "João S. Atualizado", got.Name)

	require.NoError(t, repo.Remove(ctx, c.CPF))
	_, err = repo.GetByCPF(ctx, c.CPF)
	require.ErrorIs(t, err, core.ErrClientNotFound)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestClientRepoMissingKey(t *testing.T) {
	repo := NewClientRepo()
	ctx := context.Background()

	_, err := repo.GetByCPF(ctx, "000.000.000-00")
	require.ErrorIs(t, err, core.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, core.Client{CPF: "000.000.000-00"}), core.ErrNotFound)
	require.ErrorIs(t, repo.Remove(ctx, "000.000.000-00"), core.ErrNotFound)
}

func TestVehicleRepoAddOverwriteKeepsPosition(t *testing.T) {
	repo := NewVehicleRepo()
	ctx := context.Background()

	for _, plate := range []string{"AAA-0001", "BBB-0002", "CCC-0003"} {
		created, err := repo.Add(ctx, core.Vehicle{Plate: plate, Category: core.CategoryCar})
		require.NoError(t, err)
		assert.True(t, created)
	}

	// Re-adding the first plate overwrites in place.
	created, err := repo.Add(ctx, core.Vehicle{Plate: "AAA-0001", Category: core.CategoryTruck})
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "AAA-0001", all[0].Plate)
	assert.Equal(t, core.CategoryTruck, all[0].Category)
	assert.Equal(t, "BBB-0002", all[1].Plate)
	assert.Equal(t, "CCC-0003", all[2].Plate)
}

func TestVehicleRepoListAfterRemove(t *testing.T) {
	repo := NewVehicleRepo()
	ctx := context.Background()

	for _, plate := range []string{"AAA-0001", "BBB-0002", "CCC-0003"} {
		_, err := repo.Add(ctx, core.Vehicle{Plate: plate})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Remove(ctx, "BBB-0002"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AAA-0001", all[0].Plate)
	assert.Equal(t, "CCC-0003", all[1].Plate)
}

func TestPolicyRepoFindByStartDate(t *testing.T) {
	repo := NewPolicyRepo()
	ctx := context.Background()

	policies := []core.Policy{
		{Number: "AP-001", StartDate: date(2025, 3, 1)},
		{Number: "AP-002", StartDate: date(2025, 4, 1)},
		// Same calendar day at a different hour still matches.
		{Number: "AP-003", StartDate: time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)},
	}
	for _, p := range policies {
		_, err := repo.Add(ctx, p)
		require.NoError(t, err)
	}

	got, err := repo.FindByStartDate(ctx, date(2025, 3, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "AP-001", got[0].Number)
	assert.Equal(t, "AP-003", got[1].Number)

	none, err := repo.FindByStartDate(ctx, date(2025, 5, 1))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClaimRepoFindByEventDate(t *testing.T) {
	repo := NewClaimRepo()
	ctx := context.Background()

	claims := []core.Claim{
		{Number: "S-001", EventDate: date(2025, 1, 10)},
		{Number: "S-002", EventDate: date(2025, 1, 11)},
		{Number: "S-003", EventDate: date(2025, 1, 10)},
	}
	for _, c := range claims {
		_, err := repo.Add(ctx, c)
		require.NoError(t, err)
	}

	got, err := repo.FindByEventDate(ctx, date(2025, 1, 10))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "S-001", got[0].Number)
	assert.Equal(t, "S-003", got[1].Number)
}

func TestInsuranceRepoRoundTrip(t *testing.T) {
	repo := NewInsuranceRepo()
	ctx := context.Background()

	ins := core.Insurance{Number: "SEG-001", StartDate: date(2025, 1, 1), EndDate: date(2026, 1, 1)}
	created, err := repo.Add(ctx, ins)
	require.NoError(t, err)
	assert.True(t, created)

	ins.Value = 900
	require.NoError(t, repo.Update(ctx, ins))

	got, err := repo.GetByNumber(ctx, "SEG-001")
	require.NoError(t, err)
	assert.InDelta(t, 900.0, got.Value, 1e-9)

	_, err = repo.GetByNumber(ctx, "SEG-404")
	require.ErrorIs(t, err, core.ErrInsuranceNotFound)
}

func TestStoreConcurrentAccess(t *testing.T) {
	repo := NewVehicleRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			plate := fmt.Sprintf("PLT-%04d", n)
			_, _ = repo.Add(ctx, core.Vehicle{Plate: plate})
			_, _ = repo.GetByPlate(ctx, plate)
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 16)
}
