package core

import (
	"context"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// fakeRepo backs the service tests with a slice so listing order is stable.
type fakeRepo[T any] struct {
	key     func(T) string
	missing error
	items   []T
}

func (r *fakeRepo[T]) add(v T) bool {
	k := r.key(v)
	for i := range r.items {
		if r.key(r.items[i]) == k {
			r.items[i] = v
			return false
		}
	}
	r.items = append(r.items, v)
	return true
}

func (r *fakeRepo[T]) get(k string) (T, error) {
	for i := range r.items {
		if r.key(r.items[i]) == k {
			return r.items[i], nil
		}
	}
	var zero T
	return zero, r.missing
}

func (r *fakeRepo[T]) update(v T) error {
	k := r.key(v)
	for i := range r.items {
		if r.key(r.items[i]) == k {
			r.items[i] = v
			return nil
		}
	}
	return r.missing
}

func (r *fakeRepo[T]) remove(k string) error {
	for i := range r.items {
		if r.key(r.items[i]) == k {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return r.missing
}

func (r *fakeRepo[T]) list() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

type fakeClients struct{ fakeRepo[Client] }

func newFakeClients() *fakeClients {
	return &fakeClients{fakeRepo[Client]{key: func(c Client) string { return c.CPF }, missing: ErrClientNotFound}}
}

func (r *fakeClients) Add(_ context.Context, c Client) (bool, error) { return r.add(c), nil }
func (r *fakeClients) GetByCPF(_ context.Context, cpf string) (Client, error) {
	return r.get(cpf)
}
func (r *fakeClients) Update(_ context.Context, c Client) error  { return r.update(c) }
func (r *fakeClients) Remove(_ context.Context, cpf string) error { return r.remove(cpf) }
func (r *fakeClients) List(_ context.Context) ([]Client, error)  { return r.list(), nil }

type fakeVehicles struct{ fakeRepo[Vehicle] }

func newFakeVehicles() *fakeVehicles {
	return &fakeVehicles{fakeRepo[Vehicle]{key: func(v Vehicle) string { return v.Plate }, missing: ErrVehicleNotFound}}
}

func (r *fakeVehicles) Add(_ context.Context, v Vehicle) (bool, error) { return r.add(v), nil }
func (r *fakeVehicles) GetByPlate(_ context.Context, plate string) (Vehicle, error) {
	return r.get(plate)
}
func (r *fakeVehicles) Update(_ context.Context, v Vehicle) error   { return r.update(v) }
func (r *fakeVehicles) Remove(_ context.Context, plate string) error { return r.remove(plate) }
func (r *fakeVehicles) List(_ context.Context) ([]Vehicle, error)   { return r.list(), nil }

type fakePolicies struct{ fakeRepo[Policy] }

func newFakePolicies() *fakePolicies {
	return &fakePolicies{fakeRepo[Policy]{key: func(p Policy) string { return p.Number }, missing: ErrPolicyNotFound}}
}

func (r *fakePolicies) Add(_ context.Context, p Policy) (bool, error) { return r.add(p), nil }
func (r *fakePolicies) GetByNumber(_ context.Context, number string) (Policy, error) {
	return r.get(number)
}
func (r *fakePolicies) Update(_ context.Context, p Policy) error     { return r.update(p) }
func (r *fakePolicies) Remove(_ context.Context, number string) error { return r.remove(number) }
func (r *fakePolicies) List(_ context.Context) ([]Policy, error)     { return r.list(), nil }
func (r *fakePolicies) FindByStartDate(_ context.Context, date time.Time) ([]Policy, error) {
	var out []Policy
	for _, p := range r.list() {
		if sameDay(p.StartDate, date) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeInsurances struct{ fakeRepo[Insurance] }

func newFakeInsurances() *fakeInsurances {
	return &fakeInsurances{fakeRepo[Insurance]{key: func(i Insurance) string { return i.Number }, missing: ErrInsuranceNotFound}}
}

func (r *fakeInsurances) Add(_ context.Context, ins Insurance) (bool, error) { return r.add(ins), nil }
func (r *fakeInsurances) GetByNumber(_ context.Context, number string) (Insurance, error) {
	return r.get(number)
}
func (r *fakeInsurances) Update(_ context.Context, ins Insurance) error { return r.update(ins) }
func (r *fakeInsurances) Remove(_ context.Context, number string) error { return r.remove(number) }
func (r *fakeInsurances) List(_ context.Context) ([]Insurance, error)   { return r.list(), nil }

type fakeClaims struct{ fakeRepo[Claim] }

func newFakeClaims() *fakeClaims {
	return &fakeClaims{fakeRepo[Claim]{key: func(c Claim) string { return c.Number }, missing: ErrClaimNotFound}}
}

func (r *fakeClaims) Add(_ context.Context, c Claim) (bool, error) { return r.add(c), nil }
func (r *fakeClaims) GetByNumber(_ context.Context, number string) (Claim, error) {
	return r.get(number)
}
func (r *fakeClaims) Update(_ context.Context, c Claim) error     { return r.update(c) }
func (r *fakeClaims) Remove(_ context.Context, number string) error { return r.remove(number) }
func (r *fakeClaims) List(_ context.Context) ([]Claim, error)     { return r.list(), nil }
func (r *fakeClaims) FindByEventDate(_ context.Context, date time.Time) ([]Claim, error) {
	var out []Claim
	for _, c := range r.list() {
		if sameDay(c.EventDate, date) {
			out = append(out, c)
		}
	}
	return out, nil
}
