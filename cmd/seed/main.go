// Command seed walks the whole back office once with demo data: a client,
// two vehicles, a policy with its value, renewal and cancellation, and a
// claim with its indemnification.
package main

import (
	"context"
	"time"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/config"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/platform/logging"
	"github.com/rafaelfiap/go-vehicle-insurance/internal/store/memory"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx := context.Background()

	clientRepo := memory.NewClientRepo()
	vehicleRepo := memory.NewVehicleRepo()
	policyRepo := memory.NewPolicyRepo()
	claimRepo := memory.NewClaimRepo()

	clientSvc := core.NewClientService(clientRepo, cfg.DiscountMode)
	vehicleSvc := core.NewVehicleService(vehicleRepo)
	policySvc := core.NewPolicyService(policyRepo, vehicleRepo, clientSvc)
	claimSvc := core.NewClaimService(claimRepo)

	address := core.Address{
		Street:     "Rua das Flores",
		Number:     123,
		PostalCode: "12345-678",
		District:   "Centro",
		City:       "São Paulo",
		State:      "SP",
	}
	client := core.Client{
		CPF:          "123.456.789-00",
		Name:         "João Silva",
		Address:      address,
		Phone:        "1199999-9999",
		Email:        "joao@email.com",
		Sex:          core.SexMale,
		BirthDate:    date(1980, 5, 20),
		RegisteredAt: date(2018, 3, 1),
	}
	if err := clientSvc.Register(ctx, client); err != nil {
		log.Error("failed to register client", "err", err)
		return
	}
	log.Info("client registered", "cpf", client.CPF, "name", client.Name,
		"discount", clientSvc.CalculateDiscount(client),
		"eligible", clientSvc.IsEligible(client))

	car, err := vehicleSvc.Register(ctx, core.CategoryCar, "ABC-1234", "Toyota", "Corolla", 2020, "black", "gasoline")
	if err != nil {
		log.Error("failed to register car", "err", err)
		return
	}
	moto, err := vehicleSvc.Register(ctx, core.CategoryMotorcycle, "XYZ-5678", "Honda", "CG 160", 2021, "red", "gasoline")
	if err != nil {
		log.Error("failed to register motorcycle", "err", err)
		return
	}
	log.Info("vehicles registered",
		"car_premium", car.Premium,
		"motorcycle_premium", moto.Premium)

	policy, err := policySvc.Register(ctx, core.Policy{
		Number:       "AP-001",
		ClientCPF:    client.CPF,
		VehiclePlate: car.Plate,
		StartDate:    date(2024, 10, 15),
		EndDate:      date(2025, 10, 15),
	})
	if err != nil {
		log.Error("failed to register policy", "err", err)
		return
	}
	value, err := policySvc.CalculateValue(ctx, policy)
	if err != nil {
		log.Error("failed to calculate policy value", "err", err)
		return
	}
	log.Info("policy registered", "number", policy.Number, "value", value)

	policy, err = policySvc.Renew(ctx, policy.Number, date(2026, 10, 15))
	if err != nil {
		log.Error("failed to renew policy", "err", err)
		return
	}
	log.Info("policy renewed", "number", policy.Number,
		"end_date", policy.EndDate.Format("2006-01-02"),
		"valid", policySvc.IsValid(policy))

	policy, err = policySvc.Cancel(ctx, policy.Number)
	if err != nil {
		log.Error("failed to cancel policy", "err", err)
		return
	}
	log.Info("policy cancelled", "number", policy.Number,
		"end_date", policy.EndDate.Format("2006-01-02"))

	claim, err := claimSvc.Register(ctx, core.Claim{
		Number:       "S-001",
		ClientCPF:    client.CPF,
		PolicyNumber: policy.Number,
		EventDate:    date(2024, 10, 20),
		Location:     address,
	})
	if err != nil {
		log.Error("failed to register claim", "err", err)
		return
	}
	total, err := claimSvc.CalculateTotalIndemnifications(ctx)
	if err != nil {
		log.Error("failed to total indemnifications", "err", err)
		return
	}
	log.Info("claim registered", "number", claim.Number,
		"indemnification", claimSvc.CalculateIndemnification(claim),
		"total", total)

	vehicles, err := vehicleSvc.List(ctx)
	if err != nil {
		log.Error("failed to list vehicles", "err", err)
		return
	}
	for _, v := range vehicles {
		log.Info("vehicle on file", "plate", v.Plate, "category", string(v.Category),
			"model", v.Model, "premium", v.Premium)
	}

	log.Info("done seeding")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
