package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

type InsuranceHandler struct {
	Svc core.InsuranceService
	Log *slog.Logger
}

func NewInsuranceHandler(svc core.InsuranceService, log *slog.Logger) *InsuranceHandler {
	return &InsuranceHandler{Svc: svc, Log: log}
}

func (h *InsuranceHandler) Mount(r chi.Router) {
	r.Route("/insurances", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.List)
		r.Get("/{number}", h.Get)
		r.Delete("/{number}", h.Remove)
		r.Get("/{number}/value", h.Value)
		r.Put("/{number}/value", h.UpdateValue)
		r.Get("/{number}/validity", h.Validity)
		r.Post("/{number}/renew", h.Renew)
		r.Post("/{number}/cancel", h.Cancel)
		r.Post("/{number}/automatic-renewal", h.AutomaticRenewal)
	})
}

type insuranceRequest struct {
	Number       string  `json:"number"`
	ClientCPF    string  `json:"client_cpf"`
	VehiclePlate string  `json:"vehicle_plate"`
	Value        float64 `json:"value"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

func (in insuranceRequest) toInsurance() (core.Insurance, error) {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return core.Insurance{}, err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return core.Insurance{}, err
	}
	return core.Insurance{
		Number:       in.Number,
		ClientCPF:    in.ClientCPF,
		VehiclePlate: in.VehiclePlate,
		Value:        in.Value,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

func (h *InsuranceHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in insuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	ins, err := in.toInsurance()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid insurance payload")
		return
	}
	ins, err = h.Svc.Register(r.Context(), ins)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to register insurance")
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, ins)
}

func (h *InsuranceHandler) Get(w http.ResponseWriter, r *http.Request) {
	ins, err := h.Svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get insurance")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, ins)
}

func (h *InsuranceHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Remove(r.Context(), chi.URLParam(r, "number")); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to remove insurance")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InsuranceHandler) List(w http.ResponseWriter, r *http.Request) {
	insurances, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list insurances")
		return
	}
	if insurances == nil {
		insurances = []core.Insurance{}
	}
	writeJSON(h.Log, w, http.StatusOK, insurances)
}

func (h *InsuranceHandler) Value(w http.ResponseWriter, r *http.Request) {
	ins, err := h.Svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get insurance")
		return
	}
	value, err := h.Svc.CalculateValue(r.Context(), ins)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to calculate insurance value")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]float64{"value": value})
}

func (h *InsuranceHandler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	ins, err := h.Svc.UpdateValue(r.Context(), chi.URLParam(r, "number"), in.Value)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to update insurance value")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, ins)
}

func (h *InsuranceHandler) Validity(w http.ResponseWriter, r *http.Request) {
	ins, err := h.Svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get insurance")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]bool{"valid": h.Svc.IsValid(ins)})
}

func (h *InsuranceHandler) Renew(w http.ResponseWriter, r *http.Request) {
	var in struct {
		EndDate string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	newEnd, err := parseDate(in.EndDate)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid renewal date")
		return
	}
	ins, err := h.Svc.Renew(r.Context(), chi.URLParam(r, "number"), newEnd)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to renew insurance")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, ins)
}

func (h *InsuranceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ins, err := h.Svc.Cancel(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to cancel insurance")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, ins)
}

func (h *InsuranceHandler) AutomaticRenewal(w http.ResponseWriter, r *http.Request) {
	renewed, ins, err := h.Svc.AutomaticRenewal(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to run automatic renewal")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]any{
		"renewed":   renewed,
		"insurance": ins,
	})
}
