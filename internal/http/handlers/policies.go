package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

type PolicyHandler struct {
	Svc core.PolicyService
	Log *slog.Logger
}

func NewPolicyHandler(svc core.PolicyService, log *slog.Logger) *PolicyHandler {
	return &PolicyHandler{Svc: svc, Log: log}
}

func (h *PolicyHandler) Mount(r chi.Router) {
	r.Route("/policies", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.List)
		r.Get("/report", h.Report)
		r.Get("/{number}", h.Get)
		r.Delete("/{number}", h.Remove)
		r.Get("/{number}/value", h.Value)
		r.Get("/{number}/validity", h.Validity)
		r.Post("/{number}/renew", h.Renew)
		r.Post("/{number}/cancel", h.Cancel)
	})
}

type policyRequest struct {
	Number       string  `json:"number"`
	ClientCPF    string  `json:"client_cpf"`
	VehiclePlate string  `json:"vehicle_plate"`
	Value        float64 `json:"value"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}

func (in policyRequest) toPolicy() (core.Policy, error) {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return core.Policy{}, err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return core.Policy{}, err
	}
	return core.Policy{
		Number:       in.Number,
		ClientCPF:    in.ClientCPF,
		VehiclePlate: in.VehiclePlate,
		Value:        in.Value,
		StartDate:    start,
		EndDate:      end,
	}, nil
}

func (h *PolicyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in policyRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	p, err := in.toPolicy()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid policy payload")
		return
	}
	p, err = h.Svc.Register(r.Context(), p)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to register policy")
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, p)
}

func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get policy")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

func (h *PolicyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Remove(r.Context(), chi.URLParam(r, "number")); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to remove policy")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List returns every policy, or only those starting on ?start_date=YYYY-MM-DD.
func (h *PolicyHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		policies []core.Policy
		err      error
	)
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		date, perr := parseDate(raw)
		if perr != nil {
			writeError(r.Context(), h.Log, w, perr, "Invalid start_date filter")
			return
		}
		policies, err = h.Svc.ListByStartDate(r.Context(), date)
	} else {
		policies, err = h.Svc.List(r.Context())
	}
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list policies")
		return
	}
	if policies == nil {
		policies = []core.Policy{}
	}
	writeJSON(h.Log, w, http.StatusOK, policies)
}

func (h *PolicyHandler) Value(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get policy")
		return
	}
	value, err := h.Svc.CalculateValue(r.Context(), p)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to calculate policy value")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]float64{"value": value})
}

func (h *PolicyHandler) Validity(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get policy")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]bool{"valid": h.Svc.IsValid(p)})
}

func (h *PolicyHandler) Renew(w http.ResponseWriter, r *http.Request) {
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
	p, err := h.Svc.Renew(r.Context(), chi.URLParam(r, "number"), newEnd)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to renew policy")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

func (h *PolicyHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Cancel(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to cancel policy")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, p)
}

// Report returns the policies starting within [start, end], both inclusive.
func (h *PolicyHandler) Report(w http.ResponseWriter, r *http.Request) {
	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid report start date")
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid report end date")
		return
	}
	policies, err := h.Svc.GenerateReport(r.Context(), start, end)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to generate report")
		return
	}
	if policies == nil {
		policies = []core.Policy{}
	}
	writeJSON(h.Log, w, http.StatusOK, policies)
}
