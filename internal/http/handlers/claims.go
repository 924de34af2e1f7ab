package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

type ClaimHandler struct {
	Svc core.ClaimService
	Log *slog.Logger
}

func NewClaimHandler(svc core.ClaimService, log *slog.Logger) *ClaimHandler {
	return &ClaimHandler{Svc: svc, Log: log}
}

func (h *ClaimHandler) Mount(r chi.Router) {
	r.Route("/claims", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.List)
		r.Get("/indemnifications/total", h.Total)
		r.Get("/{number}", h.Get)
		r.Put("/{number}", h.Update)
		r.Delete("/{number}", h.Remove)
		r.Get("/{number}/indemnification", h.Indemnification)
	})
}

type claimRequest struct {
	Number       string       `json:"number"`
	ClientCPF    string       `json:"client_cpf"`
	PolicyNumber string       `json:"policy_number"`
	EventDate    string       `json:"event_date"`
	Location     core.Address `json:"location"`
}

func (in claimRequest) toClaim() (core.Claim, error) {
	event, err := parseDate(in.EventDate)
	if err != nil {
		return core.Claim{}, err
	}
	return core.Claim{
		Number:       in.Number,
		ClientCPF:    in.ClientCPF,
		PolicyNumber: in.PolicyNumber,
		EventDate:    event,
		Location:     in.Location,
	}, nil
}

func (h *ClaimHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in claimRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	claim, err := in.toClaim()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid claim payload")
		return
	}
	claim, err = h.Svc.Register(r.Context(), claim)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to register claim")
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, claim)
}

func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	claim, err := h.Svc.Find(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get claim")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, claim)
}

func (h *ClaimHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in claimRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	in.Number = chi.URLParam(r, "number")
	claim, err := in.toClaim()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid claim payload")
		return
	}
	if err := h.Svc.Update(r.Context(), claim); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to update claim")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, claim)
}

func (h *ClaimHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Remove(r.Context(), chi.URLParam(r, "number")); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to remove claim")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List returns every claim, or only those whose event falls on ?date=YYYY-MM-DD.
func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		claims []core.Claim
		err    error
	)
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, perr := parseDate(raw)
		if perr != nil {
			writeError(r.Context(), h.Log, w, perr, "Invalid date filter")
			return
		}
		claims, err = h.Svc.ListByDate(r.Context(), date)
	} else {
		claims, err = h.Svc.ListAll(r.Context())
	}
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list claims")
		return
	}
	if claims == nil {
		claims = []core.Claim{}
	}
	writeJSON(h.Log, w, http.StatusOK, claims)
}

func (h *ClaimHandler) Indemnification(w http.ResponseWriter, r *http.Request) {
	claim, err := h.Svc.Find(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get claim")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]float64{
		"indemnification": h.Svc.CalculateIndemnification(claim),
	})
}

func (h *ClaimHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.Svc.CalculateTotalIndemnifications(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to total indemnifications")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]float64{"total": total})
}
