package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

type VehicleHandler struct {
	Svc core.VehicleService
	Log *slog.Logger
}

func NewVehicleHandler(svc core.VehicleService, log *slog.Logger) *VehicleHandler {
	return &VehicleHandler{Svc: svc, Log: log}
}

func (h *VehicleHandler) Mount(r chi.Router) {
	r.Route("/vehicles", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.List)
		r.Get("/{plate}", h.Get)
		r.Delete("/{plate}", h.Remove)
		r.Get("/{plate}/premium", h.Premium)
	})
}

type vehicleRequest struct {
	Category core.VehicleCategory `json:"category"`
	Plate    string               `json:"plate"`
	Make     string               `json:"make"`
	Model    string               `json:"model"`
	Year     int                  `json:"year"`
	Color    string               `json:"color"`
	Fuel     string               `json:"fuel"`
}

func (h *VehicleHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	v, err := h.Svc.Register(r.Context(), in.Category, in.Plate, in.Make, in.Model, in.Year, in.Color, in.Fuel)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to register vehicle")
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, v)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.Svc.GetByPlate(r.Context(), chi.URLParam(r, "plate"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get vehicle")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, v)
}

func (h *VehicleHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Remove(r.Context(), chi.URLParam(r, "plate")); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to remove vehicle")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list vehicles")
		return
	}
	if vehicles == nil {
		vehicles = []core.Vehicle{}
	}
	writeJSON(h.Log, w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Premium(w http.ResponseWriter, r *http.Request) {
	premium, err := h.Svc.Premium(r.Context(), chi.URLParam(r, "plate"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get vehicle premium")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]float64{"premium": premium})
}
