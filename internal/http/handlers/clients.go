package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
	"github.com/rafaelfiap/go-vehicle-insurance/pkg/problem"
)

type ClientHandler struct {
	Svc core.ClientService
	Log *slog.Logger
}

func NewClientHandler(svc core.ClientService, log *slog.Logger) *ClientHandler {
	return &ClientHandler{Svc: svc, Log: log}
}

func (h *ClientHandler) Mount(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", h.Register)
		r.Get("/", h.List)
		r.Get("/{cpf}", h.Get)
		r.Put("/{cpf}", h.Update)
		r.Delete("/{cpf}", h.Remove)
		r.Get("/{cpf}/discount", h.Discount)
		r.Get("/{cpf}/eligibility", h.Eligibility)
	})
}

type clientRequest struct {
	CPF          string       `json:"cpf"`
	Name         string       `json:"name"`
	Address      core.Address `json:"address"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Sex          core.Sex     `json:"sex"`
	BirthDate    string       `json:"birth_date"`
	RegisteredAt string       `json:"registered_at"`
}

func (in clientRequest) toClient() (core.Client, error) {
	birth, err := parseDate(in.BirthDate)
	if err != nil {
		return core.Client{}, err
	}
	registered, err := parseDate(in.RegisteredAt)
	if err != nil {
		return core.Client{}, err
	}
	return core.Client{
		CPF:          in.CPF,
		Name:         in.Name,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Sex:          in.Sex,
		BirthDate:    birth,
		RegisteredAt: registered,
	}, nil
}

func (h *ClientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in clientRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	client, err := in.toClient()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid client payload")
		return
	}
	if err := h.Svc.Register(r.Context(), client); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to register client")
		return
	}
	writeJSON(h.Log, w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.Svc.GetByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get client")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in clientRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid JSON", "Request body is not valid JSON.")
		return
	}
	in.CPF = chi.URLParam(r, "cpf")
	client, err := in.toClient()
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Invalid client payload")
		return
	}
	if err := h.Svc.Update(r.Context(), client); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to update client")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, client)
}

func (h *ClientHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Remove(r.Context(), chi.URLParam(r, "cpf")); err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to remove client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list clients")
		return
	}
	if clients == nil {
		clients = []core.Client{}
	}
	writeJSON(h.Log, w, http.StatusOK, clients)
}

func (h *ClientHandler) Discount(w http.ResponseWriter, r *http.Request) {
	client, err := h.Svc.GetByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get client")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]float64{
		"discount": h.Svc.CalculateDiscount(client),
	})
}

func (h *ClientHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	client, err := h.Svc.GetByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get client")
		return
	}
	writeJSON(h.Log, w, http.StatusOK, map[string]any{
		"age":      h.Svc.CalculateAge(client),
		"eligible": h.Svc.IsEligible(client),
	})
}
