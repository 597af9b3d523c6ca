// Package api exposes the storefront service set over HTTP. The routes and
// payloads mirror what the HTTP-backed service clients expect, so the same
// binary can act as the backend those clients talk to.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pharmastore/p/internal/service"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	services service.Services
}

// New constructs a Handler.
func New(services service.Services) *Handler {
	return &Handler{services: services}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/register", h.register)
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.updateProfile)
			r.Post("/logout", h.logout)
		})

		r.Route("/medicines", func(r chi.Router) {
			r.Get("/", h.listMedicines)
			r.Get("/categories", h.listCategories)
			r.Get("/search", h.searchMedicines)
			r.Get("/{id}", h.getMedicine)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Post("/", h.addToCart)
			r.Delete("/", h.clearCart)
			r.Get("/summary", h.cartSummary)
			r.Put("/{id}", h.updateCartItem)
			r.Delete("/{id}", h.removeFromCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/{id}", h.getOrder)
			r.Post("/{id}/cancel", h.cancelOrder)
		})

		r.Route("/pharmacies", func(r chi.Router) {
			r.Get("/", h.listPharmacies)
			r.Get("/nearby", h.nearbyPharmacies)
			r.Get("/{id}", h.getPharmacy)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Auth handlers

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, err)
		return
	}
	resp := h.services.Auth.Login(r.Context(), req.Email, req.Password)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, err)
		return
	}
	resp := h.services.Auth.Register(r.Context(), req)
	respondJSON(w, statusOf(resp.Envelope, http.StatusCreated), resp)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Auth.GetProfile(r.Context(), bearerToken(r))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.ProfileUpdate
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, err)
		return
	}
	resp := h.services.Auth.UpdateProfile(r.Context(), bearerToken(r), req)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Auth.Logout(r.Context(), bearerToken(r))
	respondJSON(w, statusOf(*resp, http.StatusOK), resp)
}

// Medicine handlers

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.MedicineFilter{
		Search:               q.Get("search"),
		Category:             q.Get("category"),
		MinPrice:             q.Get("min_price"),
		MaxPrice:             q.Get("max_price"),
		PrescriptionRequired: q.Get("prescription_required"),
		AvailabilityStatus:   q.Get("availability_status"),
		Sort:                 q.Get("sort_by"),
		Page:                 intQuery(q.Get("page")),
		Limit:                intQuery(q.Get("limit")),
	}
	resp := h.services.Medicine.GetMedicines(r.Context(), filter)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) getMedicine(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Medicine.GetMedicineByID(r.Context(), chi.URLParam(r, "id"))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Medicine.GetCategories(r.Context())
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) searchMedicines(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp := h.services.Medicine.SearchMedicines(r.Context(), q.Get("q"), intQuery(q.Get("limit")))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

// Cart handlers

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Cart.GetCart(r.Context(), bearerToken(r))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

type addToCartRequest struct {
	MedicineID string `json:"medicine_id"`
	Quantity   int    `json:"quantity"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, err)
		return
	}
	resp := h.services.Cart.AddToCart(r.Context(), bearerToken(r), req.MedicineID, req.Quantity)
	respondJSON(w, statusOf(resp.Envelope, http.StatusCreated), resp)
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, err)
		return
	}
	resp := h.services.Cart.UpdateCartItem(r.Context(), bearerToken(r), chi.URLParam(r, "id"), req.Quantity)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Cart.RemoveFromCart(r.Context(), bearerToken(r), chi.URLParam(r, "id"))
	respondJSON(w, statusOf(*resp, http.StatusOK), resp)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Cart.ClearCart(r.Context(), bearerToken(r))
	respondJSON(w, statusOf(*resp, http.StatusOK), resp)
}

func (h *Handler) cartSummary(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Cart.GetCartSummary(r.Context(), bearerToken(r))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

// Order handlers

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.OrderInput
	if err := decodeJSON(r, &req); err != nil {
		respondInvalid(w, err)
		return
	}
	resp := h.services.Order.CreateOrder(r.Context(), bearerToken(r), req)
	respondJSON(w, statusOf(resp.Envelope, http.StatusCreated), resp)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	filter := service.OrderFilter{Status: r.URL.Query().Get("status")}
	resp := h.services.Order.GetOrders(r.Context(), bearerToken(r), filter)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Order.GetOrderByID(r.Context(), bearerToken(r), chi.URLParam(r, "id"))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Order.CancelOrder(r.Context(), bearerToken(r), chi.URLParam(r, "id"))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

// Pharmacy handlers

func (h *Handler) listPharmacies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.PharmacyFilter{
		City:        q.Get("city"),
		State:       q.Get("state"),
		Service:     q.Get("service"),
		PartnerOnly: q.Get("partner_only") == "true",
	}
	resp := h.services.Pharmacy.GetPharmacies(r.Context(), filter)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) getPharmacy(w http.ResponseWriter, r *http.Request) {
	resp := h.services.Pharmacy.GetPharmacyByID(r.Context(), chi.URLParam(r, "id"))
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

func (h *Handler) nearbyPharmacies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		resp := service.Fail(service.CodeValidation, "lat and lng are required")
		respondJSON(w, http.StatusBadRequest, resp)
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil {
		radius = 0
	}
	resp := h.services.Pharmacy.GetNearbyPharmacies(r.Context(), lat, lng, radius)
	respondJSON(w, statusOf(resp.Envelope, http.StatusOK), resp)
}

// Helpers

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func intQuery(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// statusOf maps a response envelope to an HTTP status. okStatus is used for
// successes so creations can answer 201 while reads answer 200.
func statusOf(env service.Envelope, okStatus int) int {
	if env.Success {
		return okStatus
	}
	switch env.Code {
	case service.CodeValidation, service.CodeEmptyCart:
		return http.StatusBadRequest
	case service.CodeAuth, service.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.CodeAccountDisabled:
		return http.StatusForbidden
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeConflict, service.CodeInsufficientStock, service.CodeUnavailable, service.CodeTerminalState:
		return http.StatusConflict
	case service.CodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondInvalid(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusBadRequest, service.Fail(service.CodeValidation, err.Error()))
}
