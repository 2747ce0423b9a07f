// Package transport exposes the JSON/HTTP API.
package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estatoai/estato/internal/dashboard"
	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
	"github.com/estatoai/estato/internal/inventory"
	"github.com/estatoai/estato/internal/stats"
	"github.com/estatoai/estato/internal/view"
)

// Server wires HTTP handlers to the domain services.
type Server struct {
	users       *user.Service
	listings    *listing.Service
	predictions *prediction.Service
	dashboard   *dashboard.Service
	inventory   *inventory.Manager
	logger      *slog.Logger
}

// NewRouter creates the API router.
func NewRouter(
	users *user.Service,
	listings *listing.Service,
	predictions *prediction.Service,
	dash *dashboard.Service,
	inv *inventory.Manager,
	logger *slog.Logger,
) *chi.Mux {
	s := &Server{
		users:       users,
		listings:    listings,
		predictions: predictions,
		dashboard:   dash,
		inventory:   inv,
		logger:      logger,
	}

	r := chi.NewRouter()
	r.Use(s.identityMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleRegister)

		r.Get("/listings", s.handleBrowseListings)
		r.Post("/listings", s.handleCreateListing)
		r.Patch("/listings/{id}/status", s.handleSetStatus)
		r.Delete("/listings/{id}", s.handleDeleteListing)

		r.Get("/inventory", s.handleInventory)

		r.Post("/predict", s.handlePredict)
		r.Get("/stats/sectors", s.handleSectorStats)

		r.Get("/admin/feed", s.handleAdminFeed)
		r.Get("/admin/stats", s.handleAdminStats)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type registerRequest struct {
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := s.users.Register(r.Context(), req.Email, req.Role)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// handleBrowseListings serves the public marketplace: public listings
// only, type/sector filters, newest first.
func (s *Server) handleBrowseListings(w http.ResponseWriter, r *http.Request) {
	all, err := s.listings.Browse(r.Context(), listing.Query{Visibility: listing.VisibilityPublic})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	spec := view.FilterSpec{
		Scope:  view.ScopeGlobal,
		Sector: r.URL.Query().Get("sector"),
		Type:   r.URL.Query().Get("type"),
	}
	if u, ok := UserFromContext(r.Context()); ok {
		spec.ViewerID = u.ID
	}
	writeJSON(w, http.StatusOK, view.Apply(all, spec))
}

type createListingRequest struct {
	Title      string              `json:"title"`
	Sector     string              `json:"sector"`
	Block      string              `json:"block"`
	Type       listing.ListingType `json:"type"`
	Price      float64             `json:"price"`
	Bedrooms   int                 `json:"bedrooms"`
	Bathrooms  int                 `json:"bathrooms"`
	SizeMarla  float64             `json:"size_marla"`
	Visibility listing.Visibility  `json:"visibility"`
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if !u.CanListProperty() {
		writeError(w, http.StatusForbidden, "buyers cannot list property")
		return
	}

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	l, err := s.listings.Create(r.Context(), listing.CreateRequest{
		OwnerID:    u.ID,
		Email:      u.Email,
		Title:      req.Title,
		Sector:     req.Sector,
		Block:      req.Block,
		Type:       req.Type,
		Price:      req.Price,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		SizeMarla:  req.SizeMarla,
		Visibility: req.Visibility,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

type setStatusRequest struct {
	Status listing.ListingStatus `json:"status"`
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.listings.SetStatus(r.Context(), u.ID, chi.URLParam(r, "id"), req.Status); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := s.listings.Delete(r.Context(), u.ID, chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type inventoryResponse struct {
	Total    int               `json:"total"`
	Matched  int               `json:"matched"`
	Listings []listing.Listing `json:"listings"`
	Sources  map[string]string `json:"sources"`
}

// handleInventory serves the merged agent inventory with granular
// filters. The per-agent session keeps its two subscriptions alive
// between requests, so the union is already current.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	u, ok := s.requireAgent(w, r)
	if !ok {
		return
	}

	sess := s.inventory.Session(u.ID)
	if sess == nil {
		writeError(w, http.StatusServiceUnavailable, "inventory unavailable")
		return
	}

	q := r.URL.Query()
	spec := view.FilterSpec{
		Scope:       view.Scope(q.Get("scope")),
		Sector:      q.Get("sector"),
		Block:       q.Get("block"),
		Type:        q.Get("type"),
		PriceBucket: q.Get("price"),
	}
	if spec.Scope == "" {
		spec.Scope = view.ScopeGlobal
	}

	matched := sess.View(spec)
	total := len(sess.Listings())

	sources := make(map[string]string)
	for id, err := range sess.Health() {
		if err != nil {
			sources[id] = err.Error()
		} else {
			sources[id] = "ok"
		}
	}

	writeJSON(w, http.StatusOK, inventoryResponse{
		Total:    total,
		Matched:  len(matched),
		Listings: matched,
		Sources:  sources,
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var features prediction.FeatureSet
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := s.predictions.Predict(r.Context(), features)
	if err != nil {
		switch {
		case errors.Is(err, prediction.ErrModelUnavailable):
			writeError(w, http.StatusBadGateway, "AI model service unavailable")
		case errors.Is(err, prediction.ErrMalformedResponse):
			writeError(w, http.StatusInternalServerError, "invalid response from AI model")
		case errors.Is(err, prediction.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSectorStats(w http.ResponseWriter, r *http.Request) {
	predictions, err := s.predictions.List(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.SectorStats(predictions))
}

func (s *Server) handleAdminFeed(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	snap := s.dashboard.Load(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"activities":    snap.Feed(r.URL.Query().Get("tab")),
		"source_errors": snap.SourceErrors,
	})
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}
	snap := s.dashboard.Load(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"users":         snap.Users,
		"listings":      snap.Listings,
		"predictions":   snap.Predictions,
		"source_errors": snap.SourceErrors,
	})
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, listing.ErrListingNotFound), errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, listing.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, listing.ErrInvalidInput),
		errors.Is(err, listing.ErrInvalidStatus),
		errors.Is(err, user.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
