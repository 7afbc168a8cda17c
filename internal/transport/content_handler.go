package transport

import (
	"net/http"

	"spawnsmart/internal/content"
	"spawnsmart/internal/domain"
	"spawnsmart/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FactResponse wraps a single mushroom fact
type FactResponse struct {
	Fact string `json:"fact"`
}

// ContentHandler serves resolved CMS content
type ContentHandler struct {
	resolver *content.Resolver
	logger   *zap.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(resolver *content.Resolver, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/content", func(r chi.Router) {
		r.Get("/suppliers", h.ListSuppliers)
		r.Get("/suppliers/{id}", h.GetSupplier)
		r.Get("/spores", h.ListSpores)
		r.Get("/education/{category}", h.ListEducation)
		r.Get("/faqs/{category}", h.ListFAQs)
		r.Get("/facts/random", h.RandomFact)
		r.Get("/components/{name}", h.GetComponentContent)
		r.Post("/reload", h.Reload)
	})
}

// ListSuppliers returns suppliers, optionally filtered by type and
// the featured flag
func (h *ContentHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	supplierType := r.URL.Query().Get("type")
	featuredOnly := r.URL.Query().Get("featured") == "true"

	var suppliers []domain.Supplier
	switch {
	case supplierType != "" && featuredOnly:
		suppliers = h.resolver.GetFeaturedSuppliersByType(r.Context(), domain.SupplierType(supplierType))
	case supplierType != "":
		suppliers = h.resolver.GetAllSuppliersByType(r.Context(), domain.SupplierType(supplierType))
	case featuredOnly:
		suppliers = h.resolver.GetFeaturedSuppliers(r.Context())
	default:
		suppliers = h.resolver.GetAllSuppliers(r.Context())
	}

	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, suppliers)
}

// GetSupplier returns a single supplier by id
func (h *ContentHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	supplier := h.resolver.GetSupplierByID(r.Context(), id)
	if supplier == nil {
		middleware.RespondWithError(w, http.StatusNotFound, "supplier not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, supplier)
}

// ListSpores returns all resolved spore varieties
func (h *ContentHandler) ListSpores(w http.ResponseWriter, r *http.Request) {
	spores := h.resolver.GetAllSporeData(r.Context())
	if spores == nil {
		spores = []domain.SporeVariety{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, spores)
}

// ListEducation returns educational items for a category
func (h *ContentHandler) ListEducation(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	items := h.resolver.GetEducationalContent(r.Context(), category)
	if items == nil {
		items = []domain.EducationalItem{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, items)
}

// ListFAQs returns the FAQs for a category in display order
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	faqs := h.resolver.GetFAQs(r.Context(), category)
	if faqs == nil {
		faqs = []domain.FAQ{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, faqs)
}

// RandomFact returns one mushroom fact
func (h *ContentHandler) RandomFact(w http.ResponseWriter, r *http.Request) {
	fact := h.resolver.GetRandomStaticFact(r.Context())
	if fact == "" {
		middleware.RespondWithError(w, http.StatusServiceUnavailable, "no facts available, please try again later")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, FactResponse{Fact: fact})
}

// GetComponentContent returns the UI copy for a component
func (h *ContentHandler) GetComponentContent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	middleware.RespondWithJSON(w, http.StatusOK, h.resolver.GetComponentContent(r.Context(), name))
}

// Reload runs the content load sequence again
func (h *ContentHandler) Reload(w http.ResponseWriter, r *http.Request) {
	h.resolver.Reload(r.Context())
	h.logger.Info("Content reloaded")
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
