package transport

import (
	"encoding/json"
	"net/http"

	"spawnsmart/internal/calculator"
	"spawnsmart/internal/domain"
	"spawnsmart/internal/middleware"
	"spawnsmart/internal/openai"
	"spawnsmart/internal/service"
	"spawnsmart/internal/userdata"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const adviceUnavailable = "Unable to generate advice right now. Please try again later."

// CalculatorOptions lists the selectable inputs and the general tips
// shown alongside results
type CalculatorOptions struct {
	ExperienceLevels []domain.ExperienceLevel `json:"experienceLevels"`
	SubstrateTypes   []domain.SubstrateType   `json:"substrateTypes"`
	ContainerSizes   []domain.ContainerSize   `json:"containerSizes"`
	CultivationTips  []string                 `json:"cultivationTips"`
}

// CalculationResponse pairs the accepted input with its results
type CalculationResponse struct {
	Input   domain.CalculatorInput  `json:"input"`
	Results domain.CalculatorResult `json:"results"`
}

// AdviceResponse carries AI-generated cultivation advice
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// CalculatorHandler serves calculator, user data and advice routes
type CalculatorHandler struct {
	store       *userdata.Store
	chat        *openai.Client
	recommender service.RecommendationService
	logger      *zap.Logger
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(store *userdata.Store, chat *openai.Client, recommender service.RecommendationService, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		store:       store,
		chat:        chat,
		recommender: recommender,
		logger:      logger,
	}
}

// RegisterRoutes registers all calculator routes
func (h *CalculatorHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/calculator", func(r chi.Router) {
		r.Get("/options", h.Options)
		r.Post("/calculate", h.Calculate)
		r.Get("/userdata", h.GetUserData)
		r.Put("/userdata", h.UpdateUserData)
		r.Post("/userdata/save", h.SaveUserData)
		r.Post("/userdata/reset", h.ResetUserData)
		r.Post("/advice", h.Advice)
		r.Get("/recommendations", h.Recommendations)
	})
}

// Options returns the experience levels, substrate types and
// container sizes the calculator accepts, plus general best practices
func (h *CalculatorHandler) Options(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, CalculatorOptions{
		ExperienceLevels: domain.ExperienceLevels,
		SubstrateTypes:   domain.SubstrateTypes,
		ContainerSizes:   domain.ContainerSizes,
		CultivationTips:  domain.CultivationTips,
	})
}

// Calculate computes mix volumes for the posted input without
// touching stored user data
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CalculationResponse{
		Input:   input,
		Results: calculator.Calculate(input),
	})
}

// GetUserData returns the stored input and its current results
func (h *CalculatorHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, CalculationResponse{
		Input:   h.store.Input(),
		Results: h.store.Results(),
	})
}

// UpdateUserData replaces the stored input and recalculates
func (h *CalculatorHandler) UpdateUserData(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	results := h.store.Update(input)
	middleware.RespondWithJSON(w, http.StatusOK, CalculationResponse{
		Input:   h.store.Input(),
		Results: results,
	})
}

// SaveUserData persists the stored input to disk
func (h *CalculatorHandler) SaveUserData(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Save(); err != nil {
		h.logger.Error("Failed to save user data", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save user data")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// ResetUserData restores defaults and clears the recommendation
// request budget
func (h *CalculatorHandler) ResetUserData(w http.ResponseWriter, r *http.Request) {
	input := h.store.Reset()
	h.recommender.ResetLimits()
	h.logger.Info("User data reset")

	middleware.RespondWithJSON(w, http.StatusOK, CalculationResponse{
		Input:   input,
		Results: h.store.Results(),
	})
}

// Advice returns AI-generated cultivation advice for the posted
// input. Failures degrade to a generic retry message.
func (h *CalculatorHandler) Advice(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	advice, err := h.chat.GenerateCultivationAdvice(r.Context(), input)
	if err != nil {
		h.logger.Warn("Advice generation failed", zap.Error(err))
		middleware.RespondWithJSON(w, http.StatusOK, AdviceResponse{Advice: adviceUnavailable})
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, AdviceResponse{Advice: advice})
}

// Recommendations returns personalized recommendations for the
// stored input. Pass refresh=true to bypass the cache.
func (h *CalculatorHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	recs := h.recommender.Personalized(r.Context(), h.store.Input(), forceRefresh)
	middleware.RespondWithJSON(w, http.StatusOK, recs)
}

func (h *CalculatorHandler) decodeInput(w http.ResponseWriter, r *http.Request) (domain.CalculatorInput, bool) {
	var input domain.CalculatorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return input, false
	}
	return input, true
}
