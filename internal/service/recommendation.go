package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"spawnsmart/internal/domain"
	"spawnsmart/internal/openai"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// maxAIRequests is the per-session budget of LLM calls
	maxAIRequests = 3

	// minRequestInterval is the shortest allowed gap between LLM calls
	minRequestInterval = 5 * time.Second
)

// ChatClient is the LLM contract the service depends on
type ChatClient interface {
	Configured() bool
	SendMessage(ctx context.Context, message string, opts openai.SendOptions) (*openai.Completion, error)
}

// Recommendations is a set of cultivation tips for the user's setup
type Recommendations struct {
	Items        []string `json:"recommendations"`
	Source       string   `json:"source"`
	LimitReached bool     `json:"limit_reached"`
}

// trainingCategory groups curated recommendations fed to the LLM as
// grounding material
type trainingCategory struct {
	Name            string
	Recommendations []string
}

var trainingCategories = []trainingCategory{
	{
		Name: "Spawn Ratios",
		Recommendations: []string{
			"Lower ratios (1:1, 1:2) provide faster colonization and less contamination risk.",
			"Higher ratios (1:4, 1:5) may provide better yields but increase contamination risk.",
		},
	},
	{
		Name: "Environment",
		Recommendations: []string{
			"Optimal temperature range is 65-80°F (18-27°C).",
			"Ensure proper field capacity (moisture content) in your substrate.",
			"Monitor pH levels (aim for 6.0–7.0).",
			"During colonization, CO2 levels can be high, but reduce during fruiting.",
		},
	},
	{
		Name: "Sterile Technique",
		Recommendations: []string{
			"Use a pressure cooker to properly sterilize grain spawn.",
			"Pasteurize bulk substrate to reduce competing organisms.",
			"Maintain cleanliness in your work area to prevent contamination.",
		},
	},
}

// genericRecommendations is the last-resort static set
var genericRecommendations = []string{
	"Maintain proper humidity levels during colonization.",
	"Ensure good air exchange during fruiting.",
	"Keep your workspace clean and sanitized.",
	"Monitor temperature to stay within the optimal range.",
	"Be patient and consistent with your cultivation practices.",
}

// RecommendationService produces personalized cultivation
// recommendations, preferring the LLM when configured and within
// budget and always degrading to the static sets
type RecommendationService interface {
	Personalized(ctx context.Context, input domain.CalculatorInput, forceRefresh bool) Recommendations
	ResetLimits()
}

type recommendationService struct {
	chat   ChatClient
	logger *zap.Logger

	mu           sync.Mutex
	limiter      *rate.Limiter
	requestCount int
	cached       *Recommendations
	lastHash     string
}

// NewRecommendationService creates a RecommendationService
func NewRecommendationService(chat ChatClient, logger *zap.Logger) RecommendationService {
	return &recommendationService{
		chat:    chat,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(minRequestInterval), 1),
	}
}

// ResetLimits clears the request budget, used when the user resets
// the calculator to defaults
func (s *recommendationService) ResetLimits() {
	s.mu.Lock()
	s.requestCount = 0
	s.limiter = rate.NewLimiter(rate.Every(minRequestInterval), 1)
	s.mu.Unlock()

	s.logger.Info("Recommendation request limits reset")
}

// Personalized returns recommendations for the given inputs. Results
// are cached until the inputs change; AI failures and exhausted
// budgets fall back to the static sets. Never errors to the caller.
func (s *recommendationService) Personalized(ctx context.Context, input domain.CalculatorInput, forceRefresh bool) Recommendations {
	hash := inputHash(input)

	s.mu.Lock()
	if !forceRefresh && s.cached != nil && hash == s.lastHash {
		cached := *s.cached
		s.mu.Unlock()
		s.logger.Debug("Using cached recommendations", zap.String("source", cached.Source))
		return cached
	}
	s.mu.Unlock()

	if !s.chat.Configured() {
		s.logger.Warn("No API key available, using static recommendations")
		recs := s.static(input)
		s.cache(hash, recs)
		return recs
	}

	if !s.allowRequest() {
		s.logger.Info("Request limits reached, using static recommendations",
			zap.Int("max_requests", maxAIRequests),
		)
		recs := s.static(input)
		recs.LimitReached = true
		return recs
	}

	recs, err := s.fromAI(ctx, input)
	if err != nil {
		s.logger.Error("Failed to generate AI recommendations", zap.Error(err))
		return s.static(input)
	}

	s.cache(hash, recs)
	return recs
}

// allowRequest enforces the request budget and minimum interval
func (s *recommendationService) allowRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.requestCount >= maxAIRequests {
		return false
	}
	if !s.limiter.Allow() {
		s.logger.Warn("Rate limit: too soon since last request")
		return false
	}
	s.requestCount++
	return true
}

func (s *recommendationService) cache(hash string, recs Recommendations) {
	s.mu.Lock()
	s.cached = &recs
	s.lastHash = hash
	s.mu.Unlock()
}

// fromAI asks the LLM for recommendations grounded on the training
// categories and parses the reply
func (s *recommendationService) fromAI(ctx context.Context, input domain.CalculatorInput) (Recommendations, error) {
	substrateLabel := "unknown"
	if substrate := domain.SubstrateTypeByID(input.SubstrateType); substrate != nil {
		substrateLabel = substrate.Label
	}
	levelLabel := "unknown"
	if level := domain.ExperienceLevelByID(input.ExperienceLevel); level != nil {
		levelLabel = level.Label
	}

	categoryNames := make([]string, 0, len(trainingCategories))
	var trainingBlocks []string
	for _, category := range trainingCategories {
		categoryNames = append(categoryNames, category.Name)
		trainingBlocks = append(trainingBlocks,
			fmt.Sprintf("Category: %s\n%s", category.Name, strings.Join(category.Recommendations, "\n")))
	}

	prompt := fmt.Sprintf(`I'm growing mushrooms with the following setup:
- Experience level: %s
- Spawn amount: %v quarts
- Substrate ratio: 1:%d
- Substrate type: %s
- Container size: %v quarts

Based on this information and the training data provided, give me 5 specific recommendations
for my cultivation setup. Format your response as a JSON array of strings, with each string
being a specific recommendation. Focus on the most relevant tips from the training data for my
specific setup.

Training data categories: %s`,
		levelLabel, input.SpawnAmount, input.SubstrateRatio, substrateLabel, input.ContainerSize,
		strings.Join(categoryNames, ", "))

	systemPrompt := fmt.Sprintf(`You are an expert mushroom cultivation advisor. Your task is to provide personalized
recommendations based on the user's cultivation setup and the following training data:

%s

Analyze the user's setup and provide the most relevant recommendations from the training data.
Your response should be a valid JSON array of strings, with each string being a specific recommendation.
Focus on providing actionable, specific advice that is directly relevant to the user's setup.`,
		strings.Join(trainingBlocks, "\n\n"))

	requestID := uuid.NewString()
	s.logger.Info("Requesting AI recommendations",
		zap.String("request_id", requestID),
		zap.String("experience_level", levelLabel),
		zap.String("substrate_type", substrateLabel),
	)

	completion, err := s.chat.SendMessage(ctx, prompt, openai.SendOptions{SystemPrompt: systemPrompt})
	if err != nil {
		return Recommendations{}, fmt.Errorf("requesting recommendations: %w", err)
	}

	items, err := parseRecommendations(completion.Response)
	if err != nil {
		return Recommendations{}, err
	}

	s.logger.Info("Finalized AI recommendations",
		zap.String("request_id", requestID),
		zap.Int("count", len(items)),
		zap.Int("total_tokens", completion.Usage.TotalTokens),
	)
	return Recommendations{Items: items, Source: "ai"}, nil
}

// static combines the experience level's recommendation list with the
// generic last-resort set when nothing matches
func (s *recommendationService) static(input domain.CalculatorInput) Recommendations {
	level := domain.ExperienceLevelByID(input.ExperienceLevel)
	if level == nil || len(level.Recommendations) == 0 {
		s.logger.Warn("No static recommendations found for user data",
			zap.String("experience_level", input.ExperienceLevel))
		return Recommendations{Items: genericRecommendations, Source: "static"}
	}
	return Recommendations{Items: level.Recommendations, Source: "static"}
}

// inputHash keys the cache on the fields that influence the output
func inputHash(input domain.CalculatorInput) string {
	data, _ := json.Marshal(input)
	return string(data)
}

var (
	numberedItem = regexp.MustCompile(`\d+\.\s*([^\n]+)`)
	bulletItem   = regexp.MustCompile(`[•*-]\s*([^\n]+)`)
)

// parseRecommendations accepts a JSON array reply, falling back to
// extracting numbered items, bullet items, and finally bare lines
func parseRecommendations(text string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return items, nil
	}

	for _, matches := range [][][]string{
		numberedItem.FindAllStringSubmatch(text, -1),
		bulletItem.FindAllStringSubmatch(text, -1),
	} {
		if len(matches) == 0 {
			continue
		}
		items = items[:0]
		for _, match := range matches {
			if item := strings.TrimSpace(match[1]); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "{") || strings.HasPrefix(line, "}") ||
			strings.HasPrefix(line, "[") || strings.HasPrefix(line, "]") {
			continue
		}
		items = append(items, line)
	}
	if len(items) == 0 {
		return nil, errors.New("no recommendations found in response")
	}
	return items, nil
}
