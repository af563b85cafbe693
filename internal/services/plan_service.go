package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/itinerary"
	"gezi/internal/models/response_models"
	"gezi/pkg/utils"
)

const (
	defaultPlanDays  = 3
	maxPlanDays      = 14
	maxPlanAttempts  = 3
	generatedChatTag = "gen-"
)

type PlanServiceInterface interface {
	// GeneratePlan asks the text generator for a plan, parses it and caches
	// it under a new chat id so it can be locked and exported.
	GeneratePlan(ctx context.Context, prompt string, days int) (*response_models.ItineraryResponse, error)
}

func NewPlanService(generator utils.TextGeneratorInterface, schedules ScheduleServiceInterface, logger *zap.Logger) PlanServiceInterface {
	return &PlanService{
		generator: generator,
		schedules: schedules,
		logger:    logger,
	}
}

type PlanService struct {
	generator utils.TextGeneratorInterface
	schedules ScheduleServiceInterface
	logger    *zap.Logger
}

func (p *PlanService) GeneratePlan(ctx context.Context, prompt string, days int) (*response_models.ItineraryResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt cannot be empty", utils.ErrInvalidInput)
	}
	days = planDays(prompt, days)

	for attempt := 1; attempt <= maxPlanAttempts; attempt++ {
		text, err := p.generator.Generate(ctx, buildPlanSystemPrompt(days, attempt), prompt)
		if errors.Is(err, utils.ErrGeneratorUnavailable) {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil {
			p.logger.Warn("Plan generation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		parsed := itinerary.ParsePlanText(utils.CleanPlanResponse(text))
		if len(parsed) == 0 {
			p.logger.Warn("Generated plan had no recognizable days",
				zap.Int("attempt", attempt), zap.Int("length", len(text)))
			continue
		}

		chatID := generatedChatTag + uuid.NewString()
		p.logger.Info("Generated plan",
			zap.String("chat_id", chatID),
			zap.Int("requested_days", days),
			zap.Int("days", len(parsed)),
			zap.Int("attempt", attempt))
		result := itinerary.Result{Days: parsed, Source: itinerary.SourceText}
		return p.schedules.Put(chatID, result, backend.TravelBlurbs{}), nil
	}

	return nil, fmt.Errorf("%w: no usable plan after %d attempts", utils.ErrUnexpectedBehaviorOfAI, maxPlanAttempts)
}

func planDays(prompt string, days int) int {
	if days <= 0 {
		days = extractDayCount(prompt)
	}
	if days <= 0 {
		days = defaultPlanDays
	}
	return min(days, maxPlanDays)
}

var writtenDayCounts = []struct {
	word   string
	suffix string
	count  int
}{
	{"one", " day", 1}, {"two", " day", 2}, {"three", " day", 3}, {"four", " day", 4}, {"five", " day", 5},
	{"six", " day", 6}, {"seven", " day", 7}, {"eight", " day", 8}, {"nine", " day", 9}, {"ten", " day", 10},
	{"bir", " gün", 1}, {"iki", " gün", 2}, {"üç", " gün", 3}, {"dört", " gün", 4}, {"beş", " gün", 5},
	{"altı", " gün", 6}, {"yedi", " gün", 7}, {"sekiz", " gün", 8}, {"dokuz", " gün", 9}, {"on", " gün", 10},
}

// extractDayCount finds a trip length in an English or Turkish prompt and
// returns 0 when there is none.
func extractDayCount(prompt string) int {
	lower := strings.ToLower(prompt)

	// Longest numbers first so "11 days" is not read as "1 days".
	for i := maxPlanDays; i >= 1; i-- {
		for _, pattern := range []string{"%d day", "%d-day", "%d gün", "%d-gün"} {
			if containsWord(lower, fmt.Sprintf(pattern, i)) {
				return i
			}
		}
	}

	for _, w := range writtenDayCounts {
		if containsWord(lower, w.word+w.suffix) || containsWord(lower, w.word+"-"+strings.TrimSpace(w.suffix)) {
			return w.count
		}
	}

	switch {
	case strings.Contains(lower, "weekend") || strings.Contains(lower, "hafta sonu"):
		return 2
	case strings.Contains(lower, "week") || strings.Contains(lower, "hafta"):
		return 7
	}
	return 0
}

// containsWord is strings.Contains that also requires sub to start a word,
// so "21 days" does not match "1 day" and "son gün" does not match "on gün".
func containsWord(s, sub string) bool {
	for i := 0; i <= len(s); {
		j := strings.Index(s[i:], sub)
		if j < 0 {
			return false
		}
		at := i + j
		if at == 0 || !isWordByte(s[at-1]) {
			return true
		}
		i = at + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= utf8.RuneSelf || b == '_' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

func buildPlanSystemPrompt(days, attempt int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a travel planner. Write a %d-day itinerary in Markdown.\n", days)
	b.WriteString("Use exactly this layout for every day:\n\n")
	b.WriteString("## Day N - <short theme>\n")
	b.WriteString("**Morning:**\n- <activity> at <Place Name>. <one sentence of detail>\n")
	b.WriteString("**Afternoon:**\n- <activity> at <Place Name>. <one sentence of detail>\n")
	b.WriteString("**Evening:**\n- <activity> at <Place Name>. <one sentence of detail>\n\n")
	b.WriteString("If the traveler writes in Turkish, answer in Turkish and use **Sabah:**, **Öğle:** and **Akşam:** as the slot labels.\n")
	if attempt > 1 {
		fmt.Fprintf(&b, "IMPORTANT: your previous answer could not be read. Output exactly %d day headers that start with \"## Day \", ", days)
		b.WriteString("bullet lines that start with \"- \", and nothing else. No tables, no code fences, no introduction.\n")
	}
	return b.String()
}
