package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

const analysisSystemPrompt = "You are a highly skilled nutritionist. The user will provide " +
	"a description of a food item or meal they consumed. Analyze the meal with respect to " +
	"its nutritional content, healthiness, and alignment with the user's goals."

const coachApology = "Sorry, I encountered an error while processing your request."

// CoachService implements the stateless dialogue helpers: food-entry
// analysis and free-text coaching. Both degrade to fallback values
// instead of returning errors.
type CoachService struct {
	llm LLMClient
}

// NewCoachService creates a CoachService on top of the given transport.
func NewCoachService(llm LLMClient) *CoachService {
	return &CoachService{llm: llm}
}

// AnalyzeFoodEntry asks the model to assess a logged food item against
// the user's goal. On transport failure or malformed output it returns
// the fallback analysis.
func (s *CoachService) AnalyzeFoodEntry(ctx context.Context, profile models.Profile, foodEntry string) models.Analysis {
	goal := profile.Goal
	if goal == "" {
		goal = models.GoalMaintenance
	}

	prompt := fmt.Sprintf(`Analyze the following meal/food entry in the context of a user whose goal is '%s'.
User's food entry: %q

Respond in JSON with:
- "analysis": a brief analysis of whether this is healthy and how it fits the user's goal (string)
- "recommendations": suggestions on how to modify or improve the meal (array of strings)
`, goal, foodEntry)

	raw, err := s.llm.Complete(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		log.Printf("failed to analyze food entry: %v", err)
		return models.FallbackAnalysis()
	}

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		log.Printf("failed to parse food analysis: %v", err)
		return models.FallbackAnalysis()
	}
	if analysis.Recommendations == nil {
		analysis.Recommendations = []string{}
	}

	return analysis
}

// CoachReply forwards a user's message to the model with the full
// profile as system context and returns the raw text reply. Only the
// latest message is sent; prior chat turns are stored for display but
// not replayed to the model. On failure it returns a fixed apology.
func (s *CoachService) CoachReply(ctx context.Context, profile models.Profile, message string) string {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		log.Printf("failed to marshal profile for coach context: %v", err)
		return coachApology
	}

	system := fmt.Sprintf("You are a helpful AI nutrition coach. You have access to the "+
		"user's profile data: %s Be informative, motivational, and accurate in your responses.",
		string(profileJSON))

	reply, err := s.llm.Complete(ctx, system, message)
	if err != nil {
		log.Printf("failed to get coach response: %v", err)
		return coachApology
	}

	return reply
}
