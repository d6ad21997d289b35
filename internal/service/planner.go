package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

// PlannerService assembles multi-day meal plans by generating one meal
// per slot through the LLM transport.
type PlannerService struct {
	llm LLMClient
}

// NewPlannerService creates a PlannerService on top of the given
// transport.
func NewPlannerService(llm LLMClient) *PlannerService {
	return &PlannerService{llm: llm}
}

// GenerateMealPlan builds a plan of numDays days with Breakfast, Lunch
// and Dinner each. When mealPrep is set, one Lunch is generated up
// front and reused verbatim for every day, saving numDays-1 calls.
//
// A failed generation never aborts the plan: the affected slot gets
// the fallback placeholder and the loop continues. Days are produced
// in ascending order, slots in Breakfast, Lunch, Dinner order.
func (s *PlannerService) GenerateMealPlan(ctx context.Context, profile models.Profile, targets models.Targets, numDays int, mealPrep bool) models.MealPlan {
	budget := BudgetPerMeal(targets)

	var preppedLunch *models.Meal
	if mealPrep {
		lunch := s.generateMeal(ctx, models.SlotLunch, budget, profile.DietaryRestrictions)
		preppedLunch = &lunch
	}

	plan := make(models.MealPlan, numDays)
	for day := 1; day <= numDays; day++ {
		meals := make(map[models.MealSlot]models.Meal, mealsPerDay)
		for _, slot := range models.MealSlots {
			if slot == models.SlotLunch && preppedLunch != nil {
				meals[slot] = *preppedLunch
				continue
			}
			meals[slot] = s.generateMeal(ctx, slot, budget, profile.DietaryRestrictions)
		}
		plan[fmt.Sprintf("Day %d", day)] = meals
	}

	return plan
}

func (s *PlannerService) generateMeal(ctx context.Context, slot models.MealSlot, budget MealBudget, restrictions []string) models.Meal {
	prompt := BuildMealPrompt(slot, budget, restrictions)

	raw, err := s.llm.Complete(ctx, mealSystemPrompt, prompt)
	if err != nil {
		log.Printf("failed to generate %s: %v", slot, err)
		return models.FallbackMeal()
	}

	return ParseMeal(raw)
}
