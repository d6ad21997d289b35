package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

// stubLLM drives the pipeline in tests without a real transport.
type stubLLM struct {
	complete func(ctx context.Context, system, prompt string) (string, error)
	calls    int
}

func (s *stubLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	s.calls++
	return s.complete(ctx, system, prompt)
}

// countingLLM returns a distinct valid meal per call.
func countingLLM() *stubLLM {
	stub := &stubLLM{}
	stub.complete = func(ctx context.Context, system, prompt string) (string, error) {
		return fmt.Sprintf(`{"meal_name":"Meal %d","ingredients":[{"name":"food","quantity":"1"}],"instructions":"cook","calories":500,"protein":30,"fat":15,"carbohydrates":60}`, stub.calls), nil
	}
	return stub
}

func testTargets() models.Targets {
	return models.Targets{Calories: 2030, Protein: 128, Fat: 56, Carbohydrates: 254}
}

func TestGenerateMealPlan(t *testing.T) {
	profile := models.Profile{DietaryRestrictions: []string{"Vegetarian"}}

	t.Run("covers every day and slot", func(t *testing.T) {
		stub := countingLLM()
		planner := NewPlannerService(stub)

		plan := planner.GenerateMealPlan(context.Background(), profile, testTargets(), 3, false)

		require.Len(t, plan, 3)
		for day := 1; day <= 3; day++ {
			meals, ok := plan[fmt.Sprintf("Day %d", day)]
			require.True(t, ok, "missing day %d", day)
			require.Len(t, meals, 3)
			for _, slot := range models.MealSlots {
				assert.Contains(t, meals, slot)
			}
		}
		assert.Equal(t, 9, stub.calls)
	})

	t.Run("meal prep reuses one lunch across all days", func(t *testing.T) {
		stub := countingLLM()
		planner := NewPlannerService(stub)

		plan := planner.GenerateMealPlan(context.Background(), profile, testTargets(), 3, true)

		require.Len(t, plan, 3)
		lunch := plan["Day 1"][models.SlotLunch]
		assert.Equal(t, lunch, plan["Day 2"][models.SlotLunch])
		assert.Equal(t, lunch, plan["Day 3"][models.SlotLunch])
		// One up-front lunch plus breakfast and dinner per day.
		assert.Equal(t, 7, stub.calls)
	})

	t.Run("lunches differ without meal prep", func(t *testing.T) {
		planner := NewPlannerService(countingLLM())

		plan := planner.GenerateMealPlan(context.Background(), profile, testTargets(), 2, false)

		assert.NotEqual(t, plan["Day 1"][models.SlotLunch], plan["Day 2"][models.SlotLunch])
	})

	t.Run("failing transport degrades every slot to the fallback", func(t *testing.T) {
		stub := &stubLLM{complete: func(ctx context.Context, system, prompt string) (string, error) {
			return "", fmt.Errorf("transport is down")
		}}
		planner := NewPlannerService(stub)

		plan := planner.GenerateMealPlan(context.Background(), profile, testTargets(), 2, false)

		require.Len(t, plan, 2)
		for _, meals := range plan {
			for _, slot := range models.MealSlots {
				assert.True(t, meals[slot].IsFallback())
			}
		}
	})

	t.Run("malformed output degrades only that slot", func(t *testing.T) {
		stub := &stubLLM{}
		stub.complete = func(ctx context.Context, system, prompt string) (string, error) {
			if stub.calls == 1 {
				return "not json", nil
			}
			return `{"meal_name":"Good Meal","ingredients":[],"instructions":"cook","calories":500,"protein":30,"fat":15,"carbohydrates":60}`, nil
		}
		planner := NewPlannerService(stub)

		plan := planner.GenerateMealPlan(context.Background(), profile, testTargets(), 1, false)

		assert.True(t, plan["Day 1"][models.SlotBreakfast].IsFallback())
		assert.False(t, plan["Day 1"][models.SlotLunch].IsFallback())
		assert.False(t, plan["Day 1"][models.SlotDinner].IsFallback())
	})
}
