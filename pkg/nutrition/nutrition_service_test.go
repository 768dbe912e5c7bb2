package nutrition

import (
	"context"
	"testing"
	"time"

	"usana-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNutritionService() NutritionService {
	return NewNutritionService(NewDataset())
}

func foodNames(foods []domain.LocalFood) []string {
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}
	return names
}

func TestGetLocalFoodsUnfiltered(t *testing.T) {
	service := newTestNutritionService()

	foods := service.GetLocalFoods(context.Background(), "", 0)
	assert.Len(t, foods, 8)

	// "all" disables the season filter too
	foods = service.GetLocalFoods(context.Background(), "all", 0)
	assert.Len(t, foods, 8)
}

func TestGetLocalFoodsBudgetFilter(t *testing.T) {
	service := newTestNutritionService()

	foods := service.GetLocalFoods(context.Background(), "", 100)
	assert.ElementsMatch(t, []string{"Spinach", "Bananas", "Broccoli", "Apples"}, foodNames(foods))
}

func TestGetLocalFoodsSeasonFilter(t *testing.T) {
	service := newTestNutritionService()

	// year-round foods always qualify
	foods := service.GetLocalFoods(context.Background(), "spring", 0)
	assert.ElementsMatch(t, []string{
		"Spinach", "Lentils", "Bananas", "Brown Rice", "Chicken Breast", "Broccoli",
	}, foodNames(foods))

	foods = service.GetLocalFoods(context.Background(), "spring", 100)
	assert.ElementsMatch(t, []string{"Spinach", "Bananas", "Broccoli"}, foodNames(foods))
}

func TestCalculateNeeds(t *testing.T) {
	service := newTestNutritionService()

	res := service.CalculateNeeds(context.Background(), domain.CalculateNeedsRequest{
		Age:           30,
		Weight:        70,
		Height:        175,
		ActivityLevel: "moderate",
		Gender:        "male",
	})

	assert.Equal(t, 1649, res.BMR)
	assert.Equal(t, 2556, res.TDEE)
	assert.Equal(t, 2556, res.Needs.Calories)
	assert.Equal(t, 56, res.Needs.Protein)
	assert.Equal(t, 319, res.Needs.Carbs)
	assert.Equal(t, 85, res.Needs.Fat)
	assert.Equal(t, 25, res.Needs.Fiber)
	assert.Equal(t, 2, res.Needs.Water)
}

func TestCalculateNeedsFemaleOffset(t *testing.T) {
	service := newTestNutritionService()

	res := service.CalculateNeeds(context.Background(), domain.CalculateNeedsRequest{
		Age:           30,
		Weight:        70,
		Height:        175,
		ActivityLevel: "moderate",
		Gender:        "female",
	})

	assert.Equal(t, 1483, res.BMR)
	assert.Equal(t, 2298, res.TDEE)
}

func TestCalculateNeedsUnknownActivityFallsBackToModerate(t *testing.T) {
	service := newTestNutritionService()

	req := domain.CalculateNeedsRequest{Age: 30, Weight: 70, Height: 175, Gender: "male"}

	req.ActivityLevel = "couch"
	fallback := service.CalculateNeeds(context.Background(), req)

	req.ActivityLevel = "moderate"
	moderate := service.CalculateNeeds(context.Background(), req)

	assert.Equal(t, moderate.TDEE, fallback.TDEE)
}

func TestGenerateMealPlan(t *testing.T) {
	service := newTestNutritionService()
	userID := uuid.New().String()

	plan := service.GenerateMealPlan(context.Background(), domain.GenerateMealPlanRequest{
		DietaryRestrictions: []string{"vegetarian"},
		Budget:              1000,
		Location:            "Nairobi",
	}, userID)

	assert.Equal(t, userID, plan.UserID)
	assert.Equal(t, 2000, plan.DailyCalories)
	assert.Equal(t, float64(930), plan.DailyCost)
	assert.Equal(t, "Oatmeal with Banana and Nuts", plan.Meals.Breakfast.Name)
	assert.Equal(t, []string{"vegetarian"}, plan.Preferences.DietaryRestrictions)
	assert.Equal(t, float64(1000), plan.Preferences.Budget)
	assert.WithinDuration(t, time.Now(), plan.GeneratedAt, time.Minute)
}

func TestGetRecommendations(t *testing.T) {
	service := newTestNutritionService()

	recs := service.GetRecommendations(context.Background())
	require.Len(t, recs.General, 5)
	assert.NotEmpty(t, recs.Seasonal)
	assert.NotEmpty(t, recs.Budget)
}
