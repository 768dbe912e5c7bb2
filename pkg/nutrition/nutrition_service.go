package nutrition

import (
	"context"
	"math"
	"strings"
	"time"

	"usana-backend/domain"
)

// Mifflin-St Jeor activity multipliers.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

const defaultActivityMultiplier = 1.55

type (
	NutritionService interface {
		GetLocalFoods(ctx context.Context, season string, budget float64) []domain.LocalFood
		GetRecommendations(ctx context.Context) domain.NutritionRecommendations
		CalculateNeeds(ctx context.Context, req domain.CalculateNeedsRequest) domain.NutritionNeedsResponse
		GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) domain.MealPlanResponse
	}

	nutritionService struct {
		data *Dataset
	}
)

func NewNutritionService(data *Dataset) NutritionService {
	return &nutritionService{data: data}
}

// GetLocalFoods filters the catalog by maximum price and by season.
// Year-round foods match every season; season "all" (or none) disables
// the season filter.
func (s *nutritionService) GetLocalFoods(ctx context.Context, season string, budget float64) []domain.LocalFood {
	foods := make([]domain.LocalFood, 0, len(s.data.localFoods))
	for _, food := range s.data.localFoods {
		if budget > 0 && food.Price > budget {
			continue
		}
		if season != "" && season != "all" {
			inSeason := strings.Contains(strings.ToLower(food.Season), strings.ToLower(season)) ||
				food.Season == "Year-round"
			if !inSeason {
				continue
			}
		}
		foods = append(foods, food)
	}
	return foods
}

func (s *nutritionService) GetRecommendations(ctx context.Context) domain.NutritionRecommendations {
	return s.data.recommendations
}

// CalculateNeeds derives daily targets from the Mifflin-St Jeor basal
// metabolic rate: 50% of calories from carbs (4 kcal/g), 30% from fat
// (9 kcal/g), 0.8 g protein and 0.03 l water per kg body weight.
func (s *nutritionService) CalculateNeeds(ctx context.Context, req domain.CalculateNeedsRequest) domain.NutritionNeedsResponse {
	bmr := 10*req.Weight + 6.25*req.Height - 5*float64(req.Age)
	if req.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[req.ActivityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	tdee := bmr * multiplier

	return domain.NutritionNeedsResponse{
		BMR:  int(math.Round(bmr)),
		TDEE: int(math.Round(tdee)),
		Needs: domain.NutritionNeeds{
			Calories: int(math.Round(tdee)),
			Protein:  int(math.Round(req.Weight * 0.8)),
			Carbs:    int(math.Round(tdee * 0.5 / 4)),
			Fat:      int(math.Round(tdee * 0.3 / 9)),
			Fiber:    25,
			Water:    int(math.Round(req.Weight * 0.03)),
		},
	}
}

// GenerateMealPlan returns a copy of the sample plan stamped with the
// requesting user and their stated preferences. The dataset itself is
// never handed out.
func (s *nutritionService) GenerateMealPlan(ctx context.Context, req domain.GenerateMealPlanRequest, userID string) domain.MealPlanResponse {
	plan := s.data.sampleMealPlan
	plan.UserID = userID
	plan.GeneratedAt = time.Now()
	plan.Preferences = domain.MealPlanPreferences{
		HealthConditions:    req.HealthConditions,
		DietaryRestrictions: req.DietaryRestrictions,
		Budget:              req.Budget,
		Location:            req.Location,
	}
	return plan
}
