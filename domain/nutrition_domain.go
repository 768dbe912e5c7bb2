package domain

import "time"

var (
	MessageSuccessGetLocalFoods    = "local foods retrieved successfully"
	MessageSuccessGetNutritionRecs = "nutrition recommendations retrieved successfully"
	MessageSuccessCalculateNeeds   = "nutrition needs calculated successfully"
	MessageSuccessGenerateMealPlan = "meal plan generated successfully"

	MessageFailedGetLocalFoods    = "failed to retrieve local foods"
	MessageFailedCalculateNeeds   = "failed to calculate nutrition needs"
	MessageFailedGenerateMealPlan = "failed to generate meal plan"
)

type (
	LocalFood struct {
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Season    string  `json:"season"`
		Nutrition string  `json:"nutrition"`
	}

	Meal struct {
		Name        string   `json:"name"`
		Calories    int      `json:"calories"`
		Cost        float64  `json:"cost"`
		Ingredients []string `json:"ingredients"`
		Nutrition   string   `json:"nutrition"`
	}

	MealSet struct {
		Breakfast Meal `json:"breakfast"`
		Lunch     Meal `json:"lunch"`
		Dinner    Meal `json:"dinner"`
		Snacks    Meal `json:"snacks"`
	}

	MealPlanPreferences struct {
		HealthConditions    []string `json:"health_conditions,omitempty"`
		DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
		Budget              float64  `json:"budget,omitempty"`
		Location            string   `json:"location,omitempty"`
	}

	GenerateMealPlanRequest struct {
		Age                 int      `json:"age" validate:"omitempty,gt=0"`
		Weight              float64  `json:"weight" validate:"omitempty,gt=0"`
		Height              float64  `json:"height" validate:"omitempty,gt=0"`
		ActivityLevel       string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very-active"`
		HealthConditions    []string `json:"health_conditions" validate:"omitempty"`
		DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty"`
		Budget              float64  `json:"budget" validate:"omitempty,gt=0"`
		Location            string   `json:"location" validate:"omitempty"`
	}

	MealPlanResponse struct {
		UserID        string              `json:"user_id"`
		DailyCalories int                 `json:"daily_calories"`
		DailyCost     float64             `json:"daily_cost"`
		Meals         MealSet             `json:"meals"`
		Preferences   MealPlanPreferences `json:"preferences"`
		GeneratedAt   time.Time           `json:"generated_at"`
	}

	CalculateNeedsRequest struct {
		Age           int     `json:"age" validate:"required,gt=0"`
		Weight        float64 `json:"weight" validate:"required,gt=0"`
		Height        float64 `json:"height" validate:"required,gt=0"`
		ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very-active"`
		Gender        string  `json:"gender" validate:"required,oneof=male female"`
	}

	NutritionNeeds struct {
		Calories int `json:"calories"`
		Protein  int `json:"protein"` // grams
		Carbs    int `json:"carbs"`   // grams
		Fat      int `json:"fat"`     // grams
		Fiber    int `json:"fiber"`   // grams
		Water    int `json:"water"`   // liters
	}

	NutritionNeedsResponse struct {
		BMR   int            `json:"bmr"`
		TDEE  int            `json:"tdee"`
		Needs NutritionNeeds `json:"nutrition_needs"`
	}

	NutritionRecommendations struct {
		General  []string `json:"general"`
		Seasonal []string `json:"seasonal"`
		Budget   []string `json:"budget"`
	}
)
