package nutrition

import "usana-backend/domain"

// Dataset holds the nutrition reference data. Like the insight dataset it
// is built once at startup and read only afterwards; meal plans derived
// from it are copies.
type Dataset struct {
	localFoods      []domain.LocalFood
	sampleMealPlan  domain.MealPlanResponse
	recommendations domain.NutritionRecommendations
}

func NewDataset() *Dataset {
	return &Dataset{
		localFoods:      localFoodCatalog(),
		sampleMealPlan:  sampleMealPlan(),
		recommendations: nutritionRecommendations(),
	}
}

func localFoodCatalog() []domain.LocalFood {
	return []domain.LocalFood{
		{Name: "Spinach", Price: 50, Season: "Year-round", Nutrition: "Iron, Vitamin K, Folate"},
		{Name: "Sweet Potatoes", Price: 150, Season: "Fall-Winter", Nutrition: "Vitamin A, Fiber, Potassium"},
		{Name: "Lentils", Price: 140, Season: "Year-round", Nutrition: "Protein, Fiber, Iron"},
		{Name: "Bananas", Price: 20, Season: "Year-round", Nutrition: "Potassium, Vitamin B6"},
		{Name: "Brown Rice", Price: 130, Season: "Year-round", Nutrition: "Carbs, B Vitamins, Selenium"},
		{Name: "Chicken Breast", Price: 300, Season: "Year-round", Nutrition: "Protein, Niacin, Selenium"},
		{Name: "Broccoli", Price: 80, Season: "Spring-Fall", Nutrition: "Vitamin C, Vitamin K, Fiber"},
		{Name: "Apples", Price: 60, Season: "Fall", Nutrition: "Fiber, Vitamin C, Antioxidants"},
	}
}

func sampleMealPlan() domain.MealPlanResponse {
	return domain.MealPlanResponse{
		DailyCalories: 2000,
		DailyCost:     930,
		Meals: domain.MealSet{
			Breakfast: domain.Meal{
				Name:        "Oatmeal with Banana and Nuts",
				Calories:    350,
				Cost:        180,
				Ingredients: []string{"Oats", "Banana", "Walnuts", "Cinnamon"},
				Nutrition:   "High fiber, Potassium, Healthy fats",
			},
			Lunch: domain.Meal{
				Name:        "Lentil and Spinach Curry with Rice",
				Calories:    450,
				Cost:        200,
				Ingredients: []string{"Red Lentils", "Spinach", "Brown Rice", "Spices"},
				Nutrition:   "Protein, Iron, Folate, Complex carbs",
			},
			Dinner: domain.Meal{
				Name:        "Grilled Chicken with Sweet Potato",
				Calories:    500,
				Cost:        400,
				Ingredients: []string{"Chicken Breast", "Sweet Potato", "Broccoli"},
				Nutrition:   "Lean protein, Vitamin A, Vitamin C",
			},
			Snacks: domain.Meal{
				Name:        "Apple with Peanut Butter",
				Calories:    200,
				Cost:        150,
				Ingredients: []string{"Apple", "Natural Peanut Butter"},
				Nutrition:   "Fiber, Healthy fats, Protein",
			},
		},
	}
}

func nutritionRecommendations() domain.NutritionRecommendations {
	return domain.NutritionRecommendations{
		General: []string{
			"Aim for 5-9 servings of fruits and vegetables daily",
			"Choose whole grains over refined grains",
			"Include lean proteins in every meal",
			"Stay hydrated with at least 8 glasses of water daily",
			"Limit processed foods and added sugars",
		},
		Seasonal: []string{
			"Take advantage of seasonal produce for better nutrition and lower prices",
			"Store seasonal items properly to maintain nutritional value",
			"Try new seasonal recipes to keep meals interesting",
		},
		Budget: []string{
			"Buy in bulk for staple items like rice and beans",
			"Choose frozen vegetables when fresh are expensive",
			"Plan meals around sales and seasonal availability",
			"Cook larger batches and freeze portions for later",
		},
	}
}
