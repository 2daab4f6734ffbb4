package mealplan

import "Technically-Fit-Backend/domain"

// mealTemplates is a fixed candidate lookup per meal type. This is a
// deliberately simple stand-in for real food selection: each slot is filled
// from a small rotating list of template combos with literal nutrition
// values. A real recommender would select against the slot targets.
var mealTemplates = map[string][][]domain.MealFood{
	domain.MealTypeBreakfast: {
		{
			{FoodID: "tpl-oatmeal", Name: "Oatmeal with Berries", ServingGrams: 280, Nutrition: domain.NutritionInfo{Calories: 340, Protein: 12, Carbs: 58, Fat: 7, Fiber: 9, Sugar: 14, SodiumMg: 105}},
			{FoodID: "tpl-boiled-eggs", Name: "Boiled Eggs (2)", ServingGrams: 100, Nutrition: domain.NutritionInfo{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sugar: 1.1, SodiumMg: 124}},
		},
		{
			{FoodID: "tpl-greek-parfait", Name: "Greek Yogurt Parfait", ServingGrams: 300, Nutrition: domain.NutritionInfo{Calories: 310, Protein: 22, Carbs: 41, Fat: 6, Fiber: 4, Sugar: 24, SodiumMg: 95}},
		},
		{
			{FoodID: "tpl-veggie-omelette", Name: "Veggie Omelette", ServingGrams: 220, Nutrition: domain.NutritionInfo{Calories: 290, Protein: 19, Carbs: 8, Fat: 20, Fiber: 2, Sugar: 4, SodiumMg: 390}},
			{FoodID: "tpl-wholegrain-toast", Name: "Wholegrain Toast", ServingGrams: 70, Nutrition: domain.NutritionInfo{Calories: 170, Protein: 7, Carbs: 30, Fat: 2.5, Fiber: 5, Sugar: 3.5, SodiumMg: 290}},
		},
	},
	domain.MealTypeLunch: {
		{
			{FoodID: "tpl-chicken-bowl", Name: "Grilled Chicken Rice Bowl", ServingGrams: 420, Nutrition: domain.NutritionInfo{Calories: 560, Protein: 42, Carbs: 62, Fat: 14, Fiber: 5, Sugar: 6, SodiumMg: 620}},
		},
		{
			{FoodID: "tpl-salmon-quinoa", Name: "Salmon Quinoa Salad", ServingGrams: 380, Nutrition: domain.NutritionInfo{Calories: 520, Protein: 35, Carbs: 44, Fat: 22, Fiber: 7, Sugar: 5, SodiumMg: 480}},
		},
		{
			{FoodID: "tpl-turkey-wrap", Name: "Turkey Avocado Wrap", ServingGrams: 320, Nutrition: domain.NutritionInfo{Calories: 480, Protein: 32, Carbs: 48, Fat: 18, Fiber: 8, Sugar: 4, SodiumMg: 780}},
			{FoodID: "tpl-apple", Name: "Apple", ServingGrams: 180, Nutrition: domain.NutritionInfo{Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, Sugar: 19, SodiumMg: 2}},
		},
	},
	domain.MealTypeDinner: {
		{
			{FoodID: "tpl-beef-stirfry", Name: "Lean Beef Stir-Fry", ServingGrams: 400, Nutrition: domain.NutritionInfo{Calories: 540, Protein: 38, Carbs: 45, Fat: 22, Fiber: 6, Sugar: 9, SodiumMg: 850}},
		},
		{
			{FoodID: "tpl-baked-cod", Name: "Baked Cod", ServingGrams: 200, Nutrition: domain.NutritionInfo{Calories: 210, Protein: 36, Carbs: 0, Fat: 6, Fiber: 0, Sugar: 0, SodiumMg: 320}},
			{FoodID: "tpl-sweet-potato", Name: "Roasted Sweet Potato", ServingGrams: 250, Nutrition: domain.NutritionInfo{Calories: 225, Protein: 4, Carbs: 52, Fat: 0.3, Fiber: 8, Sugar: 11, SodiumMg: 90}},
		},
		{
			{FoodID: "tpl-chicken-pasta", Name: "Chicken Pasta Primavera", ServingGrams: 430, Nutrition: domain.NutritionInfo{Calories: 580, Protein: 40, Carbs: 64, Fat: 16, Fiber: 6, Sugar: 8, SodiumMg: 640}},
		},
	},
	domain.MealTypeSnack: {
		{
			{FoodID: "tpl-protein-shake", Name: "Whey Protein Shake", ServingGrams: 350, Nutrition: domain.NutritionInfo{Calories: 180, Protein: 26, Carbs: 9, Fat: 3.5, Fiber: 1, Sugar: 4, SodiumMg: 140}},
		},
		{
			{FoodID: "tpl-trail-mix", Name: "Trail Mix", ServingGrams: 45, Nutrition: domain.NutritionInfo{Calories: 210, Protein: 6, Carbs: 20, Fat: 13, Fiber: 3, Sugar: 12, SodiumMg: 55}},
		},
		{
			{FoodID: "tpl-cottage-fruit", Name: "Cottage Cheese with Fruit", ServingGrams: 220, Nutrition: domain.NutritionInfo{Calories: 190, Protein: 20, Carbs: 18, Fat: 4.5, Fiber: 2, Sugar: 14, SodiumMg: 420}},
		},
	},
}

// templateFor returns a copy of the candidate combo for a slot, rotating by
// day and slot index so consecutive days stay deterministic but varied.
func templateFor(mealType string, dayNumber, slotIndex int) []domain.MealFood {
	candidates := mealTemplates[mealType]
	if len(candidates) == 0 {
		return nil
	}
	combo := candidates[(dayNumber-1+slotIndex)%len(candidates)]
	foods := make([]domain.MealFood, len(combo))
	copy(foods, combo)
	return foods
}
