package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/catalog"
	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

type MealController struct {
	progress     *services.ProgressService
	achievements *services.AchievementService
}

func NewMealController(p *services.ProgressService, a *services.AchievementService) *MealController {
	return &MealController{progress: p, achievements: a}
}

type mealFoodRequest struct {
	FoodID   string  `json:"food_id"`
	Quantity float64 `json:"quantity"`
}

type logMealRequest struct {
	Date     string            `json:"date"` // YYYY-MM-DD, empty = today
	MealType models.MealSlot   `json:"meal_type"`
	Foods    []mealFoodRequest `json:"foods"`
}

// LogMeal records one meal: resolves catalog foods, aggregates nutrition and
// upserts the day's progress record. Achievements are re-evaluated right
// after so streak and milestone unlocks land immediately.
func (mc *MealController) LogMeal(c *gin.Context) {
	var body logMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := dateOrToday(c, body.Date)
	if !ok {
		return
	}

	entries := make([]models.FoodConsumptionEntry, 0, len(body.Foods))
	for _, f := range body.Foods {
		item, found := catalog.FindFood(f.FoodID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown food " + f.FoodID})
			return
		}
		entries = append(entries, models.FoodConsumptionEntry{
			FoodItem: item,
			Quantity: f.Quantity,
			Unit:     item.Serving.Unit,
		})
	}

	meal, err := mc.progress.RecordMeal(date, body.MealType, entries)
	if err != nil {
		respondErr(c, err)
		return
	}

	if _, err := mc.achievements.Evaluate(date); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns the meals of one day (?date=, default today).
func (mc *MealController) ListMeals(c *gin.Context) {
	date, ok := dateOrToday(c, c.Query("date"))
	if !ok {
		return
	}
	day, found, err := mc.progress.GetByDate(date)
	if err != nil {
		respondErr(c, err)
		return
	}
	meals := []models.MealRecord{}
	if found {
		meals = day.Meals
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "meals": meals})
}
