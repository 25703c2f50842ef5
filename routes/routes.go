package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/controllers"
	"github.com/yuichi-nagakura/diet-app-prototype/middlewares"
	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

// Deps are the constructed services the router wires into controllers.
type Deps struct {
	Progress     *services.ProgressService
	Achievements *services.AchievementService
	Lessons      *services.LessonService
	Advice       *services.AdviceService
	Hub          *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.WriteLock())

	mealCtl := controllers.NewMealController(d.Progress, d.Achievements)
	progressCtl := controllers.NewProgressController(d.Progress)
	profileCtl := controllers.NewProfileController(d.Progress)
	achievementCtl := controllers.NewAchievementController(d.Achievements)
	lessonCtl := controllers.NewLessonController(d.Lessons)
	adviceCtl := controllers.NewAdviceController(d.Advice)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	foods := r.Group("/foods")
	{
		foods.GET("", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
		foods.GET("/barcode/:code", controllers.GetFoodByBarcode)
	}

	meals := r.Group("/meals")
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
	}

	progress := r.Group("/progress")
	{
		progress.GET("", progressCtl.GetAll)
		progress.GET("/weekly", progressCtl.GetWeekly)
		progress.GET("/streak", progressCtl.GetStreak)
		progress.POST("/weight", progressCtl.RecordWeight)
		progress.GET("/:date", progressCtl.GetByDate)
	}

	profile := r.Group("/profile")
	{
		profile.GET("", profileCtl.GetProfile)
		profile.PUT("", profileCtl.UpdateProfile)
		profile.GET("/targets", profileCtl.GetTargets)
	}

	achievements := r.Group("/achievements")
	{
		achievements.GET("", achievementCtl.List)
		achievements.GET("/stats", achievementCtl.GetStats)
	}

	lessons := r.Group("/lessons")
	{
		lessons.GET("", lessonCtl.List)
		lessons.GET("/next", lessonCtl.Next)
		lessons.POST("/:id/complete", lessonCtl.Complete)
	}

	advice := r.Group("/advice")
	{
		advice.GET("", adviceCtl.Latest)
		advice.GET("/:date", adviceCtl.ByDate)
		advice.POST("/generate", adviceCtl.Generate)
	}

	r.GET("/ws/events", realtimeCtl.EventsWS)

	return r
}
