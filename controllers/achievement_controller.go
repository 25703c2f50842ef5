package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

type AchievementController struct {
	achievements *services.AchievementService
}

func NewAchievementController(a *services.AchievementService) *AchievementController {
	return &AchievementController{achievements: a}
}

// List re-evaluates the catalog against the live statistics. Evaluation is
// idempotent, so serving a GET through it is safe.
func (ac *AchievementController) List(c *gin.Context) {
	anchor, ok := dateOrToday(c, c.Query("anchor"))
	if !ok {
		return
	}
	statuses, err := ac.achievements.Evaluate(anchor)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": statuses})
}

func (ac *AchievementController) GetStats(c *gin.Context) {
	anchor, ok := dateOrToday(c, c.Query("anchor"))
	if !ok {
		return
	}
	stats, err := ac.achievements.ComputeStats(anchor)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
