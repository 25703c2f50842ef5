package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(p *services.ProgressService) *ProgressController {
	return &ProgressController{progress: p}
}

func (pc *ProgressController) GetAll(c *gin.Context) {
	records, err := pc.progress.GetAll()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": records})
}

func (pc *ProgressController) GetByDate(c *gin.Context) {
	date, ok := dateOrToday(c, c.Param("date"))
	if !ok {
		return
	}
	rec, found, err := pc.progress.GetByDate(date)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no record for " + date.String()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetWeekly returns the 7-day window ending at ?end= (default today).
func (pc *ProgressController) GetWeekly(c *gin.Context) {
	end, ok := dateOrToday(c, c.Query("end"))
	if !ok {
		return
	}
	records, err := pc.progress.WeeklyProgress(end)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"end": end, "progress": records})
}

func (pc *ProgressController) RecordWeight(c *gin.Context) {
	var body struct {
		Date   string  `json:"date"`
		Weight float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, ok := dateOrToday(c, body.Date)
	if !ok {
		return
	}
	if err := pc.progress.RecordWeight(date, body.Weight); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStreak reports the current and longest meal-logging streaks.
func (pc *ProgressController) GetStreak(c *gin.Context) {
	anchor, ok := dateOrToday(c, c.Query("anchor"))
	if !ok {
		return
	}
	current, err := pc.progress.CurrentStreak(anchor)
	if err != nil {
		respondErr(c, err)
		return
	}
	longest, err := pc.progress.LongestStreak()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_streak": current, "longest_streak": longest})
}
