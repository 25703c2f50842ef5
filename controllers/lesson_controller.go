package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

type LessonController struct {
	lessons *services.LessonService
}

func NewLessonController(l *services.LessonService) *LessonController {
	return &LessonController{lessons: l}
}

func (lc *LessonController) List(c *gin.Context) {
	lessons, err := lc.lessons.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

func (lc *LessonController) Next(c *gin.Context) {
	lesson, found, err := lc.lessons.Next()
	if err != nil {
		respondErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"lesson": nil, "all_completed": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": lesson, "all_completed": false})
}

func (lc *LessonController) Complete(c *gin.Context) {
	lesson, err := lc.lessons.Complete(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, lesson)
}
