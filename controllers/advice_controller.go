package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

type AdviceController struct {
	advice *services.AdviceService
}

func NewAdviceController(a *services.AdviceService) *AdviceController {
	return &AdviceController{advice: a}
}

func (ac *AdviceController) Generate(c *gin.Context) {
	advice, err := ac.advice.GenerateForToday()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, advice)
}

func (ac *AdviceController) ByDate(c *gin.Context) {
	date, ok := dateOrToday(c, c.Param("date"))
	if !ok {
		return
	}
	list, err := ac.advice.ByDate(date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": list})
}

func (ac *AdviceController) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	list, err := ac.advice.Latest(limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": list})
}
