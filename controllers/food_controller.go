package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/catalog"
)

// SearchFoods serves the static food catalog, optionally filtered with ?q=.
func SearchFoods(c *gin.Context) {
	foods := catalog.SearchFoods(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func GetFood(c *gin.Context) {
	food, ok := catalog.FindFood(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

func GetFoodByBarcode(c *gin.Context) {
	food, ok := catalog.FindFoodByBarcode(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no food matches that barcode"})
		return
	}
	c.JSON(http.StatusOK, food)
}
