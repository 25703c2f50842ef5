package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

// respondErr maps core errors onto HTTP statuses: malformed input is the
// caller's fault, everything else (store failures included) is ours.
func respondErr(c *gin.Context, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// dateOrToday parses an optional YYYY-MM-DD query/path value, defaulting to
// today. The bool return is false when the value was present but malformed
// (a 400 has already been written).
func dateOrToday(c *gin.Context, raw string) (models.Date, bool) {
	if raw == "" {
		return models.Today(), true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Date{}, false
	}
	return d, true
}
