package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
	"github.com/yuichi-nagakura/diet-app-prototype/services"
	"github.com/yuichi-nagakura/diet-app-prototype/utils"
)

type ProfileController struct {
	progress *services.ProgressService
}

func NewProfileController(p *services.ProgressService) *ProfileController {
	return &ProfileController{progress: p}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, found, err := pc.progress.Profile()
	if err != nil {
		respondErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved yet"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := pc.progress.SaveProfile(profile); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

// GetTargets exposes the pure target calculation for the stored profile.
func (pc *ProfileController) GetTargets(c *gin.Context) {
	profile, found, err := pc.progress.Profile()
	if err != nil {
		respondErr(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile saved yet"})
		return
	}
	targets, err := services.ComputeTargets(profile)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"targets": targets})
}

func profileResponse(profile models.UserProfile) gin.H {
	resp := gin.H{"profile": profile}
	if targets, err := services.ComputeTargets(profile); err == nil {
		resp["targets"] = targets
	}
	if bmi, err := utils.CalculateBMI(profile.Height, profile.CurrentWeight); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	return resp
}
