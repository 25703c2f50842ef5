package services

import (
	"errors"
	"time"

	"github.com/yuichi-nagakura/diet-app-prototype/models"
)

func asValidation(err error, target **models.ValidationError) bool {
	return errors.As(err, target)
}

func date(day int) models.Date {
	return models.NewDate(2024, time.June, day)
}

var testProfile = models.UserProfile{
	Age:           30,
	Gender:        models.GenderFemale,
	Height:        160,
	CurrentWeight: 60,
	TargetWeight:  55,
	ActivityLevel: models.ActivityModerate,
	DietGoal:      models.GoalLose,
}
