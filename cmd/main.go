package main

import (
	"log"

	"github.com/yuichi-nagakura/diet-app-prototype/config"
	"github.com/yuichi-nagakura/diet-app-prototype/routes"
	"github.com/yuichi-nagakura/diet-app-prototype/services"
)

func main() {
	cfg := config.Load()

	store, err := config.NewStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	hub := services.NewRealtimeHub()
	progress := services.NewProgressService(store)

	r := routes.SetupRouter(routes.Deps{
		Progress:     progress,
		Achievements: services.NewAchievementService(store, progress, hub),
		Lessons:      services.NewLessonService(store),
		Advice:       services.NewAdviceService(store, nil),
		Hub:          hub,
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
