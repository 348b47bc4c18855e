package main

import (
	"log"

	"github.com/alumnilink/leads-backend-go/internal/api"
	"github.com/alumnilink/leads-backend-go/internal/config"
	"github.com/alumnilink/leads-backend-go/internal/database"
	"github.com/alumnilink/leads-backend-go/internal/handler"
	"github.com/alumnilink/leads-backend-go/internal/leadgen"
	"github.com/alumnilink/leads-backend-go/internal/repository"
	"github.com/alumnilink/leads-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	leadRepo := repository.NewLeadRepository(db)
	panelRepo := repository.NewPanelRepository(db)

	generator := leadgen.NewGenerator(cfg.LeadSeed, cfg.LeadBatchSize)
	leadService := service.NewLeadService(leadRepo, generator)
	heatmapService := service.NewHeatmapService(leadRepo)

	// Seed an initial batch so dashboards have data on first boot
	if err := leadService.EnsureSeeded(); err != nil {
		log.Fatal("Failed to seed lead batch:", err)
	}

	router := api.SetupRouter(cfg, api.Handlers{
		Lead:    handler.NewLeadHandler(leadService),
		Heatmap: handler.NewHeatmapHandler(heatmapService),
		Panel:   handler.NewPanelHandler(panelRepo),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
