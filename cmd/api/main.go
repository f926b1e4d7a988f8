package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hrtools-br/ausencias-backend-go/internal/config"
	appHTTP "github.com/hrtools-br/ausencias-backend-go/internal/handler/http"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/gemini"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/jwt"
	"github.com/hrtools-br/ausencias-backend-go/internal/repository/csvfile"
	"github.com/hrtools-br/ausencias-backend-go/internal/repository/xlsxfile"
	absenceService "github.com/hrtools-br/ausencias-backend-go/internal/service/absence"
	exportService "github.com/hrtools-br/ausencias-backend-go/internal/service/export"
	rosterService "github.com/hrtools-br/ausencias-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// A missing credential must stop the process before any request is
		// accepted.
		log.Fatal("Error loading config: ", err)
	}

	absenceRepo := csvfile.NewAbsenceRepository(cfg.Store.DataFile)
	rosterRepo := xlsxfile.NewRosterRepository(cfg.Store.RosterFile)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	recordService, err := absenceService.NewRecordService(context.Background(), absenceRepo, geminiClient)
	if err != nil {
		log.Fatal("Failed to initialize record store: ", err)
	}
	rosterSvc := rosterService.NewRosterService(rosterRepo)
	exportSvc := exportService.NewExportService(recordService)

	authHandler := appHTTP.NewAuthHandler(JWTService, cfg.Auth.OperatorPasswordHash)
	absenceHandler := appHTTP.NewAbsenceHandler(recordService, exportSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	uploadHandler := appHTTP.NewUploadHandler()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		absenceHandler,
		rosterHandler,
		uploadHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
