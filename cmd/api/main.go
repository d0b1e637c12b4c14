package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/officehub/officehub-backend-go/internal/config"
	appHTTP "github.com/officehub/officehub-backend-go/internal/handler/http"
	"github.com/officehub/officehub-backend-go/internal/pkg/database"
	"github.com/officehub/officehub-backend-go/internal/pkg/genai"
	"github.com/officehub/officehub-backend-go/internal/pkg/jwt"
	"github.com/officehub/officehub-backend-go/internal/pkg/sse"
	"github.com/officehub/officehub-backend-go/internal/repository/postgresql"
	authService "github.com/officehub/officehub-backend-go/internal/service/auth"
	dashboardService "github.com/officehub/officehub-backend-go/internal/service/dashboard"
	notificationService "github.com/officehub/officehub-backend-go/internal/service/notification"
	recordService "github.com/officehub/officehub-backend-go/internal/service/record"
	suggestionService "github.com/officehub/officehub-backend-go/internal/service/suggestion"
	userService "github.com/officehub/officehub-backend-go/internal/service/user"
	workTypeService "github.com/officehub/officehub-backend-go/internal/service/worktype"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "officehub-backend"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgresql.Bootstrap(ctx, db); err != nil {
		fmt.Println("Error bootstrapping schema:", err)
		return
	}

	changeFeed := postgresql.NewChangeFeed(db, logger)
	userRepo := postgresql.NewUserRepository(db)
	workTypeRepo := postgresql.NewWorkTypeRepository(db, changeFeed, logger)
	recordRepo := postgresql.NewRecordRepository(db, changeFeed, logger)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	genaiClient := genai.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.APIKey, logger)
	hub := sse.NewHub()

	engine := notificationService.NewEngine()
	suggestionSvc := suggestionService.NewSuggestionService(genaiClient, logger)
	authSvc := authService.NewAuthService(userRepo, jwtService, logger)
	userSvc := userService.NewUserService(userRepo, logger)
	workTypeSvc := workTypeService.NewWorkTypeService(workTypeRepo, suggestionSvc, logger)
	recordSvc := recordService.NewRecordService(recordRepo, workTypeRepo, logger)
	notificationSvc := notificationService.NewNotificationService(recordRepo, workTypeRepo, engine, hub, logger)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, workTypeRepo, recordRepo, engine, logger)

	// Repositories registered their collection handlers; start listening
	changeFeed.Start(ctx)
	defer changeFeed.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	workTypeHandler := appHTTP.NewWorkTypeHandler(workTypeSvc)
	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:                cfg.App.Env,
			CORSAllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		jwtService,
		authHandler,
		workTypeHandler,
		recordHandler,
		notificationHandler,
		userHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
