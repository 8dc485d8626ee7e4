package main

import (
  "fmt"
  "os"
  "time"
  "github.com/joho/godotenv"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/utils"
  "github.com/yungbote/assessment-backend/internal/db"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/services"
  "github.com/yungbote/assessment-backend/internal/handlers"
  "github.com/yungbote/assessment-backend/internal/middleware"
  "github.com/yungbote/assessment-backend/internal/server"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  sessionTTL := utils.GetEnvAsInt("SESSION_TTL", 86400, log)
  ownerOpenID := utils.GetEnv("OWNER_OPEN_ID", "", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  clientRepo := repos.NewClientRepo(thePG, log)
  assessmentTypeRepo := repos.NewAssessmentTypeRepo(thePG, log)
  questionRepo := repos.NewQuestionRepo(thePG, log)
  assessmentRepo := repos.NewAssessmentRepo(thePG, log)
  answerRepo := repos.NewAnswerRepo(thePG, log)
  criterionScoreRepo := repos.NewCriterionScoreRepo(thePG, log)
  reportRepo := repos.NewReportRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  openaiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Error("Could not init OpenAIClient", "error", err)
    os.Exit(1)
  }
  authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(sessionTTL)*time.Second, ownerOpenID)
  clientService := services.NewClientService(thePG, log, clientRepo)
  assessmentTypeService := services.NewAssessmentTypeService(thePG, log, assessmentTypeRepo, questionRepo)
  assessmentService := services.NewAssessmentService(thePG, log, assessmentRepo, assessmentTypeRepo, questionRepo, answerRepo, criterionScoreRepo, clientRepo)
  answerService := services.NewAnswerService(thePG, log, answerRepo, assessmentRepo)
  analysisService := services.NewAnalysisService(thePG, log, assessmentRepo, clientRepo, assessmentTypeRepo, questionRepo, answerRepo, criterionScoreRepo, openaiClient)
  reportService := services.NewReportService(thePG, log, reportRepo, assessmentRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  clientHandler := handlers.NewClientHandler(clientService)
  assessmentTypeHandler := handlers.NewAssessmentTypeHandler(assessmentTypeService)
  assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
  answerHandler := handlers.NewAnswerHandler(answerService)
  analysisHandler := handlers.NewAnalysisHandler(analysisService)
  reportHandler := handlers.NewReportHandler(reportService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:           authHandler,
    AuthMiddleware:        authMiddleware,
    ClientHandler:         clientHandler,
    AssessmentTypeHandler: assessmentTypeHandler,
    AssessmentHandler:     assessmentHandler,
    AnswerHandler:         answerHandler,
    AnalysisHandler:       analysisHandler,
    ReportHandler:         reportHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
