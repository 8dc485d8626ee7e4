package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/assessment-backend/internal/handlers"
  "github.com/yungbote/assessment-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler            *handlers.AuthHandler
  AuthMiddleware         *middleware.AuthMiddleware
  ClientHandler          *handlers.ClientHandler
  AssessmentTypeHandler  *handlers.AssessmentTypeHandler
  AssessmentHandler      *handlers.AssessmentHandler
  AnswerHandler          *handlers.AnswerHandler
  AnalysisHandler        *handlers.AnalysisHandler
  ReportHandler          *handlers.ReportHandler
  AllowOrigins           []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  allowOrigins := cfg.AllowOrigins
  if len(allowOrigins) == 0 {
    allowOrigins = []string{
      "http://localhost:3000",
      "http://localhost:5173",
    }
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     allowOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/api/auth/signin", cfg.AuthHandler.SignIn)
  router.POST("/api/auth/logout", cfg.AuthHandler.Logout)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.GET("/auth/me", cfg.AuthHandler.Me)
  // Clients
  protected.GET("/clients", cfg.ClientHandler.List)
  protected.POST("/clients", cfg.ClientHandler.Create)
  protected.GET("/clients/:id", cfg.ClientHandler.Get)
  protected.PATCH("/clients/:id", cfg.ClientHandler.Update)
  protected.DELETE("/clients/:id", cfg.ClientHandler.Delete)
  // Assessment types (shared reference data)
  protected.GET("/assessment-types", cfg.AssessmentTypeHandler.List)
  protected.GET("/assessment-types/:id", cfg.AssessmentTypeHandler.Get)
  protected.GET("/assessment-types/:id/questions", cfg.AssessmentTypeHandler.GetQuestions)
  // Assessments
  protected.GET("/assessments", cfg.AssessmentHandler.List)
  protected.POST("/assessments", cfg.AssessmentHandler.Create)
  protected.GET("/assessments/:id", cfg.AssessmentHandler.Get)
  protected.PATCH("/assessments/:id", cfg.AssessmentHandler.Update)
  protected.DELETE("/assessments/:id", cfg.AssessmentHandler.Delete)
  protected.GET("/assessments/:id/progress", cfg.AssessmentHandler.GetProgress)
  protected.POST("/assessments/:id/complete", cfg.AssessmentHandler.Complete)
  // Answers
  protected.GET("/assessments/:id/answers", cfg.AnswerHandler.List)
  protected.PUT("/assessments/:id/answers", cfg.AnswerHandler.Save)
  protected.PUT("/assessments/:id/answers/batch", cfg.AnswerHandler.BatchSave)
  // Analysis
  protected.GET("/assessments/:id/scores", cfg.AnalysisHandler.GetScores)
  protected.POST("/assessments/:id/insights", cfg.AnalysisHandler.GenerateInsights)
  // Reports
  protected.GET("/assessments/:id/reports", cfg.ReportHandler.ListByAssessment)
  protected.GET("/reports/:id", cfg.ReportHandler.Get)

  return router
}
