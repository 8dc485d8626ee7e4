package handlers

import (
  "net/http"
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/requestdata"
  "github.com/yungbote/assessment-backend/internal/services"
)

type AnalysisHandler struct {
  analysisService services.AnalysisService
}

func NewAnalysisHandler(analysisService services.AnalysisService) *AnalysisHandler {
  return &AnalysisHandler{analysisService: analysisService}
}

func (ah *AnalysisHandler) GetScores(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  scores, err := ah.analysisService.GetScores(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, scores)
}

// GenerateInsights returns the generated analysis directly; it is never
// stored.
func (ah *AnalysisHandler) GenerateInsights(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  insights, err := ah.analysisService.GenerateInsights(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, insights)
}
