package handlers

import (
  "net/http"
  "fmt"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/requestdata"
  "github.com/yungbote/assessment-backend/internal/services"
)

type AssessmentHandler struct {
  assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
  return &AssessmentHandler{assessmentService: assessmentService}
}

func (ah *AssessmentHandler) List(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessments, err := ah.assessmentService.List(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, assessments)
}

func (ah *AssessmentHandler) Get(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  assessment, err := ah.assessmentService.Get(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, assessment)
}

func (ah *AssessmentHandler) Create(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req struct {
    ClientID          int64   `json:"client_id" binding:"required,gt=0"`
    AssessmentTypeID  int64   `json:"assessment_type_id" binding:"required,gt=0"`
    Title             string  `json:"title" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  assessment, err := ah.assessmentService.Create(c.Request.Context(), rd.UserID, services.CreateAssessmentInput{
    ClientID:         req.ClientID,
    AssessmentTypeID: req.AssessmentTypeID,
    Title:            req.Title,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"id": assessment.ID})
}

func (ah *AssessmentHandler) Update(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  var req struct {
    Title        *string     `json:"title"`
    Status       *string     `json:"status"`
    CompletedAt  *time.Time  `json:"completed_at"`
    TotalScore   *float64    `json:"total_score"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  err := ah.assessmentService.Update(c.Request.Context(), rd.UserID, assessmentID, services.UpdateAssessmentInput{
    Title:       req.Title,
    Status:      req.Status,
    CompletedAt: req.CompletedAt,
    TotalScore:  req.TotalScore,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AssessmentHandler) Delete(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  if err := ah.assessmentService.Delete(c.Request.Context(), rd.UserID, assessmentID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AssessmentHandler) GetProgress(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  progress, err := ah.assessmentService.GetProgress(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, progress)
}

// Complete trusts the caller: the client-side 50% answered gate is a UX
// rule and is intentionally not re-checked here.
func (ah *AssessmentHandler) Complete(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  result, err := ah.assessmentService.Complete(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true, "total_score": result.TotalScore})
}
