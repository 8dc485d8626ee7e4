package handlers

import (
  "net/http"
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/services"
)

type AssessmentTypeHandler struct {
  assessmentTypeService services.AssessmentTypeService
}

func NewAssessmentTypeHandler(assessmentTypeService services.AssessmentTypeService) *AssessmentTypeHandler {
  return &AssessmentTypeHandler{assessmentTypeService: assessmentTypeService}
}

func (ah *AssessmentTypeHandler) List(c *gin.Context) {
  assessmentTypes, err := ah.assessmentTypeService.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, assessmentTypes)
}

func (ah *AssessmentTypeHandler) Get(c *gin.Context) {
  typeID := PathID(c, "id")
  if typeID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment type id"))
    return
  }
  assessmentType, err := ah.assessmentTypeService.Get(c.Request.Context(), typeID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, assessmentType)
}

func (ah *AssessmentTypeHandler) GetQuestions(c *gin.Context) {
  typeID := PathID(c, "id")
  if typeID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment type id"))
    return
  }
  questions, err := ah.assessmentTypeService.GetQuestions(c.Request.Context(), typeID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, questions)
}
