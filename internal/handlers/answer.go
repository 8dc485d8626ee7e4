package handlers

import (
  "net/http"
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/requestdata"
  "github.com/yungbote/assessment-backend/internal/services"
)

type AnswerHandler struct {
  answerService services.AnswerService
}

func NewAnswerHandler(answerService services.AnswerService) *AnswerHandler {
  return &AnswerHandler{answerService: answerService}
}

func (ah *AnswerHandler) List(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  answers, err := ah.answerService.List(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, answers)
}

func (ah *AnswerHandler) Save(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  var req struct {
    QuestionID  int64   `json:"question_id" binding:"required,gt=0"`
    Score       *int    `json:"score" binding:"omitempty,min=1,max=5"`
    Notes       string  `json:"notes"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  err := ah.answerService.Save(c.Request.Context(), rd.UserID, assessmentID, services.SaveAnswerInput{
    QuestionID: req.QuestionID,
    Score:      req.Score,
    Notes:      req.Notes,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AnswerHandler) BatchSave(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  var req struct {
    Answers []struct {
      QuestionID  int64   `json:"question_id" binding:"required,gt=0"`
      Score       *int    `json:"score" binding:"omitempty,min=1,max=5"`
      Notes       string  `json:"notes"`
    } `json:"answers" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  inputs := make([]services.SaveAnswerInput, 0, len(req.Answers))
  for _, answer := range req.Answers {
    inputs = append(inputs, services.SaveAnswerInput{
      QuestionID: answer.QuestionID,
      Score:      answer.Score,
      Notes:      answer.Notes,
    })
  }
  if err := ah.answerService.BatchSave(c.Request.Context(), rd.UserID, assessmentID, inputs); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
