package handlers

import (
  "net/http"
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/requestdata"
  "github.com/yungbote/assessment-backend/internal/services"
)

type ReportHandler struct {
  reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
  return &ReportHandler{reportService: reportService}
}

func (rh *ReportHandler) ListByAssessment(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  assessmentID := PathID(c, "id")
  if assessmentID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid assessment id"))
    return
  }
  reports, err := rh.reportService.List(c.Request.Context(), rd.UserID, assessmentID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, reports)
}

func (rh *ReportHandler) Get(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  reportID := PathID(c, "id")
  if reportID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid report id"))
    return
  }
  report, err := rh.reportService.Get(c.Request.Context(), rd.UserID, reportID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, report)
}
