package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/services"
)

type APIError struct {
  Message     string	`json:"message"`
  Code	      string	`json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error	      APIError	`json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps ErrNotFound (which also covers ownership
// violations) to a 404 and everything else to a 500.
func RespondServiceError(c *gin.Context, err error) {
  if errors.Is(err, services.ErrNotFound) {
    RespondError(c, http.StatusNotFound, "not_found", services.ErrNotFound)
    return
  }
  RespondError(c, http.StatusInternalServerError, "internal", err)
}

// PathID parses a positive integer path parameter; 0 means invalid.
func PathID(c *gin.Context, name string) int64 {
  raw := c.Param(name)
  id, err := strconv.ParseInt(raw, 10, 64)
  if err != nil || id <= 0 {
    return 0
  }
  return id
}
