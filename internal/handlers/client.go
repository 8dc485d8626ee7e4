package handlers

import (
  "net/http"
  "fmt"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/requestdata"
  "github.com/yungbote/assessment-backend/internal/services"
)

type ClientHandler struct {
  clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
  return &ClientHandler{clientService: clientService}
}

func (ch *ClientHandler) List(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  clients, err := ch.clientService.List(c.Request.Context(), rd.UserID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, clients)
}

func (ch *ClientHandler) Get(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  clientID := PathID(c, "id")
  if clientID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid client id"))
    return
  }
  client, err := ch.clientService.Get(c.Request.Context(), rd.UserID, clientID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, client)
}

func (ch *ClientHandler) Create(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  var req struct {
    CompanyName   string    `json:"company_name" binding:"required"`
    Industry      string    `json:"industry"`
    ContactName   string    `json:"contact_name"`
    ContactEmail  string    `json:"contact_email" binding:"omitempty,email"`
    ContactPhone  string    `json:"contact_phone"`
    Notes         string    `json:"notes"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  client, err := ch.clientService.Create(c.Request.Context(), rd.UserID, services.CreateClientInput{
    CompanyName:  req.CompanyName,
    Industry:     req.Industry,
    ContactName:  req.ContactName,
    ContactEmail: req.ContactEmail,
    ContactPhone: req.ContactPhone,
    Notes:        req.Notes,
  })
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"id": client.ID})
}

func (ch *ClientHandler) Update(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  clientID := PathID(c, "id")
  if clientID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid client id"))
    return
  }
  var req struct {
    CompanyName   *string   `json:"company_name"`
    Industry      *string   `json:"industry"`
    ContactName   *string   `json:"contact_name"`
    ContactEmail  *string   `json:"contact_email" binding:"omitempty,email"`
    ContactPhone  *string   `json:"contact_phone"`
    Notes         *string   `json:"notes"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  err := ch.clientService.Update(c.Request.Context(), rd.UserID, clientID, services.UpdateClientInput{
    CompanyName:  req.CompanyName,
    Industry:     req.Industry,
    ContactName:  req.ContactName,
    ContactEmail: req.ContactEmail,
    ContactPhone: req.ContactPhone,
    Notes:        req.Notes,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ch *ClientHandler) Delete(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  clientID := PathID(c, "id")
  if clientID == 0 {
    RespondError(c, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid client id"))
    return
  }
  if err := ch.clientService.Delete(c.Request.Context(), rd.UserID, clientID); err != nil {
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}
