package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/assessment-backend/internal/services"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "assessment_session"

type AuthHandler struct {
  authService       services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

// SignIn receives the identity asserted by the external provider,
// upserts the user and sets the session cookie.
func (ah *AuthHandler) SignIn(c *gin.Context) {
  var req struct {
    OpenID       string      `json:"open_id" binding:"required"`
    Name         string      `json:"name"`
    Email        string      `json:"email" binding:"omitempty,email"`
    LoginMethod  string      `json:"login_method"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  user, token, err := ah.authService.SignIn(c.Request.Context(), services.SignInInput{
    OpenID:      req.OpenID,
    Name:        req.Name,
    Email:       req.Email,
    LoginMethod: req.LoginMethod,
  })
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  maxAge := int(ah.authService.GetSessionTTL().Seconds())
  c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
  c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ah *AuthHandler) Me(c *gin.Context) {
  user, err := ah.authService.Me(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, user)
}

// Logout only clears the cookie; session tokens carry their own expiry
// and are not tracked server side.
func (ah *AuthHandler) Logout(c *gin.Context) {
  c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
  c.JSON(http.StatusOK, gin.H{"success": true})
}
