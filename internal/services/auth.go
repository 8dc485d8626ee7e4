package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "gorm.io/gorm"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/requestdata"
  "github.com/yungbote/assessment-backend/internal/types"
)

type JWTClaims struct {
  jwt.RegisteredClaims
}

type SignInInput struct {
  OpenID       string
  Name         string
  Email        string
  LoginMethod  string
}

type AuthService interface {
  SignIn(ctx context.Context, input SignInInput) (*types.User, string, error)
  Me(ctx context.Context) (*types.User, error)
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetSessionTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  jwtSecretKey  string
  sessionTTL    time.Duration
  ownerOpenID   string
}

func NewAuthService(
  db *gorm.DB,
  log *logger.Logger,
  userRepo repos.UserRepo,
  jwtSecretKey string,
  sessionTTL time.Duration,
  ownerOpenID string,
) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:           db,
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: jwtSecretKey,
    sessionTTL:   sessionTTL,
    ownerOpenID:  ownerOpenID,
  }
}

// SignIn upserts the identity delivered by the external provider and
// issues a session token for it. The configured owner openId is always
// promoted to admin.
func (as *authService) SignIn(ctx context.Context, input SignInInput) (*types.User, string, error) {
  openID := strings.TrimSpace(input.OpenID)
  if openID == "" {
    return nil, "", fmt.Errorf("openId is required")
  }

  role := types.RoleUser
  if as.ownerOpenID != "" && openID == as.ownerOpenID {
    role = types.RoleAdmin
  } else if existing, err := as.userRepo.GetByOpenID(ctx, nil, openID); err == nil && existing != nil {
    // Keep a previously granted role on re-sign-in.
    role = existing.Role
  }

  user := &types.User{
    OpenID:       openID,
    Name:         strings.TrimSpace(input.Name),
    Email:        strings.TrimSpace(input.Email),
    LoginMethod:  strings.TrimSpace(input.LoginMethod),
    Role:         role,
    LastSignedIn: time.Now(),
  }

  persisted, err := as.userRepo.Upsert(ctx, nil, user)
  if err != nil {
    as.log.Error("Failed to upsert user on sign-in", "error", err)
    return nil, "", fmt.Errorf("Failed to upsert user: %w", err)
  }
  if persisted == nil {
    return nil, "", fmt.Errorf("Failed to load user after upsert")
  }

  token, err := as.generateSessionToken(persisted)
  if err != nil {
    as.log.Error("Failed to generate session token", "error", err)
    return nil, "", fmt.Errorf("Generate session token error: %w", err)
  }
  return persisted, token, nil
}

func (as *authService) Me(ctx context.Context) (*types.User, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil {
    return nil, fmt.Errorf("No request data found in context")
  }
  user, err := as.userRepo.GetByID(ctx, nil, rd.UserID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load user: %w", err)
  }
  if user == nil {
    return nil, ErrNotFound
  }
  return user, nil
}

func (as *authService) generateSessionToken(user *types.User) (string, error) {
  claims := JWTClaims{
    RegisteredClaims: jwt.RegisteredClaims{
      ID:        uuid.NewString(),
      Subject:   fmt.Sprintf("%d", user.ID),
      ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.sessionTTL)),
      IssuedAt:  jwt.NewNumericDate(time.Now()),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  if tokenString == "" {
    return ctx, fmt.Errorf("empty token")
  }
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return ctx, fmt.Errorf("Failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return ctx, fmt.Errorf("Invalid or expired session token")
  }

  var userID int64
  if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID <= 0 {
    return ctx, fmt.Errorf("Invalid user id in token")
  }

  user, err := as.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    return ctx, fmt.Errorf("Failed to load session user: %w", err)
  }
  if user == nil {
    return ctx, fmt.Errorf("Session user no longer exists")
  }

  rd := &requestdata.RequestData{
    TokenString: tokenString,
    UserID:      user.ID,
    Role:        user.Role,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetSessionTTL() time.Duration {
  return as.sessionTTL
}
