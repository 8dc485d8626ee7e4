package services

import (
  "context"
  "fmt"
  "strings"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
)

type CreateClientInput struct {
  CompanyName   string
  Industry      string
  ContactName   string
  ContactEmail  string
  ContactPhone  string
  Notes         string
}

// Nil field means "leave unchanged".
type UpdateClientInput struct {
  CompanyName   *string
  Industry      *string
  ContactName   *string
  ContactEmail  *string
  ContactPhone  *string
  Notes         *string
}

type ClientService interface {
  List(ctx context.Context, userID int64) ([]*types.Client, error)
  Get(ctx context.Context, userID, clientID int64) (*types.Client, error)
  Create(ctx context.Context, userID int64, input CreateClientInput) (*types.Client, error)
  Update(ctx context.Context, userID, clientID int64, input UpdateClientInput) error
  Delete(ctx context.Context, userID, clientID int64) error
}

type clientService struct {
  db         *gorm.DB
  log        *logger.Logger
  clientRepo repos.ClientRepo
}

func NewClientService(db *gorm.DB, baseLog *logger.Logger, clientRepo repos.ClientRepo) ClientService {
  serviceLog := baseLog.With("service", "ClientService")
  return &clientService{db: db, log: serviceLog, clientRepo: clientRepo}
}

func (cs *clientService) List(ctx context.Context, userID int64) ([]*types.Client, error) {
  clients, err := cs.clientRepo.ListByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("list clients: %w", err)
  }
  return clients, nil
}

func (cs *clientService) Get(ctx context.Context, userID, clientID int64) (*types.Client, error) {
  client, err := cs.clientRepo.GetByID(ctx, nil, clientID, userID)
  if err != nil {
    return nil, fmt.Errorf("load client: %w", err)
  }
  if client == nil {
    return nil, ErrNotFound
  }
  return client, nil
}

func (cs *clientService) Create(ctx context.Context, userID int64, input CreateClientInput) (*types.Client, error) {
  companyName := strings.TrimSpace(input.CompanyName)
  if companyName == "" {
    return nil, fmt.Errorf("companyName is required")
  }

  client := &types.Client{
    UserID:        userID,
    CompanyName:   companyName,
    Industry:      strings.TrimSpace(input.Industry),
    ContactName:   strings.TrimSpace(input.ContactName),
    ContactEmail:  strings.TrimSpace(input.ContactEmail),
    ContactPhone:  strings.TrimSpace(input.ContactPhone),
    Notes:         input.Notes,
  }
  created, err := cs.clientRepo.Create(ctx, nil, client)
  if err != nil {
    cs.log.Error("Create client failed", "error", err)
    return nil, fmt.Errorf("create client: %w", err)
  }
  return created, nil
}

func (cs *clientService) Update(ctx context.Context, userID, clientID int64, input UpdateClientInput) error {
  existing, err := cs.clientRepo.GetByID(ctx, nil, clientID, userID)
  if err != nil {
    return fmt.Errorf("load client: %w", err)
  }
  if existing == nil {
    return ErrNotFound
  }

  fields := map[string]interface{}{}
  if input.CompanyName != nil {
    companyName := strings.TrimSpace(*input.CompanyName)
    if companyName == "" {
      return fmt.Errorf("companyName cannot be empty")
    }
    fields["company_name"] = companyName
  }
  if input.Industry != nil {
    fields["industry"] = strings.TrimSpace(*input.Industry)
  }
  if input.ContactName != nil {
    fields["contact_name"] = strings.TrimSpace(*input.ContactName)
  }
  if input.ContactEmail != nil {
    fields["contact_email"] = strings.TrimSpace(*input.ContactEmail)
  }
  if input.ContactPhone != nil {
    fields["contact_phone"] = strings.TrimSpace(*input.ContactPhone)
  }
  if input.Notes != nil {
    fields["notes"] = *input.Notes
  }

  if err := cs.clientRepo.Update(ctx, nil, clientID, userID, fields); err != nil {
    cs.log.Error("Update client failed", "error", err)
    return fmt.Errorf("update client: %w", err)
  }
  return nil
}

func (cs *clientService) Delete(ctx context.Context, userID, clientID int64) error {
  existing, err := cs.clientRepo.GetByID(ctx, nil, clientID, userID)
  if err != nil {
    return fmt.Errorf("load client: %w", err)
  }
  if existing == nil {
    return ErrNotFound
  }
  if err := cs.clientRepo.Delete(ctx, nil, clientID, userID); err != nil {
    cs.log.Error("Delete client failed", "error", err)
    return fmt.Errorf("delete client: %w", err)
  }
  return nil
}
