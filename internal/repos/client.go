package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

// Every read and write is scoped by the owning user id; a client
// belonging to another user is indistinguishable from a missing row.
type ClientRepo interface {
  ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Client, error)
  GetByID(ctx context.Context, tx *gorm.DB, clientID, userID int64) (*types.Client, error)
  Create(ctx context.Context, tx *gorm.DB, client *types.Client) (*types.Client, error)
  Update(ctx context.Context, tx *gorm.DB, clientID, userID int64, fields map[string]interface{}) error
  Delete(ctx context.Context, tx *gorm.DB, clientID, userID int64) error
}

type clientRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
  repoLog := baseLog.With("repo", "ClientRepo")
  return &clientRepo{db: db, log: repoLog}
}

func (cr *clientRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Client
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *clientRepo) GetByID(ctx context.Context, tx *gorm.DB, clientID, userID int64) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.Client
  if err := transaction.WithContext(ctx).
    Where("id = ? AND user_id = ?", clientID, userID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (cr *clientRepo) Create(ctx context.Context, tx *gorm.DB, client *types.Client) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).Create(client).Error; err != nil {
    return nil, err
  }
  return client, nil
}

func (cr *clientRepo) Update(ctx context.Context, tx *gorm.DB, clientID, userID int64, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(fields) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Client{}).
    Where("id = ? AND user_id = ?", clientID, userID).
    Updates(fields).Error; err != nil {
    return err
  }
  return nil
}

func (cr *clientRepo) Delete(ctx context.Context, tx *gorm.DB, clientID, userID int64) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).
    Where("id = ? AND user_id = ?", clientID, userID).
    Delete(&types.Client{}).Error; err != nil {
    return err
  }
  return nil
}
