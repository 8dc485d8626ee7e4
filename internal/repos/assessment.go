package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

type AssessmentRepo interface {
  ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Assessment, error)
  GetByID(ctx context.Context, tx *gorm.DB, assessmentID, userID int64) (*types.Assessment, error)
  Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error)
  Update(ctx context.Context, tx *gorm.DB, assessmentID, userID int64, fields map[string]interface{}) error
  Delete(ctx context.Context, tx *gorm.DB, assessmentID, userID int64) error
}

type assessmentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
  repoLog := baseLog.With("repo", "AssessmentRepo")
  return &assessmentRepo{db: db, log: repoLog}
}

func (ar *assessmentRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Assessment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.Assessment
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ar *assessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, assessmentID, userID int64) (*types.Assessment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.Assessment
  if err := transaction.WithContext(ctx).
    Where("id = ? AND user_id = ?", assessmentID, userID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (ar *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if err := transaction.WithContext(ctx).Create(assessment).Error; err != nil {
    return nil, err
  }
  return assessment, nil
}

func (ar *assessmentRepo) Update(ctx context.Context, tx *gorm.DB, assessmentID, userID int64, fields map[string]interface{}) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if len(fields) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Assessment{}).
    Where("id = ? AND user_id = ?", assessmentID, userID).
    Updates(fields).Error; err != nil {
    return err
  }
  return nil
}

func (ar *assessmentRepo) Delete(ctx context.Context, tx *gorm.DB, assessmentID, userID int64) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if err := transaction.WithContext(ctx).
    Where("id = ? AND user_id = ?", assessmentID, userID).
    Delete(&types.Assessment{}).Error; err != nil {
    return err
  }
  return nil
}
