package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

// Assessment types are shared reference data, never scoped by user.
type AssessmentTypeRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentType, error)
  GetByID(ctx context.Context, tx *gorm.DB, typeID int64) (*types.AssessmentType, error)
  Create(ctx context.Context, tx *gorm.DB, assessmentType *types.AssessmentType) (*types.AssessmentType, error)
  GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.AssessmentType, error)
}

type assessmentTypeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssessmentTypeRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentTypeRepo {
  repoLog := baseLog.With("repo", "AssessmentTypeRepo")
  return &assessmentTypeRepo{db: db, log: repoLog}
}

func (ar *assessmentTypeRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentType, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.AssessmentType
  if err := transaction.WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (ar *assessmentTypeRepo) GetByID(ctx context.Context, tx *gorm.DB, typeID int64) (*types.AssessmentType, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.AssessmentType
  if err := transaction.WithContext(ctx).
    Where("id = ?", typeID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (ar *assessmentTypeRepo) Create(ctx context.Context, tx *gorm.DB, assessmentType *types.AssessmentType) (*types.AssessmentType, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if err := transaction.WithContext(ctx).Create(assessmentType).Error; err != nil {
    return nil, err
  }
  return assessmentType, nil
}

func (ar *assessmentTypeRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.AssessmentType, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.AssessmentType
  if err := transaction.WithContext(ctx).
    Where("name = ?", name).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}
