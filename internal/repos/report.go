package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

type ReportRepo interface {
  ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.Report, error)
  GetByID(ctx context.Context, tx *gorm.DB, reportID int64) (*types.Report, error)
  Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error)
}

type reportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
  repoLog := baseLog.With("repo", "ReportRepo")
  return &reportRepo{db: db, log: repoLog}
}

func (rr *reportRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Report
  if err := transaction.WithContext(ctx).
    Where("assessment_id = ?", assessmentID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (rr *reportRepo) GetByID(ctx context.Context, tx *gorm.DB, reportID int64) (*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  var results []*types.Report
  if err := transaction.WithContext(ctx).
    Where("id = ?", reportID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (rr *reportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }

  if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
    return nil, err
  }
  return report, nil
}
