package repos

import (
  "context"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

type CriterionScoreRepo interface {
  ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.CriterionScore, error)
  Upsert(ctx context.Context, tx *gorm.DB, score *types.CriterionScore) error
}

type criterionScoreRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCriterionScoreRepo(db *gorm.DB, baseLog *logger.Logger) CriterionScoreRepo {
  repoLog := baseLog.With("repo", "CriterionScoreRepo")
  return &criterionScoreRepo{db: db, log: repoLog}
}

func (cr *criterionScoreRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.CriterionScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []*types.CriterionScore
  if err := transaction.WithContext(ctx).
    Where("assessment_id = ?", assessmentID).
    Order("criterion_number ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// Upsert is keyed by (assessment_id, criterion_number); completion
// recomputes every criterion wholesale.
func (cr *criterionScoreRepo) Upsert(ctx context.Context, tx *gorm.DB, score *types.CriterionScore) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "assessment_id"}, {Name: "criterion_number"}},
      DoUpdates: clause.Assignments(map[string]interface{}{
        "criterion_name":     score.CriterionName,
        "average_score":      score.AverageScore,
        "total_questions":    score.TotalQuestions,
        "answered_questions": score.AnsweredQuestions,
      }),
    }).
    Create(score).Error; err != nil {
    return err
  }
  return nil
}
