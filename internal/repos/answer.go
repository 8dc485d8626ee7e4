package repos

import (
  "context"
  "time"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

type AnswerRepo interface {
  ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.Answer, error)
  Upsert(ctx context.Context, tx *gorm.DB, answer *types.Answer) error
  BatchUpsert(ctx context.Context, tx *gorm.DB, answers []*types.Answer) error
}

type answerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
  repoLog := baseLog.With("repo", "AnswerRepo")
  return &answerRepo{db: db, log: repoLog}
}

func (ar *answerRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.Answer, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var results []*types.Answer
  if err := transaction.WithContext(ctx).
    Where("assessment_id = ?", assessmentID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// Upsert is keyed by (assessment_id, question_id): an existing row has its
// score, notes and updated_at overwritten.
func (ar *answerRepo) Upsert(ctx context.Context, tx *gorm.DB, answer *types.Answer) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
      DoUpdates: clause.Assignments(map[string]interface{}{
        "score":      answer.Score,
        "notes":      answer.Notes,
        "updated_at": time.Now(),
      }),
    }).
    Create(answer).Error; err != nil {
    return err
  }
  return nil
}

// BatchUpsert issues one upsert per row on purpose: the save path has
// always been row-at-a-time and callers rely on partial progress being
// kept when a later row fails.
func (ar *answerRepo) BatchUpsert(ctx context.Context, tx *gorm.DB, answers []*types.Answer) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  for _, answer := range answers {
    if err := ar.Upsert(ctx, transaction, answer); err != nil {
      return err
    }
  }
  return nil
}
