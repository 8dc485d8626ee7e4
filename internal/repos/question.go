package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

type QuestionRepo interface {
  ListByAssessmentType(ctx context.Context, tx *gorm.DB, assessmentTypeID int64) ([]*types.Question, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, questionIDs []int64) ([]*types.Question, error)
  Create(ctx context.Context, tx *gorm.DB, questions []*types.Question) ([]*types.Question, error)
}

type questionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
  repoLog := baseLog.With("repo", "QuestionRepo")
  return &questionRepo{db: db, log: repoLog}
}

func (qr *questionRepo) ListByAssessmentType(ctx context.Context, tx *gorm.DB, assessmentTypeID int64) ([]*types.Question, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  var results []*types.Question
  if err := transaction.WithContext(ctx).
    Where("assessment_type_id = ?", assessmentTypeID).
    Order("criterion_number ASC, question_number ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (qr *questionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, questionIDs []int64) ([]*types.Question, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  var results []*types.Question
  if len(questionIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", questionIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (qr *questionRepo) Create(ctx context.Context, tx *gorm.DB, questions []*types.Question) ([]*types.Question, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  if len(questions) == 0 {
    return []*types.Question{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&questions).Error; err != nil {
    return nil, err
  }
  return questions, nil
}
