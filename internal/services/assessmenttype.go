package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
)

// Assessment types and their questions are shared reference data; no
// ownership scoping applies here.
type AssessmentTypeService interface {
  List(ctx context.Context) ([]*types.AssessmentType, error)
  Get(ctx context.Context, typeID int64) (*types.AssessmentType, error)
  GetQuestions(ctx context.Context, typeID int64) ([]*types.Question, error)
}

type assessmentTypeService struct {
  db                 *gorm.DB
  log                *logger.Logger
  assessmentTypeRepo repos.AssessmentTypeRepo
  questionRepo       repos.QuestionRepo
}

func NewAssessmentTypeService(
  db *gorm.DB,
  baseLog *logger.Logger,
  assessmentTypeRepo repos.AssessmentTypeRepo,
  questionRepo repos.QuestionRepo,
) AssessmentTypeService {
  serviceLog := baseLog.With("service", "AssessmentTypeService")
  return &assessmentTypeService{
    db:                 db,
    log:                serviceLog,
    assessmentTypeRepo: assessmentTypeRepo,
    questionRepo:       questionRepo,
  }
}

func (as *assessmentTypeService) List(ctx context.Context) ([]*types.AssessmentType, error) {
  assessmentTypes, err := as.assessmentTypeRepo.List(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("list assessment types: %w", err)
  }
  return assessmentTypes, nil
}

func (as *assessmentTypeService) Get(ctx context.Context, typeID int64) (*types.AssessmentType, error) {
  assessmentType, err := as.assessmentTypeRepo.GetByID(ctx, nil, typeID)
  if err != nil {
    return nil, fmt.Errorf("load assessment type: %w", err)
  }
  if assessmentType == nil {
    return nil, ErrNotFound
  }
  return assessmentType, nil
}

func (as *assessmentTypeService) GetQuestions(ctx context.Context, typeID int64) ([]*types.Question, error) {
  questions, err := as.questionRepo.ListByAssessmentType(ctx, nil, typeID)
  if err != nil {
    return nil, fmt.Errorf("list questions: %w", err)
  }
  return questions, nil
}
