package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
)

type SaveAnswerInput struct {
  QuestionID  int64
  Score       *int
  Notes       string
}

type AnswerService interface {
  List(ctx context.Context, userID, assessmentID int64) ([]*types.Answer, error)
  Save(ctx context.Context, userID, assessmentID int64, input SaveAnswerInput) error
  BatchSave(ctx context.Context, userID, assessmentID int64, inputs []SaveAnswerInput) error
}

type answerService struct {
  db             *gorm.DB
  log            *logger.Logger
  answerRepo     repos.AnswerRepo
  assessmentRepo repos.AssessmentRepo
}

func NewAnswerService(
  db *gorm.DB,
  baseLog *logger.Logger,
  answerRepo repos.AnswerRepo,
  assessmentRepo repos.AssessmentRepo,
) AnswerService {
  serviceLog := baseLog.With("service", "AnswerService")
  return &answerService{
    db:             db,
    log:            serviceLog,
    answerRepo:     answerRepo,
    assessmentRepo: assessmentRepo,
  }
}

// ownedAssessment resolves the parent assessment scoped to the caller;
// every answer operation authorizes through it.
func (ans *answerService) ownedAssessment(ctx context.Context, userID, assessmentID int64) (*types.Assessment, error) {
  assessment, err := ans.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }
  return assessment, nil
}

func validateScore(score *int) error {
  if score == nil {
    return nil
  }
  if *score < 1 || *score > 5 {
    return fmt.Errorf("score must be between 1 and 5")
  }
  return nil
}

func (ans *answerService) List(ctx context.Context, userID, assessmentID int64) ([]*types.Answer, error) {
  if _, err := ans.ownedAssessment(ctx, userID, assessmentID); err != nil {
    return nil, err
  }
  answers, err := ans.answerRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list answers: %w", err)
  }
  return answers, nil
}

func (ans *answerService) Save(ctx context.Context, userID, assessmentID int64, input SaveAnswerInput) error {
  if _, err := ans.ownedAssessment(ctx, userID, assessmentID); err != nil {
    return err
  }
  if input.QuestionID <= 0 {
    return fmt.Errorf("questionId is required")
  }
  if err := validateScore(input.Score); err != nil {
    return err
  }

  answer := &types.Answer{
    AssessmentID: assessmentID,
    QuestionID:   input.QuestionID,
    Score:        input.Score,
    Notes:        input.Notes,
  }
  if err := ans.answerRepo.Upsert(ctx, nil, answer); err != nil {
    ans.log.Error("Save answer failed", "question_id", input.QuestionID, "error", err)
    return fmt.Errorf("save answer: %w", err)
  }
  return nil
}

func (ans *answerService) BatchSave(ctx context.Context, userID, assessmentID int64, inputs []SaveAnswerInput) error {
  if _, err := ans.ownedAssessment(ctx, userID, assessmentID); err != nil {
    return err
  }

  answers := make([]*types.Answer, 0, len(inputs))
  for _, input := range inputs {
    if input.QuestionID <= 0 {
      return fmt.Errorf("questionId is required")
    }
    if err := validateScore(input.Score); err != nil {
      return err
    }
    answers = append(answers, &types.Answer{
      AssessmentID: assessmentID,
      QuestionID:   input.QuestionID,
      Score:        input.Score,
      Notes:        input.Notes,
    })
  }

  if err := ans.answerRepo.BatchUpsert(ctx, nil, answers); err != nil {
    ans.log.Error("Batch save answers failed", "count", len(answers), "error", err)
    return fmt.Errorf("batch save answers: %w", err)
  }
  return nil
}
