package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
)

type CreateAssessmentInput struct {
  ClientID          int64
  AssessmentTypeID  int64
  Title             string
}

// Nil field means "leave unchanged".
type UpdateAssessmentInput struct {
  Title        *string
  Status       *string
  CompletedAt  *time.Time
  TotalScore   *float64
}

type AssessmentProgress struct {
  TotalQuestions     int     `json:"total_questions"`
  AnsweredQuestions  int     `json:"answered_questions"`
  Progress           float64 `json:"progress"`
}

type CompletionResult struct {
  TotalScore  float64 `json:"total_score"`
}

type AssessmentService interface {
  List(ctx context.Context, userID int64) ([]*types.Assessment, error)
  Get(ctx context.Context, userID, assessmentID int64) (*types.Assessment, error)
  Create(ctx context.Context, userID int64, input CreateAssessmentInput) (*types.Assessment, error)
  Update(ctx context.Context, userID, assessmentID int64, input UpdateAssessmentInput) error
  Delete(ctx context.Context, userID, assessmentID int64) error
  GetProgress(ctx context.Context, userID, assessmentID int64) (*AssessmentProgress, error)
  Complete(ctx context.Context, userID, assessmentID int64) (*CompletionResult, error)
}

type assessmentService struct {
  db                 *gorm.DB
  log                *logger.Logger
  assessmentRepo     repos.AssessmentRepo
  assessmentTypeRepo repos.AssessmentTypeRepo
  questionRepo       repos.QuestionRepo
  answerRepo         repos.AnswerRepo
  criterionScoreRepo repos.CriterionScoreRepo
  clientRepo         repos.ClientRepo
}

func NewAssessmentService(
  db *gorm.DB,
  baseLog *logger.Logger,
  assessmentRepo repos.AssessmentRepo,
  assessmentTypeRepo repos.AssessmentTypeRepo,
  questionRepo repos.QuestionRepo,
  answerRepo repos.AnswerRepo,
  criterionScoreRepo repos.CriterionScoreRepo,
  clientRepo repos.ClientRepo,
) AssessmentService {
  serviceLog := baseLog.With("service", "AssessmentService")
  return &assessmentService{
    db:                 db,
    log:                serviceLog,
    assessmentRepo:     assessmentRepo,
    assessmentTypeRepo: assessmentTypeRepo,
    questionRepo:       questionRepo,
    answerRepo:         answerRepo,
    criterionScoreRepo: criterionScoreRepo,
    clientRepo:         clientRepo,
  }
}

func (as *assessmentService) List(ctx context.Context, userID int64) ([]*types.Assessment, error) {
  assessments, err := as.assessmentRepo.ListByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("list assessments: %w", err)
  }
  return assessments, nil
}

func (as *assessmentService) Get(ctx context.Context, userID, assessmentID int64) (*types.Assessment, error) {
  assessment, err := as.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }
  return assessment, nil
}

func (as *assessmentService) Create(ctx context.Context, userID int64, input CreateAssessmentInput) (*types.Assessment, error) {
  title := strings.TrimSpace(input.Title)
  if title == "" {
    return nil, fmt.Errorf("title is required")
  }

  // 1) Referenced client must belong to this user
  client, err := as.clientRepo.GetByID(ctx, nil, input.ClientID, userID)
  if err != nil {
    return nil, fmt.Errorf("load client: %w", err)
  }
  if client == nil {
    return nil, ErrNotFound
  }

  // 2) Referenced type must exist
  assessmentType, err := as.assessmentTypeRepo.GetByID(ctx, nil, input.AssessmentTypeID)
  if err != nil {
    return nil, fmt.Errorf("load assessment type: %w", err)
  }
  if assessmentType == nil {
    return nil, ErrNotFound
  }

  assessment := &types.Assessment{
    ClientID:         input.ClientID,
    AssessmentTypeID: input.AssessmentTypeID,
    UserID:           userID,
    Title:            title,
    Status:           types.AssessmentStatusInProgress,
    StartedAt:        time.Now(),
  }
  created, err := as.assessmentRepo.Create(ctx, nil, assessment)
  if err != nil {
    as.log.Error("Create assessment failed", "error", err)
    return nil, fmt.Errorf("create assessment: %w", err)
  }
  return created, nil
}

func (as *assessmentService) Update(ctx context.Context, userID, assessmentID int64, input UpdateAssessmentInput) error {
  existing, err := as.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return fmt.Errorf("load assessment: %w", err)
  }
  if existing == nil {
    return ErrNotFound
  }

  fields := map[string]interface{}{}
  if input.Title != nil {
    title := strings.TrimSpace(*input.Title)
    if title == "" {
      return fmt.Errorf("title cannot be empty")
    }
    fields["title"] = title
  }
  if input.Status != nil {
    if *input.Status != types.AssessmentStatusInProgress && *input.Status != types.AssessmentStatusCompleted {
      return fmt.Errorf("invalid status %q", *input.Status)
    }
    fields["status"] = *input.Status
  }
  if input.CompletedAt != nil {
    fields["completed_at"] = *input.CompletedAt
  }
  if input.TotalScore != nil {
    fields["total_score"] = *input.TotalScore
  }

  if err := as.assessmentRepo.Update(ctx, nil, assessmentID, userID, fields); err != nil {
    as.log.Error("Update assessment failed", "error", err)
    return fmt.Errorf("update assessment: %w", err)
  }
  return nil
}

func (as *assessmentService) Delete(ctx context.Context, userID, assessmentID int64) error {
  existing, err := as.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return fmt.Errorf("load assessment: %w", err)
  }
  if existing == nil {
    return ErrNotFound
  }
  if err := as.assessmentRepo.Delete(ctx, nil, assessmentID, userID); err != nil {
    as.log.Error("Delete assessment failed", "error", err)
    return fmt.Errorf("delete assessment: %w", err)
  }
  return nil
}

// GetProgress reports answered/total as a percentage. The total comes
// from the type's stored count, not a live count of question rows; a
// type with zero questions reports 0 progress rather than a division
// by zero leaking into the response.
func (as *assessmentService) GetProgress(ctx context.Context, userID, assessmentID int64) (*AssessmentProgress, error) {
  assessment, err := as.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }

  assessmentType, err := as.assessmentTypeRepo.GetByID(ctx, nil, assessment.AssessmentTypeID)
  if err != nil {
    return nil, fmt.Errorf("load assessment type: %w", err)
  }
  if assessmentType == nil {
    return nil, ErrNotFound
  }

  answers, err := as.answerRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list answers: %w", err)
  }

  answered := countAnswered(answers)
  progress := 0.0
  if assessmentType.TotalQuestions > 0 {
    progress = float64(answered) / float64(assessmentType.TotalQuestions) * 100
  }
  return &AssessmentProgress{
    TotalQuestions:    assessmentType.TotalQuestions,
    AnsweredQuestions: answered,
    Progress:          progress,
  }, nil
}

// Complete recomputes every criterion score from the raw answers and
// marks the assessment completed. Re-running it on a completed
// assessment overwrites the same rows, so it is idempotent for
// unchanged answers.
//
// The criterion upserts and the status update are deliberately separate
// best-effort writes, not one transaction; a failure mid-way leaves the
// scores written so far and the assessment still in_progress.
func (as *assessmentService) Complete(ctx context.Context, userID, assessmentID int64) (*CompletionResult, error) {
  assessment, err := as.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }

  answers, err := as.answerRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list answers: %w", err)
  }
  questions, err := as.questionRepo.ListByAssessmentType(ctx, nil, assessment.AssessmentTypeID)
  if err != nil {
    return nil, fmt.Errorf("list questions: %w", err)
  }

  results, overall := aggregateScores(questions, answers)

  for _, result := range results {
    score := &types.CriterionScore{
      AssessmentID:      assessmentID,
      CriterionNumber:   result.CriterionNumber,
      CriterionName:     result.CriterionName,
      AverageScore:      result.AverageScore,
      TotalQuestions:    result.TotalQuestions,
      AnsweredQuestions: result.AnsweredQuestions,
    }
    if err := as.criterionScoreRepo.Upsert(ctx, nil, score); err != nil {
      as.log.Error("Upsert criterion score failed", "criterion", result.CriterionNumber, "error", err)
      return nil, fmt.Errorf("upsert criterion score %d: %w", result.CriterionNumber, err)
    }
  }

  now := time.Now()
  if err := as.assessmentRepo.Update(ctx, nil, assessmentID, userID, map[string]interface{}{
    "status":       types.AssessmentStatusCompleted,
    "completed_at": now,
    "total_score":  overall,
  }); err != nil {
    as.log.Error("Mark assessment completed failed", "error", err)
    return nil, fmt.Errorf("mark assessment completed: %w", err)
  }

  return &CompletionResult{TotalScore: overall}, nil
}
