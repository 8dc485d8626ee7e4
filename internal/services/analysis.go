package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
)

const insightsSystemPrompt = "You are a business consultant providing actionable insights."

// Generated insights live only in the response; nothing here persists
// them.
type ActionItem struct {
  Priority         string `json:"priority"`
  Title            string `json:"title"`
  Description      string `json:"description"`
  Criterion        string `json:"criterion"`
  EstimatedImpact  string `json:"estimatedImpact"`
}

type ImplementationTimeline struct {
  Immediate  []string `json:"immediate"`
  ShortTerm  []string `json:"shortTerm"`
  LongTerm   []string `json:"longTerm"`
}

type Insights struct {
  ExecutiveSummary        string                 `json:"executiveSummary"`
  KeyStrengths            []string               `json:"keyStrengths"`
  CriticalGaps            []string               `json:"criticalGaps"`
  ActionItems             []ActionItem           `json:"actionItems"`
  ImplementationTimeline  ImplementationTimeline `json:"implementationTimeline"`
}

type AnalysisService interface {
  GetScores(ctx context.Context, userID, assessmentID int64) ([]*types.CriterionScore, error)
  GenerateInsights(ctx context.Context, userID, assessmentID int64) (*Insights, error)
}

type analysisService struct {
  db                 *gorm.DB
  log                *logger.Logger
  assessmentRepo     repos.AssessmentRepo
  clientRepo         repos.ClientRepo
  assessmentTypeRepo repos.AssessmentTypeRepo
  questionRepo       repos.QuestionRepo
  answerRepo         repos.AnswerRepo
  criterionScoreRepo repos.CriterionScoreRepo
  openaiClient       OpenAIClient
}

func NewAnalysisService(
  db *gorm.DB,
  baseLog *logger.Logger,
  assessmentRepo repos.AssessmentRepo,
  clientRepo repos.ClientRepo,
  assessmentTypeRepo repos.AssessmentTypeRepo,
  questionRepo repos.QuestionRepo,
  answerRepo repos.AnswerRepo,
  criterionScoreRepo repos.CriterionScoreRepo,
  openaiClient OpenAIClient,
) AnalysisService {
  serviceLog := baseLog.With("service", "AnalysisService")
  return &analysisService{
    db:                 db,
    log:                serviceLog,
    assessmentRepo:     assessmentRepo,
    clientRepo:         clientRepo,
    assessmentTypeRepo: assessmentTypeRepo,
    questionRepo:       questionRepo,
    answerRepo:         answerRepo,
    criterionScoreRepo: criterionScoreRepo,
    openaiClient:       openaiClient,
  }
}

func (an *analysisService) GetScores(ctx context.Context, userID, assessmentID int64) ([]*types.CriterionScore, error) {
  assessment, err := an.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }
  scores, err := an.criterionScoreRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list criterion scores: %w", err)
  }
  return scores, nil
}

func (an *analysisService) GenerateInsights(ctx context.Context, userID, assessmentID int64) (*Insights, error) {
  assessment, err := an.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }

  client, err := an.clientRepo.GetByID(ctx, nil, assessment.ClientID, userID)
  if err != nil {
    return nil, fmt.Errorf("load client: %w", err)
  }
  assessmentType, err := an.assessmentTypeRepo.GetByID(ctx, nil, assessment.AssessmentTypeID)
  if err != nil {
    return nil, fmt.Errorf("load assessment type: %w", err)
  }
  criterionScores, err := an.criterionScoreRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list criterion scores: %w", err)
  }
  answers, err := an.answerRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list answers: %w", err)
  }
  questions, err := an.questionRepo.ListByAssessmentType(ctx, nil, assessment.AssessmentTypeID)
  if err != nil {
    return nil, fmt.Errorf("list questions: %w", err)
  }

  prompt := buildInsightsPrompt(assessmentType, client, criterionScores, lowScoringLines(answers, questions))

  raw, err := an.openaiClient.GenerateJSON(ctx, insightsSystemPrompt, prompt, "assessment_analysis", insightsSchema())
  if err != nil {
    an.log.Error("Insight generation failed", "assessment_id", assessmentID, "error", err)
    return nil, fmt.Errorf("generate insights: %w", err)
  }

  // Schema-constrained output; round-trip the map into the typed shape.
  encoded, err := json.Marshal(raw)
  if err != nil {
    return nil, fmt.Errorf("encode insights: %w", err)
  }
  var insights Insights
  if err := json.Unmarshal(encoded, &insights); err != nil {
    return nil, fmt.Errorf("decode insights: %w", err)
  }
  return &insights, nil
}

// lowScoringLines renders the answers scored below 3 as prompt evidence
// lines, capped at 10.
func lowScoringLines(answers []*types.Answer, questions []*types.Question) []string {
  questionByID := map[int64]*types.Question{}
  for _, question := range questions {
    questionByID[question.ID] = question
  }

  var lines []string
  for _, answer := range answers {
    if answer.Score == nil || *answer.Score >= 3 {
      continue
    }
    question, ok := questionByID[answer.QuestionID]
    if !ok {
      continue
    }
    lines = append(lines, fmt.Sprintf("- %s (Score: %d/5)", question.QuestionText, *answer.Score))
    if len(lines) == 10 {
      break
    }
  }
  return lines
}

func buildInsightsPrompt(
  assessmentType *types.AssessmentType,
  client *types.Client,
  criterionScores []*types.CriterionScore,
  lowScoring []string,
) string {
  typeName := ""
  if assessmentType != nil {
    typeName = assessmentType.Name
  }
  companyName := ""
  industry := ""
  if client != nil {
    companyName = client.CompanyName
    industry = client.Industry
  }
  if industry == "" {
    industry = "Not specified"
  }

  var scoreLines []string
  for _, score := range criterionScores {
    scoreLines = append(scoreLines, fmt.Sprintf(
      "- Criterion %d (%s): %.2f/5 (%d/%d questions answered)",
      score.CriterionNumber, score.CriterionName, score.AverageScore,
      score.AnsweredQuestions, score.TotalQuestions,
    ))
  }

  return fmt.Sprintf(`You are a business consultant analyzing assessment results.

Assessment Type: %s
Client: %s
Industry: %s

Criterion Scores (out of 5):
%s

Low-scoring questions (score < 3):
%s

Provide a comprehensive analysis in JSON format with the following structure:
{
  "executiveSummary": "2-3 paragraph summary of overall findings",
  "keyStrengths": ["strength 1", "strength 2", "strength 3"],
  "criticalGaps": ["gap 1", "gap 2", "gap 3"],
  "actionItems": [
    {
      "priority": "High|Medium|Low",
      "title": "Action item title",
      "description": "Detailed description",
      "criterion": "Criterion name",
      "estimatedImpact": "Expected impact"
    }
  ],
  "implementationTimeline": {
    "immediate": ["action 1", "action 2"],
    "shortTerm": ["action 1", "action 2"],
    "longTerm": ["action 1", "action 2"]
  }
}`, typeName, companyName, industry, strings.Join(scoreLines, "\n"), strings.Join(lowScoring, "\n"))
}

func insightsSchema() map[string]any {
  stringArray := map[string]any{
    "type":  "array",
    "items": map[string]any{"type": "string"},
  }
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "executiveSummary": map[string]any{"type": "string"},
      "keyStrengths":     stringArray,
      "criticalGaps":     stringArray,
      "actionItems": map[string]any{
        "type": "array",
        "items": map[string]any{
          "type": "object",
          "properties": map[string]any{
            "priority":        map[string]any{"type": "string"},
            "title":           map[string]any{"type": "string"},
            "description":     map[string]any{"type": "string"},
            "criterion":       map[string]any{"type": "string"},
            "estimatedImpact": map[string]any{"type": "string"},
          },
          "required":             []string{"priority", "title", "description", "criterion", "estimatedImpact"},
          "additionalProperties": false,
        },
      },
      "implementationTimeline": map[string]any{
        "type": "object",
        "properties": map[string]any{
          "immediate": stringArray,
          "shortTerm": stringArray,
          "longTerm":  stringArray,
        },
        "required":             []string{"immediate", "shortTerm", "longTerm"},
        "additionalProperties": false,
      },
    },
    "required":             []string{"executiveSummary", "keyStrengths", "criticalGaps", "actionItems", "implementationTimeline"},
    "additionalProperties": false,
  }
}
