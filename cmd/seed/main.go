package main

import (
  "context"
  "encoding/json"
  "fmt"
  "os"
  "github.com/joho/godotenv"
  "github.com/yungbote/assessment-backend/internal/db"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
  "github.com/yungbote/assessment-backend/internal/utils"
)

// seedQuestion matches the shape of the extracted questions JSON.
type seedQuestion struct {
  Assessment       string `json:"assessment"`
  CriterionNumber  int    `json:"criterion_number"`
  CriterionName    string `json:"criterion_name"`
  QuestionNumber   int    `json:"question_number"`
  QuestionText     string `json:"question_text"`
}

var assessmentDescriptions = map[string]string{
  "Business Control":       "Comprehensive assessment of business control practices, process architecture, design and quality management. Covers 7 key criteria: Recognize, Define, Measure, Analyze, Improve, Control, and Sustain.",
  "IT Management Services":  "Assessment framework for IT management services, infrastructure, and technology governance. Evaluates IT service delivery, management practices, and alignment with business objectives.",
  "Workplace Strategy":      "Strategic assessment of workplace design, culture, and operational effectiveness. Examines workplace environment, employee engagement, and organizational productivity.",
}

func assessmentDescription(name string) string {
  if description, ok := assessmentDescriptions[name]; ok {
    return description
  }
  return fmt.Sprintf("Professional assessment framework for %s", name)
}

func main() {
  _ = godotenv.Load()

  log, err := logger.New(os.Getenv("LOG_MODE"))
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  questionsPath := utils.GetEnv("SEED_QUESTIONS_FILE", "assessment_questions.json", log)

  raw, err := os.ReadFile(questionsPath)
  if err != nil {
    log.Fatal("Failed to read questions file", "path", questionsPath, "error", err)
  }
  var seedQuestions []seedQuestion
  if err := json.Unmarshal(raw, &seedQuestions); err != nil {
    log.Fatal("Failed to parse questions file", "path", questionsPath, "error", err)
  }
  log.Info("Loaded questions from JSON", "count", len(seedQuestions))

  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err := postgresService.AutoMigrateAll(); err != nil {
    log.Fatal("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  assessmentTypeRepo := repos.NewAssessmentTypeRepo(thePG, log)
  questionRepo := repos.NewQuestionRepo(thePG, log)

  // Group questions by assessment type, keeping file order
  grouped := map[string][]seedQuestion{}
  var order []string
  for _, question := range seedQuestions {
    if _, ok := grouped[question.Assessment]; !ok {
      order = append(order, question.Assessment)
    }
    grouped[question.Assessment] = append(grouped[question.Assessment], question)
  }

  ctx := context.Background()
  totalInserted := 0
  for _, name := range order {
    questions := grouped[name]

    // Skip types that were seeded on a previous run
    existing, err := assessmentTypeRepo.GetByName(ctx, nil, name)
    if err != nil {
      log.Fatal("Failed to check assessment type", "name", name, "error", err)
    }
    if existing != nil {
      log.Info("Assessment type already seeded, skipping", "name", name)
      continue
    }

    assessmentType, err := assessmentTypeRepo.Create(ctx, nil, &types.AssessmentType{
      Name:           name,
      Description:    assessmentDescription(name),
      TotalQuestions: len(questions),
    })
    if err != nil {
      log.Fatal("Failed to create assessment type", "name", name, "error", err)
    }
    log.Info("Created assessment type", "name", name, "id", assessmentType.ID, "questions", len(questions))

    rows := make([]*types.Question, 0, len(questions))
    for _, question := range questions {
      rows = append(rows, &types.Question{
        AssessmentTypeID: assessmentType.ID,
        CriterionNumber:  question.CriterionNumber,
        CriterionName:    question.CriterionName,
        QuestionNumber:   question.QuestionNumber,
        QuestionText:     question.QuestionText,
      })
    }
    if _, err := questionRepo.Create(ctx, nil, rows); err != nil {
      log.Fatal("Failed to insert questions", "name", name, "error", err)
    }
    totalInserted += len(rows)
  }

  log.Info("Database seeding completed", "assessment_types", len(order), "questions", totalInserted)
}
