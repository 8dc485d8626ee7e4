package services

import (
  "github.com/yungbote/assessment-backend/internal/types"
)

type criterionResult struct {
  CriterionNumber    int
  CriterionName      string
  AverageScore       float64
  TotalQuestions     int
  AnsweredQuestions  int
}

// aggregateScores groups the type's questions by criterion, averages the
// answered scores within each criterion, and averages those averages into
// the overall score.
//
// A criterion with no answered questions gets average 0 but is excluded
// from the overall mean entirely; it is not counted as a zero in the
// denominator. Answers pointing at questions outside the question set are
// ignored. With no answered questions at all the overall score is 0.
func aggregateScores(questions []*types.Question, answers []*types.Answer) ([]criterionResult, float64) {
  type criterionData struct {
    name   string
    total  int
    scores []int
  }

  // 1) Group questions by criterion, keeping first-seen order
  byCriterion := map[int]*criterionData{}
  var order []int
  questionByID := map[int64]*types.Question{}
  for _, question := range questions {
    data, ok := byCriterion[question.CriterionNumber]
    if !ok {
      data = &criterionData{name: question.CriterionName}
      byCriterion[question.CriterionNumber] = data
      order = append(order, question.CriterionNumber)
    }
    data.total++
    questionByID[question.ID] = question
  }

  // 2) Attach answered scores to their criteria
  for _, answer := range answers {
    if answer.Score == nil {
      continue
    }
    question, ok := questionByID[answer.QuestionID]
    if !ok {
      continue
    }
    data := byCriterion[question.CriterionNumber]
    data.scores = append(data.scores, *answer.Score)
  }

  // 3) Per-criterion averages, and the mean of the non-empty ones
  var results []criterionResult
  var totalScore float64
  var criterionCount int
  for _, criterionNumber := range order {
    data := byCriterion[criterionNumber]
    average := 0.0
    if len(data.scores) > 0 {
      sum := 0
      for _, score := range data.scores {
        sum += score
      }
      average = float64(sum) / float64(len(data.scores))
    }
    if average > 0 {
      totalScore += average
      criterionCount++
    }
    results = append(results, criterionResult{
      CriterionNumber:   criterionNumber,
      CriterionName:     data.name,
      AverageScore:      average,
      TotalQuestions:    data.total,
      AnsweredQuestions: len(data.scores),
    })
  }

  overall := 0.0
  if criterionCount > 0 {
    overall = totalScore / float64(criterionCount)
  }
  return results, overall
}

// countAnswered counts answers carrying a score; rows with a nil score
// are saved notes, not answers.
func countAnswered(answers []*types.Answer) int {
  count := 0
  for _, answer := range answers {
    if answer.Score != nil {
      count++
    }
  }
  return count
}
