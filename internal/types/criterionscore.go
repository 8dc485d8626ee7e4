package types

import (
  "time"
)

// One row per (assessment, criterion). Recomputed wholesale on every
// completion, so the pair carries a unique index for the upsert.
type CriterionScore struct {
  ID                 int64       `gorm:"primaryKey;autoIncrement" json:"id"`
  AssessmentID       int64       `gorm:"not null;uniqueIndex:idx_criterion_scores_assessment_criterion;column:assessment_id" json:"assessment_id"`
  Assessment         *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"-"`
  CriterionNumber    int         `gorm:"not null;uniqueIndex:idx_criterion_scores_assessment_criterion;column:criterion_number" json:"criterion_number"`
  CriterionName      string      `gorm:"not null;size:100;column:criterion_name" json:"criterion_name"`
  AverageScore       float64     `gorm:"not null;column:average_score" json:"average_score"`
  TotalQuestions     int         `gorm:"not null;column:total_questions" json:"total_questions"`
  AnsweredQuestions  int         `gorm:"not null;column:answered_questions" json:"answered_questions"`
  CreatedAt          time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CriterionScore) TableName() string {
  return "criterion_scores"
}
