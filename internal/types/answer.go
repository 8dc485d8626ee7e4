package types

import (
  "time"
)

// Score is nil for a skipped question, otherwise 1-5.
type Answer struct {
  ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
  AssessmentID  int64       `gorm:"not null;uniqueIndex:idx_answers_assessment_question;column:assessment_id" json:"assessment_id"`
  Assessment    *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"-"`
  QuestionID    int64       `gorm:"not null;uniqueIndex:idx_answers_assessment_question;column:question_id" json:"question_id"`
  Question      *Question   `gorm:"foreignKey:QuestionID;references:ID" json:"-"`
  Score         *int        `gorm:"column:score" json:"score"`
  Notes         string      `gorm:"column:notes" json:"notes"`
  CreatedAt     time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
  UpdatedAt     time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Answer) TableName() string {
  return "answers"
}
