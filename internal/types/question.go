package types

import (
  "time"
)

type Question struct {
  ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
  AssessmentTypeID  int64           `gorm:"index;not null;column:assessment_type_id" json:"assessment_type_id"`
  AssessmentType    *AssessmentType `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentTypeID;references:ID" json:"-"`
  CriterionNumber   int             `gorm:"not null;column:criterion_number" json:"criterion_number"`
  CriterionName     string          `gorm:"not null;size:100;column:criterion_name" json:"criterion_name"`
  QuestionNumber    int             `gorm:"not null;column:question_number" json:"question_number"`
  QuestionText      string          `gorm:"not null;column:question_text" json:"question_text"`
  CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Question) TableName() string {
  return "questions"
}
