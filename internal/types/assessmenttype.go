package types

import (
  "time"
)

type AssessmentType struct {
  ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
  Name            string    `gorm:"uniqueIndex;not null;size:255;column:name" json:"name"`
  Description     string    `gorm:"column:description" json:"description"`
  TotalQuestions  int       `gorm:"not null;column:total_questions" json:"total_questions"`
  CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (AssessmentType) TableName() string {
  return "assessment_types"
}
