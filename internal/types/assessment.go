package types

import (
  "time"
)

const (
  AssessmentStatusInProgress = "in_progress"
  AssessmentStatusCompleted  = "completed"
)

type Assessment struct {
  ID                int64           `gorm:"primaryKey;autoIncrement" json:"id"`
  ClientID          int64           `gorm:"index;not null;column:client_id" json:"client_id"`
  Client            *Client         `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClientID;references:ID" json:"-"`
  AssessmentTypeID  int64           `gorm:"index;not null;column:assessment_type_id" json:"assessment_type_id"`
  AssessmentType    *AssessmentType `gorm:"foreignKey:AssessmentTypeID;references:ID" json:"-"`
  UserID            int64           `gorm:"index;not null;column:user_id" json:"user_id"`
  Title             string          `gorm:"not null;size:255;column:title" json:"title"`
  Status            string          `gorm:"not null;default:in_progress;size:16;column:status" json:"status"`
  StartedAt         time.Time       `gorm:"not null;autoCreateTime;column:started_at" json:"started_at"`
  CompletedAt       *time.Time      `gorm:"column:completed_at" json:"completed_at"`
  TotalScore        *float64        `gorm:"column:total_score" json:"total_score"`
  CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Assessment) TableName() string {
  return "assessments"
}
