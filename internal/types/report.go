package types

import (
  "time"
)

type Report struct {
  ID               int64       `gorm:"primaryKey;autoIncrement" json:"id"`
  AssessmentID     int64       `gorm:"index;not null;column:assessment_id" json:"assessment_id"`
  Assessment       *Assessment `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssessmentID;references:ID" json:"-"`
  FileURL          string      `gorm:"not null;column:file_url" json:"file_url"`
  FileKey          string      `gorm:"not null;column:file_key" json:"file_key"`
  FileSize         *int        `gorm:"column:file_size" json:"file_size"`
  AnalysisSummary  string      `gorm:"column:analysis_summary" json:"analysis_summary"`
  ActionItems      string      `gorm:"column:action_items" json:"action_items"`
  CreatedAt        time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Report) TableName() string {
  return "reports"
}
