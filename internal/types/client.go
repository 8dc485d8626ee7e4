package types

import (
  "time"
)

type Client struct {
  ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
  UserID        int64     `gorm:"index;not null;column:user_id" json:"user_id"`
  User          *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
  CompanyName   string    `gorm:"not null;size:255;column:company_name" json:"company_name"`
  Industry      string    `gorm:"size:255;column:industry" json:"industry"`
  ContactName   string    `gorm:"size:255;column:contact_name" json:"contact_name"`
  ContactEmail  string    `gorm:"size:320;column:contact_email" json:"contact_email"`
  ContactPhone  string    `gorm:"size:50;column:contact_phone" json:"contact_phone"`
  Notes         string    `gorm:"column:notes" json:"notes"`
  CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
  UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string {
  return "clients"
}
