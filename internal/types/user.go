package types

import (
  "time"
)

const (
  RoleUser  = "user"
  RoleAdmin = "admin"
)

type User struct {
  ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
  OpenID        string    `gorm:"uniqueIndex;not null;size:64;column:open_id" json:"open_id"`
  Name          string    `gorm:"column:name" json:"name"`
  Email         string    `gorm:"size:320;column:email" json:"email"`
  LoginMethod   string    `gorm:"size:64;column:login_method" json:"login_method"`
  Role          string    `gorm:"not null;default:user;size:16;column:role" json:"role"`
  LastSignedIn  time.Time `gorm:"not null;autoCreateTime;column:last_signed_in" json:"last_signed_in"`
  CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
  UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
  return "users"
}
