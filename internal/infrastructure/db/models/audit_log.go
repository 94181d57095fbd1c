package models

import "time"

type AuditLog struct {
	ID         int64   `gorm:"primaryKey"`
	Action     string  `gorm:"size:32;not null"`
	EntityType string  `gorm:"size:32;not null"`
	EntityID   *string `gorm:"type:uuid"`
	ActorID    *string `gorm:"type:uuid"`
	Detail     string  `gorm:"type:text"`
	CreatedAt  time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
