package model

import (
	"time"
)

type Answer struct {
	ID           uint               `gorm:"primarykey" json:"id"`
	AssignmentID uint               `json:"assignment_id" gorm:"not null;index"`
	Assignment   QuestionAssignment `json:"assignment" gorm:"foreignKey:AssignmentID"`
	AuditorID    uint               `json:"auditor_id" gorm:"not null;index"`
	Auditor      User               `json:"auditor,omitempty" gorm:"foreignKey:AuditorID"`
	Text         string             `json:"answer_text" gorm:"type:text;not null"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
