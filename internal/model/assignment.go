package model

import (
	"time"
)

type AssignmentStatus string

const (
	StatusPending  AssignmentStatus = "PENDING"
	StatusAnswered AssignmentStatus = "ANSWERED"
	StatusAccepted AssignmentStatus = "ACCEPTED"
	StatusRejected AssignmentStatus = "REJECTED"
)

// QuestionAssignment binds one question to one auditor. The unique index on
// (auditor_id, question_id) is what makes the assign check-then-create safe
// against concurrent duplicates.
type QuestionAssignment struct {
	ID         uint             `gorm:"primarykey" json:"id"`
	QuestionID uint             `json:"question_id" gorm:"not null;uniqueIndex:idx_auditor_question"`
	Question   Question         `json:"question" gorm:"foreignKey:QuestionID"`
	AuditorID  uint             `json:"auditor_id" gorm:"not null;uniqueIndex:idx_auditor_question"`
	Auditor    User             `json:"auditor" gorm:"foreignKey:AuditorID"`
	Status     AssignmentStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
