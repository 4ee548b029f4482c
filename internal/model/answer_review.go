package model

import (
	"time"
)

// AnswerReview records one accept/reject action against an answer.
// The authoritative status still lives on the QuestionAssignment; reviews
// are the audit trail of who decided what, and when.
type AnswerReview struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	AnswerID     uint             `json:"answer_id" gorm:"not null;index"`
	Answer       Answer           `json:"-" gorm:"foreignKey:AnswerID"`
	ReviewedByID uint             `json:"reviewed_by_id" gorm:"not null"`
	ReviewedBy   User             `json:"reviewed_by,omitempty" gorm:"foreignKey:ReviewedByID"`
	Status       AssignmentStatus `json:"status" gorm:"type:varchar(20);not null"`
	Comments     string           `json:"comments,omitempty" gorm:"type:text"`
	CreatedAt    time.Time        `json:"created_at"`
}
