package dto

import (
	"time"

	"github.com/tdhoang/auditflow/internal/model"
)

// ApiResponse is the envelope for every mutating endpoint. Service failures are
// reported as {success:false, message} with HTTP 400.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type LoginResponse struct {
	Token  string     `json:"token"`
	Role   model.Role `json:"role"`
	UserID uint       `json:"userId"`
}

type UserResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AssignmentResponse struct {
	ID        uint                   `json:"id"`
	Question  QuestionResponse       `json:"question"`
	Auditor   UserResponse           `json:"auditor"`
	Status    model.AssignmentStatus `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}

type AnswerResponse struct {
	ID         uint               `json:"id"`
	Text       string             `json:"answer_text"`
	AuditorID  uint               `json:"auditor_id"`
	Assignment AssignmentResponse `json:"assignment"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type ReviewResponse struct {
	ID         uint                   `json:"id"`
	AnswerID   uint                   `json:"answer_id"`
	ReviewedBy UserResponse           `json:"reviewed_by"`
	Status     model.AssignmentStatus `json:"status"`
	Comments   string                 `json:"comments,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
