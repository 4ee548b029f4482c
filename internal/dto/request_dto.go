package dto

// CreateUserRequest registers a new user with a plaintext password; the service
// stores only the bcrypt hash.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN AUDITOR"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateQuestionRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnswerItem is one (question, answer text) pair in a batch submission.
type AnswerItem struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Text       string `json:"answer_text" binding:"required"`
}

// SingleAnswerRequest submits one answer for a question assigned to the auditor.
type SingleAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Text       string `json:"answer_text" binding:"required"`
}

type UpdateAnswerRequest struct {
	Text string `json:"answer_text" binding:"required"`
}

// UpdateAnswerStatusRequest carries the full answer payload plus the desired
// assignment status; the stored answer is replaced, not patched.
type UpdateAnswerStatusRequest struct {
	Text     string `json:"answer_text" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
	Comments string `json:"comments"`
}
