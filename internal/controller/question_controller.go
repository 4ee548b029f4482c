package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/middleware"
	"github.com/tdhoang/auditflow/internal/service"
)

type QuestionController struct {
	workflow service.WorkflowService
}

func NewQuestionController(workflow service.WorkflowService) *QuestionController {
	return &QuestionController{workflow: workflow}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question text"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Security BearerAuth
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	question, err := c.workflow.CreateQuestion(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{Success: true, Message: "Question created successfully", Data: question})
}

// GetQuestions godoc
// @Summary List all questions
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Security BearerAuth
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	questions, err := c.workflow.GetAllQuestions()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// AssignQuestion godoc
// @Summary (Admin) Assign a question to an auditor
// @Description Creates a PENDING assignment. Fails if the pair is already assigned.
// @Tags Questions
// @Produce json
// @Param userId path int true "Auditor user ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse "Already assigned, or user/question missing"
// @Security BearerAuth
// @Router /questions/assign-question/{userId}/{questionId} [post]
func (c *QuestionController) AssignQuestion(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "userId")
	if !ok {
		return
	}
	questionID, ok := parseUintParam(ctx, "questionId")
	if !ok {
		return
	}

	assignment, err := c.workflow.AssignQuestion(userID, questionID)
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Uint("questionID", questionID).Msg("AssignQuestion failed")
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{
		Success: true,
		Message: fmt.Sprintf("Question %d assigned to User %d", questionID, userID),
		Data:    assignment,
	})
}

// GetAssignedQuestions godoc
// @Summary List questions assigned to a user
// @Tags Questions
// @Produce json
// @Param userId path int true "Auditor user ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ApiResponse "User not found"
// @Security BearerAuth
// @Router /questions/assigned-questions/{userId} [get]
func (c *QuestionController) GetAssignedQuestions(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "userId")
	if !ok {
		return
	}
	questions, err := c.workflow.GetAssignedQuestions(userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// SubmitAnswers godoc
// @Summary (Auditor) Submit a batch of answers
// @Description One answer per (question_id, answer_text) pair. Each submit moves the assignment to ANSWERED. Earlier items are not rolled back when a later item fails.
// @Tags Questions
// @Accept json
// @Produce json
// @Param userId path int true "Auditor user ID"
// @Param answers body []dto.AnswerItem true "Answers"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse
// @Security BearerAuth
// @Router /questions/submit-answers/{userId} [post]
func (c *QuestionController) SubmitAnswers(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "userId")
	if !ok {
		return
	}

	var items []dto.AnswerItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := c.workflow.SubmitAnswers(userID, items); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{Success: true, Message: fmt.Sprintf("Answers submitted for User %d", userID)})
}

// SubmitSingleAnswer godoc
// @Summary (Auditor) Submit a single answer
// @Tags Questions
// @Accept json
// @Produce json
// @Param userId path int true "Auditor user ID"
// @Param answer body dto.SingleAnswerRequest true "Answer"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse "Question not assigned to user"
// @Security BearerAuth
// @Router /questions/submit-answers/single/{userId} [post]
func (c *QuestionController) SubmitSingleAnswer(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "userId")
	if !ok {
		return
	}

	var req dto.SingleAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	answer, err := c.workflow.SubmitSingleAnswer(userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{
		Success: true,
		Message: fmt.Sprintf("Answers submitted for User %d", userID),
		Data:    answer,
	})
}

// ReviewAnswers godoc
// @Summary List all answers authored by a user
// @Description Used by admins and auditors to see submission history; each answer carries its assignment and status.
// @Tags Questions
// @Produce json
// @Param userId path int true "Auditor user ID"
// @Success 200 {array} dto.AnswerResponse
// @Failure 400 {object} dto.ApiResponse "User not found"
// @Security BearerAuth
// @Router /questions/review-answers/{userId} [get]
func (c *QuestionController) ReviewAnswers(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "userId")
	if !ok {
		return
	}
	answers, err := c.workflow.ReviewAnswers(userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, answers)
}

// UpdateAnswer godoc
// @Summary Update an answer's text
// @Tags Questions
// @Accept json
// @Produce json
// @Param answerId path int true "Answer ID"
// @Param answer body dto.UpdateAnswerRequest true "New text"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse "Answer not found"
// @Security BearerAuth
// @Router /questions/answer/{answerId} [put]
func (c *QuestionController) UpdateAnswer(ctx *gin.Context) {
	answerID, ok := parseUintParam(ctx, "answerId")
	if !ok {
		return
	}

	var req dto.UpdateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	answer, err := c.workflow.UpdateAnswer(answerID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{
		Success: true,
		Message: fmt.Sprintf("Answer %d updated successfully", answerID),
		Data:    answer,
	})
}

// UpdateAnswerStatus godoc
// @Summary Accept or reject an answer
// @Description Writes the desired status onto the answer's assignment and replaces the stored answer payload. Callers resend the full answer text, not a partial patch.
// @Tags Questions
// @Accept json
// @Produce json
// @Param answerId path int true "Answer ID"
// @Param answer body dto.UpdateAnswerStatusRequest true "Full answer payload with desired status"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse "Answer not found"
// @Security BearerAuth
// @Router /questions/answer/status/{answerId} [put]
func (c *QuestionController) UpdateAnswerStatus(ctx *gin.Context) {
	answerID, ok := parseUintParam(ctx, "answerId")
	if !ok {
		return
	}

	var req dto.UpdateAnswerStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ApiResponse{Success: false, Message: "Invalid request body"})
		return
	}

	reviewerID := ctx.GetUint(middleware.ContextUserID)
	answer, err := c.workflow.UpdateAnswerStatus(answerID, reviewerID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{
		Success: true,
		Message: fmt.Sprintf("Answer %d updated successfully", answerID),
		Data:    answer,
	})
}

// GetAnswerReviews godoc
// @Summary List the review history of an answer
// @Tags Questions
// @Produce json
// @Param answerId path int true "Answer ID"
// @Success 200 {array} dto.ReviewResponse
// @Failure 400 {object} dto.ApiResponse "Answer not found"
// @Security BearerAuth
// @Router /questions/answer/reviews/{answerId} [get]
func (c *QuestionController) GetAnswerReviews(ctx *gin.Context) {
	answerID, ok := parseUintParam(ctx, "answerId")
	if !ok {
		return
	}
	reviews, err := c.workflow.GetAnswerReviews(answerID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// GetAllAssignments godoc
// @Summary (Admin) List all assignments
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.AssignmentResponse
// @Security BearerAuth
// @Router /questions/assignments [get]
func (c *QuestionController) GetAllAssignments(ctx *gin.Context) {
	assignments, err := c.workflow.GetAllAssignments()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Refuses to delete a question that still has assignments.
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.ApiResponse
// @Failure 400 {object} dto.ApiResponse "Question not found or still assigned"
// @Security BearerAuth
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.workflow.DeleteQuestion(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ApiResponse{Success: true, Message: "Question deleted successfully"})
}
