package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/auditflow/internal/dto"
	"github.com/tdhoang/auditflow/internal/errorz"
	"github.com/tdhoang/auditflow/internal/model"
	"github.com/tdhoang/auditflow/internal/repository"
	"gorm.io/gorm"
)

// WorkflowService orchestrates the assignment lifecycle: admins assign questions
// to auditors, auditors submit answers, reviewers accept or reject. Status lives
// on the assignment; accepting or rejecting an answer mutates the parent
// QuestionAssignment, never the answer itself.
type WorkflowService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
	AssignQuestion(userID, questionID uint) (*dto.AssignmentResponse, error)
	GetAssignedQuestions(userID uint) ([]dto.QuestionResponse, error)
	SubmitAnswers(userID uint, items []dto.AnswerItem) error
	SubmitSingleAnswer(userID uint, req dto.SingleAnswerRequest) (*dto.AnswerResponse, error)
	ReviewAnswers(userID uint) ([]dto.AnswerResponse, error)
	UpdateAnswer(answerID uint, req dto.UpdateAnswerRequest) (*dto.AnswerResponse, error)
	UpdateAnswerStatus(answerID, reviewerID uint, req dto.UpdateAnswerStatusRequest) (*dto.AnswerResponse, error)
	GetAnswerReviews(answerID uint) ([]dto.ReviewResponse, error)
	GetAllAssignments() ([]dto.AssignmentResponse, error)
	DeleteQuestion(id uint) error
}

type workflowService struct {
	userRepo       repository.UserRepository
	questionRepo   repository.QuestionRepository
	assignmentRepo repository.AssignmentRepository
	answerRepo     repository.AnswerRepository
	reviewRepo     repository.ReviewRepository
}

func NewWorkflowService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	assignmentRepo repository.AssignmentRepository,
	answerRepo repository.AnswerRepository,
	reviewRepo repository.ReviewRepository,
) WorkflowService {
	return &workflowService{
		userRepo:       userRepo,
		questionRepo:   questionRepo,
		assignmentRepo: assignmentRepo,
		answerRepo:     answerRepo,
		reviewRepo:     reviewRepo,
	}
}

func (s *workflowService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{Text: req.Text}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *workflowService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *workflowService) AssignQuestion(userID, questionID uint) (*dto.AssignmentResponse, error) {
	if _, err := s.assignmentRepo.FindByAuditorAndQuestion(userID, questionID); err == nil {
		return nil, fmt.Errorf("question already assigned to this user: %w", errorz.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d %w", userID, errorz.ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d %w", questionID, errorz.ErrNotFound)
		}
		return nil, err
	}

	assignment := model.QuestionAssignment{
		QuestionID: questionID,
		AuditorID:  userID,
		Status:     model.StatusPending,
	}
	if err := s.assignmentRepo.Create(&assignment); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", questionID).Msg("Failed to create assignment")
		return nil, err
	}

	created, err := s.assignmentRepo.FindByID(assignment.ID)
	if err != nil {
		return nil, err
	}
	var resp dto.AssignmentResponse
	copier.Copy(&resp, created)
	return &resp, nil
}

func (s *workflowService) GetAssignedQuestions(userID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d %w", userID, errorz.ErrNotFound)
		}
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindByAuditor(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(assignments))
	for _, a := range assignments {
		var q dto.QuestionResponse
		copier.Copy(&q, &a.Question)
		resp = append(resp, q)
	}
	return resp, nil
}

// SubmitAnswers persists one answer per (question, text) pair and moves each
// assignment to ANSWERED. The batch is not transactional: a failing item does
// not roll back answers already written for earlier items.
func (s *workflowService) SubmitAnswers(userID uint, items []dto.AnswerItem) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d %w", userID, errorz.ErrNotFound)
		}
		return err
	}

	for _, item := range items {
		if _, err := s.submitAnswer(userID, item.QuestionID, item.Text); err != nil {
			return err
		}
	}
	return nil
}

func (s *workflowService) SubmitSingleAnswer(userID uint, req dto.SingleAnswerRequest) (*dto.AnswerResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d %w", userID, errorz.ErrNotFound)
		}
		return nil, err
	}

	answer, err := s.submitAnswer(userID, req.QuestionID, req.Text)
	if err != nil {
		return nil, err
	}
	return s.answerResponse(answer.ID)
}

// submitAnswer resolves the assignment for (auditor, question), creates the
// answer bound to it and transitions the assignment to ANSWERED.
func (s *workflowService) submitAnswer(userID, questionID uint, text string) (*model.Answer, error) {
	assignment, err := s.assignmentRepo.FindByAuditorAndQuestion(userID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %d not assigned to user %d: %w", questionID, userID, errorz.ErrConflict)
		}
		return nil, err
	}

	answer := model.Answer{
		AssignmentID: assignment.ID,
		AuditorID:    userID,
		Text:         text,
	}
	if err := s.answerRepo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", questionID).Msg("Failed to create answer")
		return nil, err
	}

	assignment.Status = model.StatusAnswered
	if err := s.assignmentRepo.Update(assignment); err != nil {
		log.Error().Err(err).Uint("assignmentID", assignment.ID).Msg("Failed to mark assignment as answered")
		return nil, err
	}
	return &answer, nil
}

func (s *workflowService) ReviewAnswers(userID uint) ([]dto.AnswerResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d %w", userID, errorz.ErrNotFound)
		}
		return nil, err
	}

	answers, err := s.answerRepo.FindByAuditor(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AnswerResponse, 0, len(answers))
	copier.Copy(&resp, &answers)
	return resp, nil
}

func (s *workflowService) UpdateAnswer(answerID uint, req dto.UpdateAnswerRequest) (*dto.AnswerResponse, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer %d %w", answerID, errorz.ErrNotFound)
		}
		return nil, err
	}

	// Only the text is mutable here; assignment and auditor stay as they are.
	answer.Text = req.Text
	if err := s.answerRepo.Update(answer); err != nil {
		return nil, err
	}
	return s.answerResponse(answerID)
}

// UpdateAnswerStatus writes the desired status onto the answer's current
// assignment, replaces the stored answer text with the caller-supplied payload
// and records an AnswerReview row for the audit trail.
func (s *workflowService) UpdateAnswerStatus(answerID, reviewerID uint, req dto.UpdateAnswerStatusRequest) (*dto.AnswerResponse, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer %d %w", answerID, errorz.ErrNotFound)
		}
		return nil, err
	}

	status := model.AssignmentStatus(req.Status)
	answer.Assignment.Status = status
	if err := s.assignmentRepo.Update(&answer.Assignment); err != nil {
		log.Error().Err(err).Uint("assignmentID", answer.AssignmentID).Msg("Failed to update assignment status")
		return nil, err
	}

	answer.Text = req.Text
	if err := s.answerRepo.Update(answer); err != nil {
		return nil, err
	}

	review := model.AnswerReview{
		AnswerID:     answerID,
		ReviewedByID: reviewerID,
		Status:       status,
		Comments:     req.Comments,
	}
	if err := s.reviewRepo.Create(&review); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("Failed to record answer review")
		return nil, err
	}

	log.Info().Uint("answerID", answerID).Uint("reviewerID", reviewerID).Str("status", req.Status).Msg("Answer reviewed")
	return s.answerResponse(answerID)
}

func (s *workflowService) GetAnswerReviews(answerID uint) ([]dto.ReviewResponse, error) {
	if _, err := s.answerRepo.FindByID(answerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("answer %d %w", answerID, errorz.ErrNotFound)
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByAnswer(answerID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReviewResponse, 0, len(reviews))
	copier.Copy(&resp, &reviews)
	return resp, nil
}

func (s *workflowService) GetAllAssignments() ([]dto.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AssignmentResponse, 0, len(assignments))
	copier.Copy(&resp, &assignments)
	return resp, nil
}

// DeleteQuestion refuses to delete a question that still has assignments;
// assignments and answers persist indefinitely, so the question must outlive them.
func (s *workflowService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question %d %w", id, errorz.ErrNotFound)
		}
		return err
	}

	count, err := s.assignmentRepo.CountByQuestion(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("question %d still has %d assignment(s): %w", id, count, errorz.ErrConflict)
	}
	return s.questionRepo.Delete(id)
}

func (s *workflowService) answerResponse(answerID uint) (*dto.AnswerResponse, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		return nil, err
	}
	var resp dto.AnswerResponse
	copier.Copy(&resp, answer)
	return &resp, nil
}
