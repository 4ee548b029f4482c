package repository

import (
	"github.com/tdhoang/auditflow/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.QuestionAssignment) error
	Update(assignment *model.QuestionAssignment) error
	FindByID(id uint) (*model.QuestionAssignment, error)
	FindByAuditorAndQuestion(auditorID, questionID uint) (*model.QuestionAssignment, error)
	FindByAuditor(auditorID uint) ([]model.QuestionAssignment, error)
	FindAll() ([]model.QuestionAssignment, error)
	CountByQuestion(questionID uint) (int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.QuestionAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) Update(assignment *model.QuestionAssignment) error {
	return r.db.Save(assignment).Error
}

func (r *assignmentRepository) FindByID(id uint) (*model.QuestionAssignment, error) {
	var assignment model.QuestionAssignment
	if err := r.db.Preload("Question").Preload("Auditor").First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByAuditorAndQuestion(auditorID, questionID uint) (*model.QuestionAssignment, error) {
	var assignment model.QuestionAssignment
	err := r.db.Preload("Question").Preload("Auditor").
		Where("auditor_id = ? AND question_id = ?", auditorID, questionID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByAuditor(auditorID uint) ([]model.QuestionAssignment, error) {
	var assignments []model.QuestionAssignment
	err := r.db.Preload("Question").
		Where("auditor_id = ?", auditorID).
		Order("created_at asc").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) FindAll() ([]model.QuestionAssignment, error) {
	var assignments []model.QuestionAssignment
	err := r.db.Preload("Question").Preload("Auditor").
		Order("created_at asc").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) CountByQuestion(questionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuestionAssignment{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}
