package repository

import (
	"github.com/tdhoang/auditflow/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	Update(answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	FindByAuditor(auditorID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	// Save updates all fields, including the replaced answer text
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.
		Preload("Assignment.Question").
		Preload("Assignment.Auditor").
		Preload("Auditor").
		First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByAuditor(auditorID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Preload("Assignment.Question").
		Preload("Assignment.Auditor").
		Preload("Auditor").
		Where("auditor_id = ?", auditorID).
		Order("created_at asc").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
