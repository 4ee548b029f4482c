package repository

import (
	"github.com/tdhoang/auditflow/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.AnswerReview) error
	FindByAnswer(answerID uint) ([]model.AnswerReview, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.AnswerReview) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByAnswer(answerID uint) ([]model.AnswerReview, error) {
	var reviews []model.AnswerReview
	err := r.db.Preload("ReviewedBy").
		Where("answer_id = ?", answerID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
