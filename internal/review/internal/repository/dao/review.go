package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ReviewDAO interface {
	Insert(ctx context.Context, review Review) (int64, error)
	// FindByGroupID 某个回顾组收到的全部评价，新的在前
	FindByGroupID(ctx context.Context, groupID int64) ([]Review, error)
	FindByID(ctx context.Context, id int64) (Review, error)
}

type reviewDAO struct {
	db *egorm.Component
}

func NewReviewDAO(db *egorm.Component) ReviewDAO {
	return &reviewDAO{
		db: db,
	}
}

func (r *reviewDAO) Insert(ctx context.Context, review Review) (int64, error) {
	now := time.Now().UnixMilli()
	review.Ctime = now
	review.Utime = now
	err := r.db.WithContext(ctx).Create(&review).Error
	return review.ID, err
}

func (r *reviewDAO) FindByGroupID(ctx context.Context, groupID int64) ([]Review, error) {
	var reviews []Review
	err := r.db.WithContext(ctx).
		Where("review_group_id = ?", groupID).
		Order("id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewDAO) FindByID(ctx context.Context, id int64) (Review, error) {
	var review Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		return Review{}, err
	}
	return review, nil
}

type Review struct {
	ID            int64                     `gorm:"primaryKey,autoIncrement"`
	ReviewGroupID int64                     `gorm:"index;not null"`
	TemplateID    int64                     `gorm:"not null"`
	Answers       sqlx.JsonColumn[[]Answer] `gorm:"type:json;comment:作答内容JSON"`
	Ctime         int64
	Utime         int64
}

func (Review) TableName() string {
	return "reviews"
}

type Answer struct {
	QuestionID        int64   `json:"questionId"`
	SelectedOptionIDs []int64 `json:"selectedOptionIds,omitempty"`
	Text              string  `json:"text,omitempty"`
}
