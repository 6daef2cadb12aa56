package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/reviewme/reviewme/internal/review/internal/domain"
	"github.com/reviewme/reviewme/internal/review/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./review.go -package=repomocks -destination=../../mocks/repository/review.mock.go ReviewRepository
type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) (int64, error)
	FindByGroupID(ctx context.Context, groupID int64) ([]domain.Review, error)
	FindByID(ctx context.Context, id int64) (domain.Review, error)
}

type reviewRepository struct {
	dao dao.ReviewDAO
}

func NewReviewRepository(d dao.ReviewDAO) ReviewRepository {
	return &reviewRepository{
		dao: d,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review domain.Review) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(review))
}

func (r *reviewRepository) FindByGroupID(ctx context.Context, groupID int64) ([]domain.Review, error) {
	reviews, err := r.dao.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return slice.Map(reviews, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (domain.Review, error) {
	review, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Review{}, err
	}
	return r.toDomain(review), nil
}

func (r *reviewRepository) toEntity(review domain.Review) dao.Review {
	return dao.Review{
		ID:            review.ID,
		ReviewGroupID: review.ReviewGroupID,
		TemplateID:    review.TemplateID,
		Answers: sqlx.JsonColumn[[]dao.Answer]{
			Valid: true,
			Val: slice.Map(review.Answers, func(idx int, src domain.Answer) dao.Answer {
				return dao.Answer{
					QuestionID:        src.QuestionID,
					SelectedOptionIDs: src.SelectedOptionIDs,
					Text:              src.Text,
				}
			}),
		},
	}
}

func (r *reviewRepository) toDomain(review dao.Review) domain.Review {
	return domain.Review{
		ID:            review.ID,
		ReviewGroupID: review.ReviewGroupID,
		TemplateID:    review.TemplateID,
		Answers: slice.Map(review.Answers.Val, func(idx int, src dao.Answer) domain.Answer {
			return domain.Answer{
				QuestionID:        src.QuestionID,
				SelectedOptionIDs: src.SelectedOptionIDs,
				Text:              src.Text,
			}
		}),
		CreatedAt: time.UnixMilli(review.Ctime),
	}
}
