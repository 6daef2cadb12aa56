package repository

import (
	"context"

	"github.com/reviewme/reviewme/internal/group/internal/domain"
	"github.com/reviewme/reviewme/internal/group/internal/repository/dao"
)

var (
	ErrRecordNotFound       = dao.ErrRecordNotFound
	ErrDuplicateRequestCode = dao.ErrDuplicateRequestCode
)

//go:generate mockgen -source=./review_group.go -package=repomocks -destination=../../mocks/repository/review_group.mock.go ReviewGroupRepository
type ReviewGroupRepository interface {
	Create(ctx context.Context, g domain.ReviewGroup) (int64, error)
	FindByRequestCode(ctx context.Context, code string) (domain.ReviewGroup, error)
	ExistsByRequestCode(ctx context.Context, code string) (bool, error)
	FindByCodes(ctx context.Context, requestCode, accessCode string) (domain.ReviewGroup, error)
	LatestTemplateID(ctx context.Context) (int64, error)
}

type reviewGroupRepository struct {
	dao dao.ReviewGroupDAO
}

func NewReviewGroupRepository(d dao.ReviewGroupDAO) ReviewGroupRepository {
	return &reviewGroupRepository{
		dao: d,
	}
}

func (r *reviewGroupRepository) Create(ctx context.Context, g domain.ReviewGroup) (int64, error) {
	return r.dao.Insert(ctx, toEntity(g))
}

func (r *reviewGroupRepository) FindByRequestCode(ctx context.Context, code string) (domain.ReviewGroup, error) {
	g, err := r.dao.FindByRequestCode(ctx, code)
	if err != nil {
		return domain.ReviewGroup{}, err
	}
	return toDomain(g), nil
}

func (r *reviewGroupRepository) ExistsByRequestCode(ctx context.Context, code string) (bool, error) {
	return r.dao.ExistsByRequestCode(ctx, code)
}

func (r *reviewGroupRepository) FindByCodes(ctx context.Context, requestCode, accessCode string) (domain.ReviewGroup, error) {
	g, err := r.dao.FindByCodes(ctx, requestCode, accessCode)
	if err != nil {
		return domain.ReviewGroup{}, err
	}
	return toDomain(g), nil
}

func (r *reviewGroupRepository) LatestTemplateID(ctx context.Context) (int64, error) {
	return r.dao.LatestTemplateID(ctx)
}

func toEntity(g domain.ReviewGroup) dao.ReviewGroup {
	return dao.ReviewGroup{
		ID:                g.ID,
		Reviewee:          g.Reviewee,
		ProjectName:       g.ProjectName,
		ReviewRequestCode: g.ReviewRequestCode,
		GroupAccessCode:   g.GroupAccessCode,
		TemplateID:        g.TemplateID,
	}
}

func toDomain(g dao.ReviewGroup) domain.ReviewGroup {
	return domain.ReviewGroup{
		ID:                g.ID,
		Reviewee:          g.Reviewee,
		ProjectName:       g.ProjectName,
		ReviewRequestCode: g.ReviewRequestCode,
		GroupAccessCode:   g.GroupAccessCode,
		TemplateID:        g.TemplateID,
		Ctime:             g.Ctime,
		Utime:             g.Utime,
	}
}
