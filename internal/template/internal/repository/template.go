package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/reviewme/reviewme/internal/template/internal/domain"
	"github.com/reviewme/reviewme/internal/template/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

// TemplateRepository 只读端口，组装器的全部查找都走这里。
// 不做缓存，保持查找顺序确定，方便测试断言调用序列。
//
//go:generate mockgen -source=./template.go -package=repomocks -destination=../../mocks/repository/template.mock.go TemplateRepository
type TemplateRepository interface {
	FindTemplateByID(ctx context.Context, id int64) (domain.Template, error)
	FindSectionByID(ctx context.Context, id int64) (domain.Section, error)
	FindQuestionByID(ctx context.Context, id int64) (domain.Question, error)
	FindOptionGroupByQuestionID(ctx context.Context, questionID int64) (domain.OptionGroup, error)
	FindOptionItemsByGroupID(ctx context.Context, groupID int64) ([]domain.OptionItem, error)
}

type templateRepository struct {
	dao dao.TemplateDAO
}

func NewTemplateRepository(d dao.TemplateDAO) TemplateRepository {
	return &templateRepository{
		dao: d,
	}
}

func (r *templateRepository) FindTemplateByID(ctx context.Context, id int64) (domain.Template, error) {
	t, err := r.dao.FindTemplateByID(ctx, id)
	if err != nil {
		return domain.Template{}, err
	}
	tss, err := r.dao.FindTemplateSections(ctx, t.ID)
	if err != nil {
		return domain.Template{}, err
	}
	return domain.Template{
		ID: t.ID,
		SectionIDs: slice.Map(tss, func(idx int, src dao.TemplateSection) int64 {
			return src.SectionID
		}),
	}, nil
}

func (r *templateRepository) FindSectionByID(ctx context.Context, id int64) (domain.Section, error) {
	s, err := r.dao.FindSectionByID(ctx, id)
	if err != nil {
		return domain.Section{}, err
	}
	sqs, err := r.dao.FindSectionQuestions(ctx, s.ID)
	if err != nil {
		return domain.Section{}, err
	}
	return domain.Section{
		ID:                 s.ID,
		Name:               s.Name,
		VisibleType:        domain.VisibleType(s.VisibleType),
		OnSelectedOptionID: s.OnSelectedOptionID,
		Header:             s.Header,
		QuestionIDs: slice.Map(sqs, func(idx int, src dao.SectionQuestion) int64 {
			return src.QuestionID
		}),
	}, nil
}

func (r *templateRepository) FindQuestionByID(ctx context.Context, id int64) (domain.Question, error) {
	q, err := r.dao.FindQuestionByID(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	return domain.Question{
		ID:        q.ID,
		Required:  q.Required,
		Content:   q.Content,
		Type:      domain.QuestionType(q.QuestionType),
		Guideline: q.Guideline,
	}, nil
}

func (r *templateRepository) FindOptionGroupByQuestionID(ctx context.Context, questionID int64) (domain.OptionGroup, error) {
	g, err := r.dao.FindOptionGroupByQuestionID(ctx, questionID)
	if err != nil {
		return domain.OptionGroup{}, err
	}
	return domain.OptionGroup{
		ID:                g.ID,
		QuestionID:        g.QuestionID,
		MinSelectionCount: g.MinSelectionCount,
		MaxSelectionCount: g.MaxSelectionCount,
	}, nil
}

func (r *templateRepository) FindOptionItemsByGroupID(ctx context.Context, groupID int64) ([]domain.OptionItem, error) {
	items, err := r.dao.FindOptionItemsByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.OptionItem) domain.OptionItem {
		return domain.OptionItem{
			ID:            src.ID,
			OptionGroupID: src.OptionGroupID,
			Content:       src.Content,
		}
	}), nil
}
