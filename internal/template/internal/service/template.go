package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/reviewme/reviewme/internal/template/internal/domain"
	"github.com/reviewme/reviewme/internal/template/internal/repository"
)

// ErrDataIntegrity 模板引用图不完整时的统一标志，
// 下面的细分错误全部 wrap 它，Handler 只认它。
var (
	ErrDataIntegrity      = errors.New("模板数据不完整")
	ErrTemplateNotFound   = fmt.Errorf("%w: 模板不存在", ErrDataIntegrity)
	ErrSectionNotFound    = fmt.Errorf("%w: 区块不存在", ErrDataIntegrity)
	ErrQuestionNotFound   = fmt.Errorf("%w: 题目不存在", ErrDataIntegrity)
	ErrMissingOptionItems = fmt.Errorf("%w: 选项组没有选项", ErrDataIntegrity)
)

//go:generate mockgen -source=./template.go -package=templatemocks -destination=../../mocks/template.mock.go TemplateService
type TemplateService interface {
	// Assemble 组装完整的评价表单，区块导语、题目内容和作答引导里的
	// 占位符替换成被评价人姓名。引用图里任何一环缺失都整体失败，
	// 不返回部分结果，错误信息里带上断掉那一环的父节点 id。
	Assemble(ctx context.Context, groupID, templateID int64, reviewee, projectName string) (domain.Form, error)
}

type templateService struct {
	repo repository.TemplateRepository
}

func NewTemplateService(repo repository.TemplateRepository) TemplateService {
	return &templateService{
		repo: repo,
	}
}

func (s *templateService) Assemble(ctx context.Context, groupID, templateID int64, reviewee, projectName string) (domain.Form, error) {
	t, err := s.repo.FindTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Form{}, fmt.Errorf("%w, reviewGroupId %d, templateId %d",
				ErrTemplateNotFound, groupID, templateID)
		}
		return domain.Form{}, err
	}
	sections := make([]domain.FormSection, 0, len(t.SectionIDs))
	for _, sid := range t.SectionIDs {
		sec, err := s.assembleSection(ctx, t.ID, sid, reviewee)
		if err != nil {
			return domain.Form{}, err
		}
		sections = append(sections, sec)
	}
	return domain.Form{
		TemplateID:  t.ID,
		Reviewee:    reviewee,
		ProjectName: projectName,
		Sections:    sections,
	}, nil
}

func (s *templateService) assembleSection(ctx context.Context, templateID, id int64, reviewee string) (domain.FormSection, error) {
	sec, err := s.repo.FindSectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.FormSection{}, fmt.Errorf("%w, templateId %d, sectionId %d",
				ErrSectionNotFound, templateID, id)
		}
		return domain.FormSection{}, err
	}
	questions := make([]domain.FormQuestion, 0, len(sec.QuestionIDs))
	for _, qid := range sec.QuestionIDs {
		q, err := s.assembleQuestion(ctx, sec.ID, qid, reviewee)
		if err != nil {
			return domain.FormSection{}, err
		}
		questions = append(questions, q)
	}
	return domain.FormSection{
		ID:                 sec.ID,
		Name:               sec.Name,
		VisibleType:        sec.VisibleType,
		OnSelectedOptionID: sec.OnSelectedOptionID,
		Header:             domain.Substitute(sec.Header, reviewee),
		Questions:          questions,
	}, nil
}

func (s *templateService) assembleQuestion(ctx context.Context, sectionID, id int64, reviewee string) (domain.FormQuestion, error) {
	q, err := s.repo.FindQuestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.FormQuestion{}, fmt.Errorf("%w, sectionId %d, questionId %d",
				ErrQuestionNotFound, sectionID, id)
		}
		return domain.FormQuestion{}, err
	}
	res := domain.FormQuestion{
		ID:           q.ID,
		Required:     q.Required,
		Content:      domain.Substitute(q.Content, reviewee),
		Type:         q.Type,
		HasGuideline: q.HasGuideline(),
		Guideline:    domain.Substitute(q.Guideline, reviewee),
	}
	grp, err := s.repo.FindOptionGroupByQuestionID(ctx, q.ID)
	if err != nil {
		// 没挂选项组是合法状态，表单里这个节点就是空
		if errors.Is(err, repository.ErrRecordNotFound) {
			return res, nil
		}
		return domain.FormQuestion{}, err
	}
	items, err := s.repo.FindOptionItemsByGroupID(ctx, grp.ID)
	if err != nil {
		return domain.FormQuestion{}, err
	}
	if len(items) == 0 {
		return domain.FormQuestion{}, fmt.Errorf("%w, questionId %d, optionGroupId %d",
			ErrMissingOptionItems, q.ID, grp.ID)
	}
	options := make([]domain.FormOption, 0, len(items))
	for _, it := range items {
		options = append(options, domain.FormOption{
			ID:      it.ID,
			Content: it.Content,
		})
	}
	res.OptionGroup = &domain.FormOptionGroup{
		ID:                grp.ID,
		MinSelectionCount: grp.MinSelectionCount,
		MaxSelectionCount: grp.MaxSelectionCount,
		Options:           options,
	}
	return res, nil
}
