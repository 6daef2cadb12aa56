package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/review/internal/domain"
	"github.com/reviewme/reviewme/internal/review/internal/repository"
	"github.com/reviewme/reviewme/internal/template"
	"golang.org/x/sync/errgroup"
)

const (
	// requiredTextMinLen 必答主观题的最短字数
	requiredTextMinLen = 20
	textMaxLen         = 1000
)

// ErrInvalidAnswer 作答校验失败的统一标志，细分错误全部 wrap 它
var (
	ErrInvalidAnswer      = errors.New("作答不符合要求")
	ErrUnknownQuestion    = fmt.Errorf("%w: 题目不在表单中", ErrInvalidAnswer)
	ErrDuplicateAnswer    = fmt.Errorf("%w: 同一题目重复作答", ErrInvalidAnswer)
	ErrUnknownOption      = fmt.Errorf("%w: 选项不属于题目的选项组", ErrInvalidAnswer)
	ErrSelectionCount     = fmt.Errorf("%w: 选择数量超出范围", ErrInvalidAnswer)
	ErrTextLength         = fmt.Errorf("%w: 主观作答长度超出范围", ErrInvalidAnswer)
	ErrRequiredUnanswered = fmt.Errorf("%w: 必答题未作答", ErrInvalidAnswer)

	ErrReviewNotFound = errors.New("评价不存在")
)

//go:generate mockgen -source=./review.go -package=reviewmocks -destination=../../mocks/review.mock.go ReviewService
type ReviewService interface {
	// Register 校验并保存一次作答，返回评价 id
	Register(ctx context.Context, requestCode string, answers []domain.Answer) (int64, error)
	// List 码对鉴权之后列出某个回顾组收到的全部评价
	List(ctx context.Context, requestCode, accessCode string) (domain.ReceivedReviews, error)
	// Detail 单条评价按模板结构重新组织
	Detail(ctx context.Context, requestCode, accessCode string, reviewID int64) (domain.ReviewDetail, error)
}

type reviewService struct {
	repo        repository.ReviewRepository
	groupSvc    group.Service
	templateSvc template.Service
}

func NewReviewService(repo repository.ReviewRepository,
	groupSvc group.Service,
	templateSvc template.Service) ReviewService {
	return &reviewService{
		repo:        repo,
		groupSvc:    groupSvc,
		templateSvc: templateSvc,
	}
}

func (s *reviewService) Register(ctx context.Context, requestCode string, answers []domain.Answer) (int64, error) {
	g, err := s.groupSvc.ResolveByRequestCode(ctx, requestCode)
	if err != nil {
		return 0, err
	}
	form, err := s.templateSvc.Assemble(ctx, g.ID, g.TemplateID, g.Reviewee, g.ProjectName)
	if err != nil {
		return 0, err
	}
	if err := s.validate(form, answers); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, domain.Review{
		ReviewGroupID: g.ID,
		TemplateID:    g.TemplateID,
		Answers:       answers,
	})
}

// validate 逐区块校验作答。条件区块只有触发选项被选中时才参与，
// 未参与区块里的必答题不算漏答，对它们的作答按不在表单中处理。
func (s *reviewService) validate(form template.Form, answers []domain.Answer) error {
	byQuestion := make(map[int64]domain.Answer, len(answers))
	for _, a := range answers {
		if _, ok := byQuestion[a.QuestionID]; ok {
			return fmt.Errorf("%w, questionId %d", ErrDuplicateAnswer, a.QuestionID)
		}
		byQuestion[a.QuestionID] = a
	}
	selected := make(map[int64]struct{})
	answered := make(map[int64]struct{}, len(answers))
	for _, sec := range form.Sections {
		if !s.sectionVisible(sec, selected) {
			continue
		}
		for _, q := range sec.Questions {
			a, ok := byQuestion[q.ID]
			if !ok {
				if q.Required {
					return fmt.Errorf("%w, questionId %d", ErrRequiredUnanswered, q.ID)
				}
				continue
			}
			answered[q.ID] = struct{}{}
			if err := s.validateAnswer(q, a); err != nil {
				return err
			}
			for _, id := range a.SelectedOptionIDs {
				selected[id] = struct{}{}
			}
		}
	}
	for _, a := range answers {
		if _, ok := answered[a.QuestionID]; !ok {
			return fmt.Errorf("%w, questionId %d", ErrUnknownQuestion, a.QuestionID)
		}
	}
	return nil
}

func (s *reviewService) sectionVisible(sec template.FormSection, selected map[int64]struct{}) bool {
	if sec.VisibleType != template.VisibleConditional {
		return true
	}
	_, ok := selected[sec.OnSelectedOptionID]
	return ok
}

func (s *reviewService) validateAnswer(q template.FormQuestion, a domain.Answer) error {
	switch q.Type {
	case template.QuestionTypeCheckbox:
		return s.validateSelection(q, a)
	default:
		return s.validateText(q, a)
	}
}

func (s *reviewService) validateSelection(q template.FormQuestion, a domain.Answer) error {
	grp := q.OptionGroup
	if grp == nil {
		return fmt.Errorf("%w, questionId %d", ErrUnknownOption, q.ID)
	}
	valid := make(map[int64]struct{}, len(grp.Options))
	for _, opt := range grp.Options {
		valid[opt.ID] = struct{}{}
	}
	for _, id := range a.SelectedOptionIDs {
		if _, ok := valid[id]; !ok {
			return fmt.Errorf("%w, questionId %d, optionId %d", ErrUnknownOption, q.ID, id)
		}
	}
	cnt := len(a.SelectedOptionIDs)
	if cnt < grp.MinSelectionCount || cnt > grp.MaxSelectionCount {
		return fmt.Errorf("%w, questionId %d, 已选 %d, 允许 %d..%d",
			ErrSelectionCount, q.ID, cnt, grp.MinSelectionCount, grp.MaxSelectionCount)
	}
	return nil
}

func (s *reviewService) validateText(q template.FormQuestion, a domain.Answer) error {
	n := utf8.RuneCountInString(a.Text)
	if q.Required && n < requiredTextMinLen {
		return fmt.Errorf("%w, questionId %d, 字数 %d 小于 %d",
			ErrTextLength, q.ID, n, requiredTextMinLen)
	}
	if n > textMaxLen {
		return fmt.Errorf("%w, questionId %d, 字数 %d 超过 %d",
			ErrTextLength, q.ID, n, textMaxLen)
	}
	return nil
}

func (s *reviewService) List(ctx context.Context, requestCode, accessCode string) (domain.ReceivedReviews, error) {
	g, err := s.groupSvc.Resolve(ctx, requestCode, accessCode)
	if err != nil {
		return domain.ReceivedReviews{}, err
	}
	reviews, err := s.repo.FindByGroupID(ctx, g.ID)
	if err != nil {
		return domain.ReceivedReviews{}, err
	}
	res := domain.ReceivedReviews{
		Reviewee:    g.Reviewee,
		ProjectName: g.ProjectName,
		Reviews:     make([]domain.ReviewSummary, 0, len(reviews)),
	}
	for _, re := range reviews {
		res.Reviews = append(res.Reviews, domain.ReviewSummary{
			ID:        re.ID,
			CreatedAt: re.CreatedAt,
			Preview:   s.preview(re),
		})
	}
	return res, nil
}

func (s *reviewService) preview(re domain.Review) string {
	for _, a := range re.Answers {
		if a.HasText() {
			return a.Text
		}
	}
	return ""
}

func (s *reviewService) Detail(ctx context.Context, requestCode, accessCode string, reviewID int64) (domain.ReviewDetail, error) {
	g, err := s.groupSvc.Resolve(ctx, requestCode, accessCode)
	if err != nil {
		return domain.ReviewDetail{}, err
	}
	var (
		re   domain.Review
		form template.Form
		eg   errgroup.Group
	)
	eg.Go(func() error {
		var eerr error
		re, eerr = s.repo.FindByID(ctx, reviewID)
		if errors.Is(eerr, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w, reviewId %d", ErrReviewNotFound, reviewID)
		}
		return eerr
	})
	eg.Go(func() error {
		var eerr error
		form, eerr = s.templateSvc.Assemble(ctx, g.ID, g.TemplateID, g.Reviewee, g.ProjectName)
		return eerr
	})
	if err := eg.Wait(); err != nil {
		return domain.ReviewDetail{}, err
	}
	// 不暴露别的回顾组的评价
	if re.ReviewGroupID != g.ID {
		return domain.ReviewDetail{}, fmt.Errorf("%w, reviewId %d", ErrReviewNotFound, reviewID)
	}
	return s.assembleDetail(g, re, form), nil
}

// assembleDetail 把扁平的作答按模板区块重新分组，没有作答的区块不输出
func (s *reviewService) assembleDetail(g group.ReviewGroup,
	re domain.Review, form template.Form) domain.ReviewDetail {
	byQuestion := make(map[int64]domain.Answer, len(re.Answers))
	for _, a := range re.Answers {
		byQuestion[a.QuestionID] = a
	}
	res := domain.ReviewDetail{
		ReviewID:    re.ID,
		Reviewee:    g.Reviewee,
		ProjectName: g.ProjectName,
		CreatedAt:   re.CreatedAt,
	}
	for _, sec := range form.Sections {
		answers := make([]domain.AnsweredQuestion, 0, len(sec.Questions))
		for _, q := range sec.Questions {
			a, ok := byQuestion[q.ID]
			if !ok {
				continue
			}
			answers = append(answers, domain.AnsweredQuestion{
				QuestionID:      q.ID,
				Content:         q.Content,
				QuestionType:    string(q.Type),
				SelectedOptions: s.selectedOptions(q, a),
				Text:            a.Text,
			})
		}
		if len(answers) == 0 {
			continue
		}
		res.Sections = append(res.Sections, domain.AnsweredSection{
			ID:      sec.ID,
			Name:    sec.Name,
			Header:  sec.Header,
			Answers: answers,
		})
	}
	return res
}

func (s *reviewService) selectedOptions(q template.FormQuestion, a domain.Answer) []domain.SelectedOption {
	if q.OptionGroup == nil || len(a.SelectedOptionIDs) == 0 {
		return nil
	}
	contents := make(map[int64]string, len(q.OptionGroup.Options))
	for _, opt := range q.OptionGroup.Options {
		contents[opt.ID] = opt.Content
	}
	res := make([]domain.SelectedOption, 0, len(a.SelectedOptionIDs))
	for _, id := range a.SelectedOptionIDs {
		res = append(res, domain.SelectedOption{
			ID:      id,
			Content: contents[id],
		})
	}
	return res
}
