package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/reviewme/reviewme/internal/group"
	groupmocks "github.com/reviewme/reviewme/internal/group/mocks"
	"github.com/reviewme/reviewme/internal/review/internal/domain"
	"github.com/reviewme/reviewme/internal/review/internal/repository"
	repomocks "github.com/reviewme/reviewme/internal/review/mocks/repository"
	"github.com/reviewme/reviewme/internal/template"
	templatemocks "github.com/reviewme/reviewme/internal/template/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// testForm 一个 ALWAYS 区块加一个由选项 2 触发的条件区块
func testForm() template.Form {
	return template.Form{
		TemplateID:  1,
		Reviewee:    "Jane",
		ProjectName: "结算系统重构",
		Sections: []template.FormSection{
			{
				ID:          10,
				Name:        "协作",
				VisibleType: template.VisibleAlways,
				Questions: []template.FormQuestion{
					{
						ID:       100,
						Required: true,
						Type:     template.QuestionTypeCheckbox,
						OptionGroup: &template.FormOptionGroup{
							ID:                1,
							MinSelectionCount: 1,
							MaxSelectionCount: 2,
							Options: []template.FormOption{
								{ID: 1, Content: "沟通"},
								{ID: 2, Content: "执行力"},
								{ID: 3, Content: "责任心"},
							},
						},
					},
					{ID: 101, Required: true, Type: template.QuestionTypeText},
					{ID: 102, Type: template.QuestionTypeText},
				},
			},
			{
				ID:                 11,
				VisibleType:        template.VisibleConditional,
				OnSelectedOptionID: 2,
				Questions: []template.FormQuestion{
					{ID: 103, Required: true, Type: template.QuestionTypeText},
				},
			},
		},
	}
}

func TestReviewService_Register(t *testing.T) {
	t.Parallel()
	testGroup := group.ReviewGroup{
		ID:                7,
		Reviewee:          "Jane",
		ProjectName:       "结算系统重构",
		ReviewRequestCode: "ABCD1234",
		TemplateID:        1,
	}
	validText := strings.Repeat("好", 20)
	testCases := []struct {
		name    string
		answers []domain.Answer
		// persisted 只有通过校验的用例才会落库
		persisted bool
		wantID    int64
		wantErr   error
	}{
		{
			name: "全部必答题作答通过",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
				{QuestionID: 101, Text: validText},
			},
			persisted: true,
			wantID:    3,
		},
		{
			name: "触发条件区块后一并作答",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{2}},
				{QuestionID: 101, Text: validText},
				{QuestionID: 103, Text: validText},
			},
			persisted: true,
			wantID:    4,
		},
		{
			name: "触发条件区块但漏答",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{2}},
				{QuestionID: 101, Text: validText},
			},
			wantErr: ErrRequiredUnanswered,
		},
		{
			name: "必答题漏答",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
			},
			wantErr: ErrRequiredUnanswered,
		},
		{
			name: "选项不属于选项组",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{9}},
				{QuestionID: 101, Text: validText},
			},
			wantErr: ErrUnknownOption,
		},
		{
			name: "超过最大选择数",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1, 2, 3}},
				{QuestionID: 101, Text: validText},
			},
			wantErr: ErrSelectionCount,
		},
		{
			name: "低于最小选择数",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{}},
				{QuestionID: 101, Text: validText},
			},
			wantErr: ErrSelectionCount,
		},
		{
			name: "必答主观题字数不足",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
				{QuestionID: 101, Text: "太短了"},
			},
			wantErr: ErrTextLength,
		},
		{
			name: "选答主观题超长",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
				{QuestionID: 101, Text: validText},
				{QuestionID: 102, Text: strings.Repeat("长", 1001)},
			},
			wantErr: ErrTextLength,
		},
		{
			name: "题目不在表单中",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
				{QuestionID: 101, Text: validText},
				{QuestionID: 999, Text: validText},
			},
			wantErr: ErrUnknownQuestion,
		},
		{
			name: "作答了未触发的条件区块",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
				{QuestionID: 101, Text: validText},
				{QuestionID: 103, Text: validText},
			},
			wantErr: ErrUnknownQuestion,
		},
		{
			name: "同一题目重复作答",
			answers: []domain.Answer{
				{QuestionID: 100, SelectedOptionIDs: []int64{1}},
				{QuestionID: 100, SelectedOptionIDs: []int64{2}},
			},
			wantErr: ErrDuplicateAnswer,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			groupSvc := groupmocks.NewMockReviewGroupService(ctrl)
			groupSvc.EXPECT().ResolveByRequestCode(gomock.Any(), "ABCD1234").
				Return(testGroup, nil)
			templateSvc := templatemocks.NewMockTemplateService(ctrl)
			templateSvc.EXPECT().Assemble(gomock.Any(), int64(7), int64(1), "Jane", "结算系统重构").
				Return(testForm(), nil)
			repo := repomocks.NewMockReviewRepository(ctrl)
			if tc.persisted {
				repo.EXPECT().Create(gomock.Any(), domain.Review{
					ReviewGroupID: 7,
					TemplateID:    1,
					Answers:       tc.answers,
				}).Return(tc.wantID, nil)
			}
			svc := NewReviewService(repo, groupSvc, templateSvc)
			id, err := svc.Register(context.Background(), "ABCD1234", tc.answers)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrInvalidAnswer)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestReviewService_Register_GroupNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	groupSvc := groupmocks.NewMockReviewGroupService(ctrl)
	groupSvc.EXPECT().ResolveByRequestCode(gomock.Any(), "NOPE0000").
		Return(group.ReviewGroup{}, group.ErrReviewGroupNotFound)
	svc := NewReviewService(repomocks.NewMockReviewRepository(ctrl),
		groupSvc, templatemocks.NewMockTemplateService(ctrl))
	_, err := svc.Register(context.Background(), "NOPE0000", nil)
	assert.ErrorIs(t, err, group.ErrReviewGroupNotFound)
}

func TestReviewService_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	now := time.UnixMilli(1700000000000)
	groupSvc := groupmocks.NewMockReviewGroupService(ctrl)
	groupSvc.EXPECT().Resolve(gomock.Any(), "ABCD1234", "secret").
		Return(group.ReviewGroup{
			ID:          7,
			Reviewee:    "Jane",
			ProjectName: "结算系统重构",
		}, nil)
	repo := repomocks.NewMockReviewRepository(ctrl)
	repo.EXPECT().FindByGroupID(gomock.Any(), int64(7)).
		Return([]domain.Review{
			{
				ID:        2,
				CreatedAt: now,
				Answers: []domain.Answer{
					{QuestionID: 100, SelectedOptionIDs: []int64{1}},
					{QuestionID: 101, Text: "合作很顺畅"},
				},
			},
			{
				ID:        1,
				CreatedAt: now.Add(-time.Hour),
				Answers: []domain.Answer{
					{QuestionID: 100, SelectedOptionIDs: []int64{2}},
				},
			},
		}, nil)
	svc := NewReviewService(repo, groupSvc, templatemocks.NewMockTemplateService(ctrl))
	got, err := svc.List(context.Background(), "ABCD1234", "secret")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReceivedReviews{
		Reviewee:    "Jane",
		ProjectName: "结算系统重构",
		Reviews: []domain.ReviewSummary{
			// 摘要取第一条主观作答，纯选择的评价摘要为空
			{ID: 2, CreatedAt: now, Preview: "合作很顺畅"},
			{ID: 1, CreatedAt: now.Add(-time.Hour)},
		},
	}, got)
}

func TestReviewService_Detail(t *testing.T) {
	t.Parallel()
	resolvedGroup := group.ReviewGroup{
		ID:          7,
		Reviewee:    "Jane",
		ProjectName: "结算系统重构",
		TemplateID:  1,
	}
	now := time.UnixMilli(1700000000000)
	form := template.Form{
		TemplateID: 1,
		Reviewee:   "Jane",
		Sections: []template.FormSection{
			{
				ID:     10,
				Name:   "协作",
				Header: "请评价 Jane",
				Questions: []template.FormQuestion{
					{
						ID:      100,
						Content: "印象深刻的方面",
						Type:    template.QuestionTypeCheckbox,
						OptionGroup: &template.FormOptionGroup{
							ID: 1,
							Options: []template.FormOption{
								{ID: 1, Content: "沟通"},
								{ID: 2, Content: "执行力"},
							},
						},
					},
					{ID: 101, Content: "具体描述", Type: template.QuestionTypeText},
				},
			},
			{
				ID: 11,
				Questions: []template.FormQuestion{
					{ID: 103, Type: template.QuestionTypeText},
				},
			},
		},
	}
	t.Run("按区块重组且选项回填内容", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		groupSvc := groupmocks.NewMockReviewGroupService(ctrl)
		groupSvc.EXPECT().Resolve(gomock.Any(), "ABCD1234", "secret").
			Return(resolvedGroup, nil)
		templateSvc := templatemocks.NewMockTemplateService(ctrl)
		templateSvc.EXPECT().Assemble(gomock.Any(), int64(7), int64(1), "Jane", "结算系统重构").
			Return(form, nil)
		repo := repomocks.NewMockReviewRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(2)).
			Return(domain.Review{
				ID:            2,
				ReviewGroupID: 7,
				TemplateID:    1,
				CreatedAt:     now,
				Answers: []domain.Answer{
					{QuestionID: 100, SelectedOptionIDs: []int64{2, 1}},
					{QuestionID: 101, Text: "合作很顺畅"},
				},
			}, nil)
		svc := NewReviewService(repo, groupSvc, templateSvc)
		got, err := svc.Detail(context.Background(), "ABCD1234", "secret", 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReviewDetail{
			ReviewID:    2,
			Reviewee:    "Jane",
			ProjectName: "结算系统重构",
			CreatedAt:   now,
			Sections: []domain.AnsweredSection{
				{
					ID:     10,
					Name:   "协作",
					Header: "请评价 Jane",
					Answers: []domain.AnsweredQuestion{
						{
							QuestionID:   100,
							Content:      "印象深刻的方面",
							QuestionType: "CHECKBOX",
							SelectedOptions: []domain.SelectedOption{
								{ID: 2, Content: "执行力"},
								{ID: 1, Content: "沟通"},
							},
						},
						{
							QuestionID:   101,
							Content:      "具体描述",
							QuestionType: "TEXT",
							Text:         "合作很顺畅",
						},
					},
				},
			},
		}, got)
	})
	t.Run("评价属于别的回顾组", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		groupSvc := groupmocks.NewMockReviewGroupService(ctrl)
		groupSvc.EXPECT().Resolve(gomock.Any(), "ABCD1234", "secret").
			Return(resolvedGroup, nil)
		templateSvc := templatemocks.NewMockTemplateService(ctrl)
		templateSvc.EXPECT().Assemble(gomock.Any(), int64(7), int64(1), "Jane", "结算系统重构").
			Return(form, nil)
		repo := repomocks.NewMockReviewRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(9)).
			Return(domain.Review{ID: 9, ReviewGroupID: 8}, nil)
		svc := NewReviewService(repo, groupSvc, templateSvc)
		_, err := svc.Detail(context.Background(), "ABCD1234", "secret", 9)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
	t.Run("评价不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		groupSvc := groupmocks.NewMockReviewGroupService(ctrl)
		groupSvc.EXPECT().Resolve(gomock.Any(), "ABCD1234", "secret").
			Return(resolvedGroup, nil)
		templateSvc := templatemocks.NewMockTemplateService(ctrl)
		templateSvc.EXPECT().Assemble(gomock.Any(), int64(7), int64(1), "Jane", "结算系统重构").
			Return(form, nil).AnyTimes()
		repo := repomocks.NewMockReviewRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(domain.Review{}, repository.ErrRecordNotFound)
		svc := NewReviewService(repo, groupSvc, templateSvc)
		_, err := svc.Detail(context.Background(), "ABCD1234", "secret", 404)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}
