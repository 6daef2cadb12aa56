package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reviewme/reviewme/internal/group/internal/domain"
	"github.com/reviewme/reviewme/internal/group/internal/repository"
	"github.com/reviewme/reviewme/internal/group/internal/repository/cache"
	groupmocks "github.com/reviewme/reviewme/internal/group/mocks"
	cachemocks "github.com/reviewme/reviewme/internal/group/mocks/cache"
	repomocks "github.com/reviewme/reviewme/internal/group/mocks/repository"
)

func TestReviewGroupService_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.ReviewGroupRepository, CodeGenerator)
		wantCode string
		wantErr  error
	}{
		{
			name: "一次生成成功",
			mock: func(ctrl *gomock.Controller) (repository.ReviewGroupRepository, CodeGenerator) {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				gen := groupmocks.NewMockCodeGenerator(ctrl)
				repo.EXPECT().LatestTemplateID(gomock.Any()).Return(int64(1), nil)
				gen.EXPECT().Generate(requestCodeLength).Return("ABCD1234")
				repo.EXPECT().ExistsByRequestCode(gomock.Any(), "ABCD1234").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), domain.ReviewGroup{
					Reviewee:          "sancho",
					ProjectName:       "reviewme",
					GroupAccessCode:   "groupAccessCode",
					ReviewRequestCode: "ABCD1234",
					TemplateID:        1,
				}).Return(int64(1), nil)
				return repo, gen
			},
			wantCode: "ABCD1234",
		},
		{
			name: "码重复时重新生成",
			mock: func(ctrl *gomock.Controller) (repository.ReviewGroupRepository, CodeGenerator) {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				gen := groupmocks.NewMockCodeGenerator(ctrl)
				repo.EXPECT().LatestTemplateID(gomock.Any()).Return(int64(1), nil)
				gomock.InOrder(
					gen.EXPECT().Generate(requestCodeLength).Return("0000"),
					gen.EXPECT().Generate(requestCodeLength).Return("AAAA"),
				)
				repo.EXPECT().ExistsByRequestCode(gomock.Any(), "0000").Return(true, nil)
				repo.EXPECT().ExistsByRequestCode(gomock.Any(), "AAAA").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				return repo, gen
			},
			wantCode: "AAAA",
		},
		{
			name: "插入时撞了唯一索引也算一次碰撞",
			mock: func(ctrl *gomock.Controller) (repository.ReviewGroupRepository, CodeGenerator) {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				gen := groupmocks.NewMockCodeGenerator(ctrl)
				repo.EXPECT().LatestTemplateID(gomock.Any()).Return(int64(1), nil)
				gomock.InOrder(
					gen.EXPECT().Generate(requestCodeLength).Return("0000"),
					gen.EXPECT().Generate(requestCodeLength).Return("AAAA"),
				)
				repo.EXPECT().ExistsByRequestCode(gomock.Any(), "0000").Return(false, nil)
				repo.EXPECT().ExistsByRequestCode(gomock.Any(), "AAAA").Return(false, nil)
				gomock.InOrder(
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).
						Return(int64(0), repository.ErrDuplicateRequestCode),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil),
				)
				return repo, gen
			},
			wantCode: "AAAA",
		},
		{
			name: "重试预算耗尽",
			mock: func(ctrl *gomock.Controller) (repository.ReviewGroupRepository, CodeGenerator) {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				gen := groupmocks.NewMockCodeGenerator(ctrl)
				repo.EXPECT().LatestTemplateID(gomock.Any()).Return(int64(1), nil)
				gen.EXPECT().Generate(requestCodeLength).Return("0000").Times(maxGenerationAttempts)
				repo.EXPECT().ExistsByRequestCode(gomock.Any(), "0000").
					Return(true, nil).Times(maxGenerationAttempts)
				return repo, gen
			},
			wantErr: ErrCodeGenerationExhausted,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, gen := tc.mock(ctrl)
			svc := NewReviewGroupService(repo, cachemocks.NewMockReviewTokenCache(ctrl), gen)
			code, err := svc.Create(context.Background(), domain.ReviewGroup{
				Reviewee:        "sancho",
				ProjectName:     "reviewme",
				GroupAccessCode: "groupAccessCode",
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestReviewGroupService_CheckAccess(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) repository.ReviewGroupRepository
		accessCode string
		want       bool
	}{
		{
			name: "两个码都对",
			mock: func(ctrl *gomock.Controller) repository.ReviewGroupRepository {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				repo.EXPECT().FindByRequestCode(gomock.Any(), "ABCD1234").
					Return(domain.ReviewGroup{GroupAccessCode: "secret"}, nil)
				return repo
			},
			accessCode: "secret",
			want:       true,
		},
		{
			name: "确认码错了",
			mock: func(ctrl *gomock.Controller) repository.ReviewGroupRepository {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				repo.EXPECT().FindByRequestCode(gomock.Any(), "ABCD1234").
					Return(domain.ReviewGroup{GroupAccessCode: "secret"}, nil)
				return repo
			},
			accessCode: "secret!",
			want:       false,
		},
		{
			name: "大小写不匹配也算错",
			mock: func(ctrl *gomock.Controller) repository.ReviewGroupRepository {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				repo.EXPECT().FindByRequestCode(gomock.Any(), "ABCD1234").
					Return(domain.ReviewGroup{GroupAccessCode: "secret"}, nil)
				return repo
			},
			accessCode: "Secret",
			want:       false,
		},
		{
			name: "请求码不存在",
			mock: func(ctrl *gomock.Controller) repository.ReviewGroupRepository {
				repo := repomocks.NewMockReviewGroupRepository(ctrl)
				repo.EXPECT().FindByRequestCode(gomock.Any(), "ABCD1234").
					Return(domain.ReviewGroup{}, repository.ErrRecordNotFound)
				return repo
			},
			accessCode: "secret",
			want:       false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewReviewGroupService(tc.mock(ctrl),
				cachemocks.NewMockReviewTokenCache(ctrl),
				groupmocks.NewMockCodeGenerator(ctrl))
			ok, err := svc.CheckAccess(context.Background(), "ABCD1234", tc.accessCode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestReviewGroupService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockReviewGroupRepository(ctrl)
	repo.EXPECT().FindByCodes(gomock.Any(), "ABCD1234", "secret").
		Return(domain.ReviewGroup{ID: 1, Reviewee: "sancho"}, nil)
	repo.EXPECT().FindByCodes(gomock.Any(), "ABCD1234", "wrong").
		Return(domain.ReviewGroup{}, repository.ErrRecordNotFound)

	svc := NewReviewGroupService(repo,
		cachemocks.NewMockReviewTokenCache(ctrl),
		groupmocks.NewMockCodeGenerator(ctrl))

	g, err := svc.Resolve(context.Background(), "ABCD1234", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), g.ID)

	_, err = svc.Resolve(context.Background(), "ABCD1234", "wrong")
	assert.ErrorIs(t, err, ErrReviewGroupNotFound)
}

func TestReviewGroupService_Token(t *testing.T) {
	t.Run("签发并解析令牌", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockReviewGroupRepository(ctrl)
		tokenCache := cachemocks.NewMockReviewTokenCache(ctrl)
		repo.EXPECT().FindByCodes(gomock.Any(), "ABCD1234", "secret").
			Return(domain.ReviewGroup{ID: 1, ReviewRequestCode: "ABCD1234"}, nil)
		var issued string
		tokenCache.EXPECT().SetToken(gomock.Any(), gomock.Any(), "ABCD1234").
			DoAndReturn(func(_ context.Context, token, _ string) error {
				issued = token
				return nil
			})

		svc := NewReviewGroupService(repo, tokenCache, groupmocks.NewMockCodeGenerator(ctrl))
		token, err := svc.IssueToken(context.Background(), "ABCD1234", "secret")
		require.NoError(t, err)
		assert.Equal(t, issued, token)
		assert.NotEmpty(t, token)

		tokenCache.EXPECT().GetRequestCode(gomock.Any(), token).Return("ABCD1234", nil)
		repo.EXPECT().FindByRequestCode(gomock.Any(), "ABCD1234").
			Return(domain.ReviewGroup{ID: 1, ReviewRequestCode: "ABCD1234"}, nil)
		g, err := svc.ResolveToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), g.ID)
	})

	t.Run("码对不成立时不签发", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockReviewGroupRepository(ctrl)
		repo.EXPECT().FindByCodes(gomock.Any(), "ABCD1234", "wrong").
			Return(domain.ReviewGroup{}, repository.ErrRecordNotFound)
		svc := NewReviewGroupService(repo,
			cachemocks.NewMockReviewTokenCache(ctrl),
			groupmocks.NewMockCodeGenerator(ctrl))
		_, err := svc.IssueToken(context.Background(), "ABCD1234", "wrong")
		assert.ErrorIs(t, err, ErrReviewGroupNotFound)
	})

	t.Run("令牌不存在", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokenCache := cachemocks.NewMockReviewTokenCache(ctrl)
		tokenCache.EXPECT().GetRequestCode(gomock.Any(), "nope").
			Return("", cache.ErrTokenNotFound)
		svc := NewReviewGroupService(repomocks.NewMockReviewGroupRepository(ctrl),
			tokenCache, groupmocks.NewMockCodeGenerator(ctrl))
		_, err := svc.ResolveToken(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrReviewGroupNotFound)
	})
}
