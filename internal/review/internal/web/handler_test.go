package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/review/internal/domain"
	"github.com/reviewme/reviewme/internal/review/internal/service"
	reviewmocks "github.com/reviewme/reviewme/internal/review/mocks"
	"github.com/reviewme/reviewme/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 错误到业务码的映射，不走真实存储
func TestHandler_Save(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.ReviewService
		wantCode int
		wantID   int64
	}{
		{
			name: "保存成功",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Register(gomock.Any(), "ABCD1234", []domain.Answer{
					{QuestionID: 1, SelectedOptionIDs: []int64{1}},
				}).Return(int64(3), nil)
				return svc
			},
			wantID: 3,
		},
		{
			name: "回顾组不存在按无权限处理",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Register(gomock.Any(), "ABCD1234", gomock.Any()).
					Return(int64(0), group.ErrReviewGroupNotFound)
				return svc
			},
			wantCode: 513002,
		},
		{
			name: "作答校验失败",
			mock: func(ctrl *gomock.Controller) service.ReviewService {
				svc := reviewmocks.NewMockReviewService(ctrl)
				svc.EXPECT().Register(gomock.Any(), "ABCD1234", gomock.Any()).
					Return(int64(0), service.ErrRequiredUnanswered)
				return svc
			},
			wantCode: 513003,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost,
				"/review/save", iox.NewJSONReader(SaveReq{
					ReviewRequestCode: "ABCD1234",
					Answers: []AnswerVO{
						{QuestionID: 1, SelectedOptionIDs: []int64{1}},
					},
				}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[SaveResp]()
			server.ServeHTTP(recorder, req)
			resp := recorder.MustScan()
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Equal(t, tc.wantID, resp.Data.ReviewID)
		})
	}
}
