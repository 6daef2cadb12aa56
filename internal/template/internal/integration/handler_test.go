//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/reviewme/reviewme/internal/group"
	groupdao "github.com/reviewme/reviewme/internal/group/internal/repository/dao"
	"github.com/reviewme/reviewme/internal/template"
	"github.com/reviewme/reviewme/internal/template/internal/web"
	"github.com/reviewme/reviewme/internal/test"
	testioc "github.com/reviewme/reviewme/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	db       *egorm.Component
	server   *egin.Component
	groupSvc group.Service
	groupDAO groupdao.ReviewGroupDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	rdb := testioc.InitCache()
	groupMod := group.InitModule(db, rdb)
	mou := template.InitModule(db, groupMod.Svc)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mou.Hdl.PublicRoutes(server.Engine)
	s.db = db
	s.server = server
	s.groupSvc = groupMod.Svc
	s.groupDAO = groupdao.NewGORMReviewGroupDAO(db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `review_groups`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) seedGroup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := s.groupDAO.Insert(ctx, groupdao.ReviewGroup{
		Reviewee:          "张三",
		ProjectName:       "结算系统重构",
		ReviewRequestCode: "ABCD1234",
		GroupAccessCode:   "s3cret",
		TemplateID:        1,
	})
	require.NoError(s.T(), err)
}

// 默认模板两个区块按位置输出，所有文案里的占位符替换成被评价人姓名
func (s *HandlerTestSuite) TestForm() {
	s.seedGroup()
	req, err := http.NewRequest(http.MethodGet,
		"/template/form?reviewRequestCode=ABCD1234", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.FormVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	form := recorder.MustScan().Data

	assert.Equal(s.T(), int64(1), form.FormID)
	assert.Equal(s.T(), "张三", form.Reviewee)
	assert.Equal(s.T(), "结算系统重构", form.ProjectName)
	require.Len(s.T(), form.Sections, 2)

	first := form.Sections[0]
	assert.Equal(s.T(), "张三在项目里给你留下了什么印象？", first.Header)
	assert.Equal(s.T(), "ALWAYS", first.VisibleType)
	require.Len(s.T(), first.Questions, 2)
	checkbox := first.Questions[0]
	assert.Equal(s.T(), "张三哪些方面做得好？", checkbox.Content)
	assert.True(s.T(), checkbox.Required)
	require.NotNil(s.T(), checkbox.OptionGroup)
	assert.Equal(s.T(), 1, checkbox.OptionGroup.MinSelectionCount)
	assert.Equal(s.T(), 2, checkbox.OptionGroup.MaxSelectionCount)
	require.Len(s.T(), checkbox.OptionGroup.Options, 3)
	assert.Equal(s.T(), "推进项目的执行力", checkbox.OptionGroup.Options[0].Content)
	text := first.Questions[1]
	assert.Equal(s.T(), "结合具体场景，说说张三的优点", text.Content)
	assert.True(s.T(), text.HasGuideline)
	assert.Nil(s.T(), text.OptionGroup)

	second := form.Sections[1]
	assert.Equal(s.T(), "CONDITIONAL_ON_OPTION", second.VisibleType)
	assert.Equal(s.T(), int64(2), second.OnSelectedOptionID)
	assert.Equal(s.T(), "再多说说你和张三协作时的感受", second.Header)
}

func (s *HandlerTestSuite) TestFormByToken() {
	s.seedGroup()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	token, err := s.groupSvc.IssueToken(ctx, "ABCD1234", "s3cret")
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodGet,
		"/template/form/token?reviewRequestToken="+token, nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.FormVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	form := recorder.MustScan().Data
	assert.Equal(s.T(), "张三", form.Reviewee)
	require.Len(s.T(), form.Sections, 2)
}

func (s *HandlerTestSuite) TestFormAccessDenied() {
	req, err := http.NewRequest(http.MethodGet,
		"/template/form?reviewRequestCode=ZZZZ9999", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.FormVO]()
	s.server.ServeHTTP(recorder, req)
	resp := recorder.MustScan()
	assert.Equal(s.T(), 512003, resp.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
