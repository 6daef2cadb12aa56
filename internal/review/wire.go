//go:build wireinject

package review

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/review/internal/repository"
	"github.com/reviewme/reviewme/internal/review/internal/repository/dao"
	"github.com/reviewme/reviewme/internal/review/internal/service"
	"github.com/reviewme/reviewme/internal/review/internal/web"
	"github.com/reviewme/reviewme/internal/template"
)

func InitModule(db *egorm.Component, groupSvc group.Service, templateSvc template.Service) *Module {
	wire.Build(
		initReviewDAO,
		repository.NewReviewRepository,
		service.NewReviewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initReviewDAO(db *egorm.Component) dao.ReviewDAO {
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return dao.NewReviewDAO(db)
}
