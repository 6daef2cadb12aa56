//go:build wireinject

package group

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/reviewme/reviewme/internal/group/internal/repository"
	"github.com/reviewme/reviewme/internal/group/internal/repository/cache"
	"github.com/reviewme/reviewme/internal/group/internal/repository/dao"
	"github.com/reviewme/reviewme/internal/group/internal/service"
	"github.com/reviewme/reviewme/internal/group/internal/web"
	"github.com/reviewme/reviewme/internal/pkg/randcode"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		InitReviewGroupDAO,
		initCodeGenerator,
		cache.NewReviewTokenCache,
		repository.NewReviewGroupRepository,
		service.NewReviewGroupService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitReviewGroupDAO(db *egorm.Component) dao.ReviewGroupDAO {
	InitTableOnce(db)
	return dao.NewGORMReviewGroupDAO(db)
}

func initCodeGenerator() service.CodeGenerator {
	return randcode.NewGenerator()
}
