//go:build wireinject

package template

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/template/internal/repository"
	"github.com/reviewme/reviewme/internal/template/internal/repository/dao"
	"github.com/reviewme/reviewme/internal/template/internal/service"
	"github.com/reviewme/reviewme/internal/template/internal/web"
)

func InitModule(db *egorm.Component, groupSvc group.Service) *Module {
	wire.Build(
		InitTemplateDAO,
		repository.NewTemplateRepository,
		service.NewTemplateService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

// InitTemplateDAO 建表并灌入默认模板，保证新实例开箱即有可用模板
func InitTemplateDAO(db *egorm.Component) dao.TemplateDAO {
	daoOnce.Do(func() {
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
		if err := dao.SeedDefaultTemplate(db); err != nil {
			panic(err)
		}
	})
	return dao.NewGORMTemplateDAO(db)
}
