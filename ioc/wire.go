//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/review"
	"github.com/reviewme/reviewme/internal/template"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		group.InitModule,
		wire.FieldsOf(new(*group.Module), "Hdl", "Svc"),
		template.InitModule,
		wire.FieldsOf(new(*template.Module), "Hdl", "Svc"),
		review.InitModule,
		wire.FieldsOf(new(*review.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
