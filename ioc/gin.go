package ioc

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/reviewme/reviewme/internal/group"
	"github.com/reviewme/reviewme/internal/review"
	"github.com/reviewme/reviewme/internal/template"
)

func initGinxServer(groupHdl *group.Handler,
	templateHdl *template.Handler,
	reviewHdl *review.Hdl,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 码对和令牌本身就是访问凭证，全部路由都是公开的
	groupHdl.PublicRoutes(res.Engine)
	templateHdl.PublicRoutes(res.Engine)
	reviewHdl.PublicRoutes(res.Engine)
	return res
}
