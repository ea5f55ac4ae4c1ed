package router

import (
	"Learnhub/config"
	"Learnhub/middleware"
	"Learnhub/pkg/context"
	"Learnhub/pkg/response"
	"Learnhub/socket/handler"
	"net/http"
	"net/http/pprof"

	"github.com/gin-gonic/gin"
)

// NewRouter 初始化配置路由
func NewRouter(conf *config.Config, handle *handler.Handler) *gin.Engine {
	if !conf.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.GinZap())
	router.Use(gin.RecoveryWithWriter(gin.DefaultWriter, func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, map[string]any{"code": 500, "msg": "系统错误，请重试!!!"})
	}))

	authorize := middleware.Auth([]byte(conf.Jwt.Secret), conf.Jwt.GetExpire())

	router.GET("/ws", authorize, context.Wrap(handle.Push.Conn))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]any{"ok": "success"})
	})

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "请求地址不存在")
	})

	if conf.Debug() {
		debug := router.Group("/debug")
		{
			debug.GET("/", gin.WrapF(pprof.Index))
			debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
			debug.GET("/profile", gin.WrapF(pprof.Profile))
			debug.GET("/symbol", gin.WrapF(pprof.Symbol))
			debug.GET("/trace", gin.WrapF(pprof.Trace))
			debug.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
			debug.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		}
	}

	return router
}
