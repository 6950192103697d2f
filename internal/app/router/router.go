package router

import (
	authhandler "cryptowatch_backend/internal/feature/auth/transport/handler"
	cataloghandler "cryptowatch_backend/internal/feature/catalog/transport/handler"
	logomatchhandler "cryptowatch_backend/internal/feature/logomatch/transport/handler"
	"cryptowatch_backend/internal/platform/http/handler"
	jwtmw "cryptowatch_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, catalog *cataloghandler.CatalogHandler,
	logomatch *logomatchhandler.LogoMatchHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	v1 := r.Group("/v1")
	v1.Use(jwtmw.AuthRequired())
	{
		v1.GET("/markets", catalog.Markets)
		v1.GET("/currencies", catalog.Currencies)
		v1.GET("/categories", catalog.Categories)
		v1.GET("/favorites", catalog.Favorites)
		v1.POST("/favorites/:id/toggle", catalog.ToggleFavorite)
		v1.PUT("/settings/currency", catalog.SetCurrency)

		v1.POST("/logo/detect", logomatch.MatchLogos)
		v1.POST("/logo/brief", logomatch.BriefProject)
	}

	return r
}
