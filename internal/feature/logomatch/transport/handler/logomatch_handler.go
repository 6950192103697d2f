// Package handler はlogomatchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cryptowatch_backend/internal/api"
	"cryptowatch_backend/internal/feature/logomatch/domain/entity"
)

// LogoMatchUsecase はロゴ照合・プロジェクト要約のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LogoMatchUsecase interface {
	MatchLogos(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error)
	BriefProject(ctx context.Context, name string) (*entity.ProjectBrief, error)
}

// LogoMatchHandler はロゴ照合・プロジェクト要約のHTTPリクエストを処理します。
type LogoMatchHandler struct {
	uc LogoMatchUsecase
}

// NewLogoMatchHandler はLogoMatchHandlerの新しいインスタンスを生成します。
func NewLogoMatchHandler(uc LogoMatchUsecase) *LogoMatchHandler {
	return &LogoMatchHandler{uc: uc}
}

// MatchLogos は画像をアップロードしてロゴを検出し、カタログのコインと照合します。
//
// エンドポイント: POST /v1/logo/detect
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *LogoMatchHandler) MatchLogos(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to read image"})
		return
	}

	matches, err := h.uc.MatchLogos(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("ロゴ照合に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "logo detection failed"})
		return
	}

	out := make([]api.CoinMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, api.CoinMatchResponse{
			CoinID:     m.CoinID,
			Name:       m.Name,
			Symbol:     m.Symbol,
			Detected:   m.Detected,
			Confidence: m.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// BriefProject はプロジェクト要約を生成します。
//
// エンドポイント: POST /v1/logo/brief
// Content-Type: application/json
func (h *LogoMatchHandler) BriefProject(c *gin.Context) {
	var req api.ProjectBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("要約リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "project name is required"})
		return
	}

	brief, err := h.uc.BriefProject(c.Request.Context(), req.Name)
	if err != nil {
		slog.Error("プロジェクト要約に失敗", "error", err, "project", req.Name)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "project brief failed"})
		return
	}

	c.JSON(http.StatusOK, api.ProjectBriefResponse{
		Name:    brief.Name,
		Summary: brief.Summary,
	})
}
