// Package usecase はlogomatchフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	catalogentity "cryptowatch_backend/internal/feature/catalog/domain/entity"
	"cryptowatch_backend/internal/feature/logomatch/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// BriefPromptTemplate はプロジェクト要約のプロンプトテンプレートです。
	BriefPromptTemplate = "Summarize the cryptocurrency project %s in three short sentences: what it does, its consensus model, and its main use case."
	// MaxProjectNameLength はプロジェクト名の最大文字数（rune数）です。
	MaxProjectNameLength = 100
)

// validProjectName はプロジェクト名に許可される文字パターンです（英数字・スペース・記号の一部）。
var validProjectName = regexp.MustCompile(`^[\p{L}\p{N}\s\-\.&,]+$`)

// LogoDetector は画像からロゴを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LogoDetector interface {
	// DetectLogos は画像バイト列からロゴを検出し、検出結果を返します。
	DetectLogos(ctx context.Context, imageData []byte) ([]entity.DetectedLogo, error)
}

// ProjectAnalyzer はプロジェクト要約を生成するリポジトリインターフェースです。
type ProjectAnalyzer interface {
	// Analyze はプロンプトから要約を生成します。
	Analyze(ctx context.Context, prompt string) (string, error)
}

// CoinResolver は名前からカタログのコインを引くインターフェースです。
type CoinResolver interface {
	SearchByName(q string) []catalogentity.Coin
}

// logomatchUsecase はロゴ検出とコイン照合のビジネスロジックを提供します。
type logomatchUsecase struct {
	logoDetector    LogoDetector
	projectAnalyzer ProjectAnalyzer
	coins           CoinResolver
}

// NewLogoMatchUsecase はlogomatchUsecaseの新しいインスタンスを生成します。
func NewLogoMatchUsecase(ld LogoDetector, pa ProjectAnalyzer, coins CoinResolver) *logomatchUsecase {
	return &logomatchUsecase{logoDetector: ld, projectAnalyzer: pa, coins: coins}
}

// MatchLogos は画像からロゴを検出し、カタログのコインと照合します。
// カタログに対応するコインがない検出結果は捨てられます。
func (u *logomatchUsecase) MatchLogos(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}

	logos, err := u.logoDetector.DetectLogos(ctx, imageData)
	if err != nil {
		return nil, err
	}

	var matches []entity.CoinMatch
	seen := map[string]bool{}
	for _, logo := range logos {
		for _, coin := range u.coins.SearchByName(logo.Name) {
			if seen[coin.ID] {
				continue
			}
			seen[coin.ID] = true
			matches = append(matches, entity.CoinMatch{
				CoinID:     coin.ID,
				Name:       coin.Name,
				Symbol:     coin.Symbol,
				Detected:   logo.Name,
				Confidence: logo.Confidence,
			})
		}
	}
	return matches, nil
}

// BriefProject はプロジェクト名から要約を生成します。
func (u *logomatchUsecase) BriefProject(ctx context.Context, name string) (*entity.ProjectBrief, error) {
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if utf8.RuneCountInString(name) > MaxProjectNameLength {
		return nil, fmt.Errorf("project name exceeds maximum length of %d characters", MaxProjectNameLength)
	}
	if !validProjectName.MatchString(name) {
		return nil, fmt.Errorf("project name contains invalid characters")
	}

	prompt := fmt.Sprintf(BriefPromptTemplate, name)
	summary, err := u.projectAnalyzer.Analyze(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("project analyzer failed for %q: %w", name, err)
	}
	return &entity.ProjectBrief{Name: name, Summary: summary}, nil
}
