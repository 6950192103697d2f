package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cryptowatch_backend/internal/feature/logomatch/domain/entity"
	"cryptowatch_backend/internal/feature/logomatch/transport/handler"
)

// mockLogoMatchUsecase はLogoMatchUsecaseインターフェースのモック実装です。
type mockLogoMatchUsecase struct {
	MatchLogosFunc   func(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error)
	BriefProjectFunc func(ctx context.Context, name string) (*entity.ProjectBrief, error)
}

func (m *mockLogoMatchUsecase) MatchLogos(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error) {
	return m.MatchLogosFunc(ctx, imageData)
}

func (m *mockLogoMatchUsecase) BriefProject(ctx context.Context, name string) (*entity.ProjectBrief, error) {
	return m.BriefProjectFunc(ctx, name)
}

// createMultipartRequest はテスト用のマルチパートリクエストを生成するヘルパー関数です。
func createMultipartRequest(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		t.Fatalf("failed to copy content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, "/logo/detect", body)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestLogoMatchHandler_MatchLogos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupRequest   func(t *testing.T) *http.Request
		mockFunc       func(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: matches returned",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "test.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error) {
				return []entity.CoinMatch{
					{CoinID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Detected: "Bitcoin", Confidence: 0.95},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"coinId":"bitcoin","name":"Bitcoin","symbol":"btc","detected":"Bitcoin","confidence":0.95}]`,
		},
		{
			name: "success: no matches yields empty array",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "test.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: no image field",
			setupRequest: func(t *testing.T) *http.Request {
				req, _ := http.NewRequest(http.MethodPost, "/logo/detect", io.NopCloser(bytes.NewReader(nil)))
				return req
			},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"image file is required"}`,
		},
		{
			name: "error: usecase returns error",
			setupRequest: func(t *testing.T) *http.Request {
				return createMultipartRequest(t, "image", "test.jpg", []byte("fake-image"))
			},
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.CoinMatch, error) {
				return nil, errors.New("vision API error")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"logo detection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockLogoMatchUsecase{MatchLogosFunc: tt.mockFunc}
			h := handler.NewLogoMatchHandler(mockUC)

			router := gin.New()
			router.POST("/logo/detect", h.MatchLogos)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.setupRequest(t))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestLogoMatchHandler_BriefProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockFunc       func(ctx context.Context, name string) (*entity.ProjectBrief, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success: brief generated",
			requestBody: `{"name":"Bitcoin"}`,
			mockFunc: func(ctx context.Context, name string) (*entity.ProjectBrief, error) {
				assert.Equal(t, "Bitcoin", name)
				return &entity.ProjectBrief{
					Name:    "Bitcoin",
					Summary: "Bitcoin is a peer-to-peer digital currency.",
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"Bitcoin","summary":"Bitcoin is a peer-to-peer digital currency."}`,
		},
		{
			name:           "error: empty request body",
			requestBody:    `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"project name is required"}`,
		},
		{
			name:           "error: invalid json",
			requestBody:    `invalid`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"project name is required"}`,
		},
		{
			name:        "error: usecase returns error",
			requestBody: `{"name":"Bitcoin"}`,
			mockFunc: func(ctx context.Context, name string) (*entity.ProjectBrief, error) {
				return nil, errors.New("gemini API error")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"project brief failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockLogoMatchUsecase{BriefProjectFunc: tt.mockFunc}
			h := handler.NewLogoMatchHandler(mockUC)

			router := gin.New()
			router.POST("/logo/brief", h.BriefProject)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/logo/brief", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
