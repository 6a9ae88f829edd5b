package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordem_servico/internal/adapter/http/handlers/mocks"
	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_SearchClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clients := []entities.Client{{ID: "1", Name: "João Silva", PhoneNumber: "48999990000"}}

	t.Run("empty query lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := sessionRouter()
		r.GET("/v1/clients", h.SearchClients)

		uc.EXPECT().List(gomock.Any(), tok).Return(clients, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients?token=tok-1&q=%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["name"] != "João Silva" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := sessionRouter()
		r.GET("/v1/clients", h.SearchClients)

		uc.EXPECT().Search(gomock.Any(), tok, "joao").Return(clients, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients?token=tok-1&q=joao", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := sessionRouter()
		r.GET("/v1/clients", h.SearchClients)

		uc.EXPECT().Search(gomock.Any(), tok, "zzz").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients?token=tok-1&q=zzz", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing token from use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/clients", h.SearchClients)

		uc.EXPECT().List(gomock.Any(), entities.Session{}).Return(nil, usecase.ErrMissingToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
