package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ordem_servico/internal/adapter/http/handlers/mocks"
	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/listing"
	"ordem_servico/internal/infrastructure/estoquefacil"
	"ordem_servico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var tok = entities.NewSession("tok-1")

func samplePage() usecase.OrderPage {
	return usecase.OrderPage{
		Page: listing.Page{Number: 2, PageCount: 3, TotalItems: 25, HasPrev: true, HasNext: true},
		Rows: []listing.Row{
			{ID: "11", Number: "000011", ClientName: "Ana", Status: entities.OrderStatusPendente, StatusColor: listing.ColorDefault, PDFURL: "https://x/pdfs/OS_000011.pdf"},
		},
		Filter: listing.Filter{ClientName: "ana"},
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().Page(gomock.Any(), tok, listing.Filter{ClientName: "ana"}, 2).Return(samplePage(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?token=tok-1&client_name=%20ana%20&page=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["page"] != 2.0 || body["page_count"] != 3.0 || body["has_next"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		items := body["items"].([]any)
		if len(items) != 1 || items[0].(map[string]any)["number"] != "000011" {
			t.Fatalf("unexpected items: %v", items)
		}
	})

	t.Run("page defaults to first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().Page(gomock.Any(), tok, listing.Filter{}, 1).Return(usecase.OrderPage{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?token=tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders", h.ListOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?token=tok-1&page=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders", h.ListOrders)

		uc.EXPECT().Page(gomock.Any(), tok, gomock.Any(), 1).
			Return(usecase.OrderPage{}, &estoquefacil.RemoteError{Op: "list orders", StatusCode: http.StatusInternalServerError})

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?token=tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestOrderHandler_RefreshOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderViewUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := sessionRouter()
	r.POST("/v1/orders/refresh", h.RefreshOrders)

	uc.EXPECT().Refresh(gomock.Any(), tok).Return(samplePage(), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/orders/refresh?token=tok-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), tok, "11", entities.OrderStatusConcluido).
			Return(listing.Row{ID: "11", Number: "000011", Status: entities.OrderStatusConcluido}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/11/status?token=tok-1", bytes.NewBufferString(`{"status":"Concluído"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Concluído" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/11/status?token=tok-1", bytes.NewBufferString(`{"status":"Arquivado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/11/status?token=tok-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), tok, "99", entities.OrderStatusCancelado).Return(listing.Row{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/99/status?token=tok-1", bytes.NewBufferString(`{"status":"Cancelado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The use case decides on the confirmation; the mock forwards to it.
	confirmAware := func(_ context.Context, _ entities.Session, _ string, c usecase.Confirmer) error {
		if !c.Confirm(context.Background(), "delete?") {
			return usecase.ErrDeleteNotConfirmed
		}
		return nil
	}

	t.Run("not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.DELETE("/v1/orders/:number", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), tok, "000011", gomock.Any()).DoAndReturn(confirmAware)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/000011?token=tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPreconditionRequired {
			t.Fatalf("expected 428, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.DELETE("/v1/orders/:number", h.DeleteOrder)

		uc.EXPECT().Delete(gomock.Any(), tok, "000011", gomock.Any()).DoAndReturn(confirmAware)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/000011?token=tok-1&confirm=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SyncHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderViewUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := sessionRouter()
	r.GET("/v1/sync/:number", h.SyncHistory)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.EXPECT().History(gomock.Any(), "000011").Return([]entities.SyncMutation{{
		ID: "m1", OrderID: "11", OrderNumber: "000011", Kind: entities.MutationStatus,
		Previous: "Pendente", Requested: "Concluído", Outcome: entities.MutationRolledBack, Error: "timeout", CreatedAt: at,
	}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sync/000011?token=tok-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["outcome"] != string(entities.MutationRolledBack) || body[0]["error"] != "timeout" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestOrderHandler_ExportOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rows := []listing.Row{
		{ID: "11", Number: "000011", ClientName: "Ana", Status: entities.OrderStatusPendente, PDFURL: "https://x/pdfs/OS_000011.pdf"},
		{ID: "12", Number: "000012", ClientName: "João", Status: entities.OrderStatusConcluido, PDFURL: "https://x/pdfs/OS_000012.pdf"},
	}

	t.Run("csv by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders/export", h.ExportOrders)

		// the filter goes straight to ExportRows; the listing is not paged first
		uc.EXPECT().ExportRows(gomock.Any(), tok, listing.Filter{Number: "0000"}).Return(rows, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/export?token=tok-1&number=0000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "ordens_servico.csv") {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
		records, err := csv.NewReader(w.Body).ReadAll()
		if err != nil {
			t.Fatalf("invalid csv: %v", err)
		}
		if len(records) != 3 || records[2][2] != "João" {
			t.Fatalf("unexpected records %v", records)
		}
	})

	t.Run("xlsx", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders/export", h.ExportOrders)

		uc.EXPECT().ExportRows(gomock.Any(), tok, listing.Filter{}).Return(rows, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/export?token=tok-1&format=xlsx", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		// xlsx files are zip archives.
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
			t.Fatalf("expected zip payload")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders/export", h.ExportOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/export?token=tok-1&format=pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderViewUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := sessionRouter()
		r.GET("/v1/orders/export", h.ExportOrders)

		uc.EXPECT().ExportRows(gomock.Any(), tok, gomock.Any()).Return(nil, context.DeadlineExceeded)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/export?token=tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrMissingToken, http.StatusUnauthorized},
		{estoquefacil.ErrEmptyToken, http.StatusUnauthorized},
		{usecase.ErrOrderNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatus, http.StatusBadRequest},
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{usecase.ErrDeleteNotConfirmed, http.StatusPreconditionRequired},
		{usecase.ErrSubmitInProgress, http.StatusConflict},
		{&estoquefacil.RemoteError{Op: "x", StatusCode: http.StatusNotFound}, http.StatusNotFound},
		{&estoquefacil.RemoteError{Op: "x", StatusCode: http.StatusServiceUnavailable}, http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapOrderError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
