package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"ordem_servico/internal/domain/entities"
	"ordem_servico/internal/domain/form"
	mock_interfaces "ordem_servico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func filledDraft(t *testing.T, uc *OrderFormUseCase) *form.OrderForm {
	t.Helper()
	f, err := uc.Draft(context.Background(), shop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.Number = "000321"
	f.ClientName = "Ana"
	f.ClientPhone = "48999990000"
	f.ClientDocument = "123"
	f.ClientZipCode = "88000000"
	f.ClientAddress = "Rua A"
	f.ClientNumber = "1"
	f.ClientState = "SC"
	f.ClientCity = "Florianópolis"
	f.DeviceBrand = "Apple"
	f.DeviceModel = "iPhone 11"
	f.DevicePassword = "0000"
	f.DeviceSerial = "F2L"
	f.DeviceIMEI = "356938035643809"
	f.Bills = []entities.Bill{{Description: "Tela", Amount: 1, Value: 250}}
	return f
}

func TestOrderFormUseCase_Draft(t *testing.T) {
	uc := NewOrderFormUseCase(nil, nil, nil, nil)
	uc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	if _, err := uc.Draft(context.Background(), entities.Session{}); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	f, err := uc.Draft(context.Background(), shop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Date != "2024-01-02" || len(f.Number) != 6 || len(f.Bills) != 1 {
		t.Fatalf("unexpected draft %+v", f)
	}
}

func TestOrderFormUseCase_Submit_CreatePayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	views := NewOrderViewUseCase(gateway, nil, nil, "", 0)
	uc := NewOrderFormUseCase(gateway, views, nil, publisher)

	var sent []byte
	gateway.EXPECT().CreateOrder(gomock.Any(), "tok-123", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			sent, _ = json.Marshal(o)
			o.ID = "new-id"
			return o, nil
		})
	gateway.EXPECT().ListOrders(gomock.Any(), "tok-123").Return([]entities.ServiceOrder{{ID: "new-id", Number: "000321"}}, nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	f := filledDraft(t, uc)
	saved, err := uc.Submit(context.Background(), shop, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != "new-id" || f.State != form.StateSucceeded {
		t.Fatalf("unexpected result saved=%+v state=%s", saved, f.State)
	}

	var m map[string]any
	if err := json.Unmarshal(sent, &m); err != nil {
		t.Fatalf("payload not json: %v", err)
	}
	if m["total_value"] != 250.0 {
		t.Fatalf("expected total_value 250, got %v", m["total_value"])
	}
	checklist := m["checklist"].(map[string]any)
	for k, v := range checklist {
		if v != "NT" {
			t.Fatalf("expected checklist.%s NT, got %v", k, v)
		}
	}
	for _, k := range []string{"terms", "terms_two", "terms_three", "terms_four", "terms_five", "terms_six"} {
		if _, ok := m[k]; ok {
			t.Fatalf("%s must not be sent", k)
		}
	}

	if _, err := views.FindByNumber(context.Background(), shop, "000321"); err != nil {
		t.Fatalf("expected listing refreshed with new order: %v", err)
	}
}

func TestOrderFormUseCase_Submit_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
	uc := NewOrderFormUseCase(gateway, nil, nil, nil)

	f := filledDraft(t, uc)
	f.ClientPhone = ""

	_, err := uc.Submit(context.Background(), shop, f)
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.FieldErrors) != 1 || verr.FieldErrors[0].Field != "client_phone" {
		t.Fatalf("unexpected field errors %+v", verr.FieldErrors)
	}
	if f.State != form.StateInvalid {
		t.Fatalf("expected invalid state, got %s", f.State)
	}
}

func TestOrderFormUseCase_Submit_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
	journal := mock_interfaces.NewMockISyncJournalRepository(ctrl)
	uc := NewOrderFormUseCase(gateway, nil, journal, nil)

	f := filledDraft(t, uc)
	f.Mode = form.ModeUpdate
	f.ID = "9"

	gateway.EXPECT().UpdateOrder(gomock.Any(), "9", gomock.Any()).Return(entities.ServiceOrder{}, errors.New("http 422"))
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m entities.SyncMutation) (entities.SyncMutation, error) {
			if m.Kind != entities.MutationUpdate || m.Outcome != entities.MutationRolledBack {
				t.Errorf("unexpected journal entry %+v", m)
			}
			return m, nil
		})

	if _, err := uc.Submit(context.Background(), shop, f); err == nil || err.Error() != "http 422" {
		t.Fatalf("expected http 422, got %v", err)
	}
	if f.State != form.StateFailed {
		t.Fatalf("expected failed state, got %s", f.State)
	}
}

func TestOrderFormUseCase_Submit_RejectsConcurrentSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
	uc := NewOrderFormUseCase(gateway, nil, nil, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	gateway.EXPECT().CreateOrder(gomock.Any(), "tok-123", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			close(started)
			<-release
			return o, nil
		}).Times(1)

	first := filledDraft(t, uc)
	second := filledDraft(t, uc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := uc.Submit(context.Background(), shop, first); err != nil {
			t.Errorf("first submit failed: %v", err)
		}
	}()
	<-started

	if _, err := uc.Submit(context.Background(), shop, second); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}
	close(release)
	wg.Wait()

	first.State = form.StateSubmitting
	if _, err := uc.Submit(context.Background(), shop, first); !errors.Is(err, ErrSubmitInProgress) {
		t.Fatalf("expected ErrSubmitInProgress for a form already submitting, got %v", err)
	}
}

func TestOrderFormUseCase_Submit_UpdateWithoutID(t *testing.T) {
	uc := NewOrderFormUseCase(nil, nil, nil, nil)
	f := filledDraft(t, uc)
	f.Mode = form.ModeUpdate

	if _, err := uc.Submit(context.Background(), shop, f); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
}

func TestOrderFormUseCase_EditForm(t *testing.T) {
	t.Run("seeds form with logo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
		views := NewOrderViewUseCase(gateway, nil, nil, "", 0)
		uc := NewOrderFormUseCase(gateway, views, nil, nil)

		gateway.EXPECT().ListOrders(gomock.Any(), "tok-123").Return(remoteOrders(), nil)
		gateway.EXPECT().ShopLogo(gomock.Any(), "tok-123").Return("https://img/logo.png", nil)

		f, err := uc.EditForm(context.Background(), shop, "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Mode != form.ModeUpdate || f.ID != "2" || f.ClientName != "Maria" || f.LogoURL != "https://img/logo.png" {
			t.Fatalf("unexpected form %+v", f)
		}
	})

	t.Run("logo failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
		views := NewOrderViewUseCase(gateway, nil, nil, "", 0)
		uc := NewOrderFormUseCase(gateway, views, nil, nil)

		gateway.EXPECT().ListOrders(gomock.Any(), "tok-123").Return(remoteOrders(), nil)
		gateway.EXPECT().ShopLogo(gomock.Any(), "tok-123").Return("", errors.New("timeout"))

		f, err := uc.EditForm(context.Background(), shop, "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.LogoURL != "" {
			t.Fatalf("expected empty logo, got %q", f.LogoURL)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIServiceOrderGateway(ctrl)
		views := NewOrderViewUseCase(gateway, nil, nil, "", 0)
		uc := NewOrderFormUseCase(gateway, views, nil, nil)

		gateway.EXPECT().ListOrders(gomock.Any(), "tok-123").Return(remoteOrders(), nil)
		gateway.EXPECT().ShopLogo(gomock.Any(), "tok-123").Return("", nil).AnyTimes()

		if _, err := uc.EditForm(context.Background(), shop, "404"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderFormUseCase_RemoveBill(t *testing.T) {
	uc := NewOrderFormUseCase(nil, nil, nil, nil)
	f := filledDraft(t, uc)

	var verr *form.ValidationError
	if err := uc.RemoveBill(f, 0); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError removing last bill, got %v", err)
	}
	f.AppendBill(entities.Bill{Description: "Bateria", Amount: 1, Value: 90})
	if err := uc.RemoveBill(f, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.TotalValue() != 90 {
		t.Fatalf("expected total 90, got %v", f.TotalValue())
	}
}
