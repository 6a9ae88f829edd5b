package form

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"ordem_servico/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() *OrderForm {
	f := NewCreateDraft(time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC))
	f.Number = "000321"
	f.ClientName = "Ana Souza"
	f.ClientPhone = "48999990000"
	f.ClientDocument = "12345678900"
	f.ClientZipCode = "88000000"
	f.ClientAddress = "Rua das Flores"
	f.ClientNumber = "12"
	f.ClientState = "SC"
	f.ClientCity = "Florianópolis"
	f.DeviceBrand = "Samsung"
	f.DeviceModel = "A52"
	f.DevicePassword = "1234"
	f.DeviceSerial = "SN123"
	f.DeviceIMEI = "356938035643809"
	f.Bills = []entities.Bill{{Description: "Tela", Amount: 1, Value: 250}}
	return f
}

func messagesByField(r ValidationResult) map[string]string {
	out := make(map[string]string, len(r.FieldErrors))
	for _, fe := range r.FieldErrors {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestNewCreateDraft(t *testing.T) {
	f := NewCreateDraft(time.Date(2024, 5, 17, 23, 59, 0, 0, time.UTC))

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), f.Number)
	assert.Equal(t, "2024-05-17", f.Date)
	assert.Equal(t, ModeCreate, f.Mode)
	assert.Equal(t, StateIdle, f.State)
	require.Len(t, f.Bills, 1)
	for _, c := range f.Checklist.Components() {
		assert.Equal(t, entities.ChecklistNotTested, *c)
	}
	for i, term := range f.Terms {
		assert.Equal(t, DefaultTerms[i], term.Text)
		assert.False(t, term.Checked)
	}
}

func TestValidate_ValidForm(t *testing.T) {
	r := validForm().Validate()
	assert.True(t, r.Valid(), "unexpected errors: %+v", r.FieldErrors)
	assert.NoError(t, r.Err())
}

func TestValidate_RequiredFieldMessages(t *testing.T) {
	f := validForm()
	f.ClientName = ""
	f.ClientCity = ""
	f.DeviceIMEI = "123"
	f.Date = ""

	r := f.Validate()
	msgs := messagesByField(r)

	assert.Equal(t, "Nome do cliente é obrigatório", msgs["client_name"])
	assert.Equal(t, "Cidade do cliente é obrigatória", msgs["client_city"])
	assert.Equal(t, "IMEI do dispositivo é obrigatório ter no mínimo 15 dígitos.", msgs["device_imei"])
	assert.Equal(t, "Data é obrigatório", msgs["date"])
	assert.Len(t, r.FieldErrors, 4)

	var verr *ValidationError
	require.ErrorAs(t, r.Err(), &verr)
	assert.Len(t, verr.FieldErrors, 4)
}

func TestValidate_OptionalDeviceFields(t *testing.T) {
	f := validForm()
	f.DeviceAccessories = ""
	f.DeviceAdditionalInfo = ""
	assert.True(t, f.Validate().Valid())
}

func TestValidate_ChecklistAndBills(t *testing.T) {
	f := validForm()
	f.Checklist.Wifi = ""
	f.Checklist.Touch = "MAYBE"
	f.Bills = []entities.Bill{{Description: "ab", Amount: 0, Value: -1}}

	msgs := messagesByField(f.Validate())

	assert.Equal(t, "Campo obrigatório", msgs["checklist.wifi"])
	assert.Equal(t, "Campo obrigatório", msgs["checklist.touch"])
	assert.Equal(t, "Por favor, informe uma descrição válida.", msgs["bills[0].description"])
	assert.Equal(t, "Por favor, informe um valor válido", msgs["bills[0].amount"])
	assert.Equal(t, "Por favor, informe um valor válido", msgs["bills[0].value"])
}

func TestValidate_NoBills(t *testing.T) {
	f := validForm()
	f.Bills = nil
	msgs := messagesByField(f.Validate())
	assert.Equal(t, "Você deve incluir pelo menos um item.", msgs["bills"])
}

func TestBills_TotalFollowsAppendAndRemove(t *testing.T) {
	f := validForm()
	assert.Equal(t, 250.0, f.TotalValue())

	f.AppendBill(entities.Bill{Description: "Bateria", Amount: 1, Value: 120})
	f.AppendBill(entities.Bill{Description: "Película", Amount: 2, Value: 30})
	assert.Equal(t, 400.0, f.TotalValue())

	require.NoError(t, f.RemoveBill(0))
	assert.Equal(t, 150.0, f.TotalValue())
	require.NoError(t, f.RemoveBill(1))
	assert.Equal(t, 120.0, f.TotalValue())
	assert.Equal(t, "Bateria", f.Bills[0].Description)
}

func TestRemoveBill_LastLineRejected(t *testing.T) {
	f := validForm()

	err := f.RemoveBill(0)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.FieldErrors, 1)
	assert.Equal(t, "bills", verr.FieldErrors[0].Field)
	assert.Len(t, f.Bills, 1)
	assert.Equal(t, 250.0, f.TotalValue())
}

func TestRemoveBill_OutOfRange(t *testing.T) {
	f := validForm()
	assert.ErrorIs(t, f.RemoveBill(3), ErrBillIndex)
	assert.ErrorIs(t, f.RemoveBill(-1), ErrBillIndex)
}

func TestPayload_CreateScenario(t *testing.T) {
	f := validForm()

	b, err := json.Marshal(f.Payload())
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	assert.Equal(t, "000321", m["number"])
	assert.Equal(t, 250.0, m["total_value"])
	_, hasID := m["id"]
	assert.False(t, hasID, "a new order carries no id")
	checklist, ok := m["checklist"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, checklist, 19)
	for k, v := range checklist {
		assert.Equal(t, "NT", v, "checklist.%s", k)
	}
	for _, k := range []string{"terms", "terms_two", "terms_three", "terms_four", "terms_five", "terms_six"} {
		_, present := m[k]
		assert.False(t, present, "%s must not be sent", k)
	}
	_, hasLogo := m["logo_url"]
	assert.False(t, hasLogo)
}

func TestPayload_TermsPresentIffChecked(t *testing.T) {
	f := validForm()
	require.NoError(t, f.CheckTerm(1, true))
	require.NoError(t, f.CheckTerm(4, true))
	require.NoError(t, f.SetTerm(4, "Texto editado"))
	require.NoError(t, f.SetTerm(2, "Nunca enviado"))

	o := f.Payload()

	assert.Nil(t, o.Terms)
	require.NotNil(t, o.TermsTwo)
	assert.Equal(t, DefaultTerms[1], *o.TermsTwo)
	assert.Nil(t, o.TermsThree)
	require.NotNil(t, o.TermsFive)
	assert.Equal(t, "Texto editado", *o.TermsFive)
	assert.True(t, o.IsCheckedTermsTwo)
	assert.True(t, o.IsCheckedTermsFive)
	assert.False(t, o.IsCheckedTermsThree)

	assert.Error(t, f.CheckTerm(6, true))
}

func TestNewUpdateForm_SeedsFromOrder(t *testing.T) {
	custom := "Garantia especial"
	order := entities.ServiceOrder{
		ID:                  "77",
		Number:              "123456",
		Date:                "2024-03-09T00:00:00.000Z",
		Status:              entities.OrderStatusConcluido,
		ClientName:          "José",
		TermsThree:          &custom,
		IsCheckedTermsThree: true,
		Bills:               []entities.Bill{{Description: "Tela", Amount: 1, Value: 300}},
	}

	f := NewUpdateForm(order, "https://cdn.example.com/logo.png")

	assert.Equal(t, ModeUpdate, f.Mode)
	assert.Equal(t, "77", f.ID)
	assert.Equal(t, "2024-03-09", f.Date)
	assert.Equal(t, "https://cdn.example.com/logo.png", f.LogoURL)
	assert.Equal(t, custom, f.Terms[2].Text)
	assert.True(t, f.Terms[2].Checked)
	assert.Equal(t, DefaultTerms[0], f.Terms[0].Text)
	assert.False(t, f.Terms[0].Checked)
	assert.Equal(t, entities.ChecklistNotTested, f.Checklist.Keyboard)

	p := f.Payload()
	assert.Equal(t, "77", p.ID)
	assert.Equal(t, entities.OrderStatusConcluido, p.Status)
	require.NotNil(t, p.TermsThree)
	assert.Equal(t, custom, *p.TermsThree)
	assert.Equal(t, 300.0, p.TotalValue)
}
