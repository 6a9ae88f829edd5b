package form

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"ordem_servico/internal/domain/entities"
)

// Mode tells whether the form creates a new order or edits an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// State is the submission lifecycle of a form.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var ErrBillIndex = errors.New("bill index out of range")

// DateLayout is the wire format of the order date.
const DateLayout = "2006-01-02"

// OrderForm holds everything the create/update screen edits.
//
// LogoURL is shown on the update screen only; it never reaches the payload.
type OrderForm struct {
	Mode    Mode                 `json:"mode"`
	ID      string               `json:"id,omitempty"`
	Number  string               `json:"number" validate:"required"`
	Date    string               `json:"date" validate:"required"`
	Status  entities.OrderStatus `json:"status,omitempty"`
	LogoURL string               `json:"logo_url,omitempty" validate:"-"`

	ClientName     string `json:"client_name" validate:"required"`
	ClientPhone    string `json:"client_phone" validate:"required"`
	ClientDocument string `json:"client_document" validate:"required"`
	ClientZipCode  string `json:"client_zipcode" validate:"required"`
	ClientAddress  string `json:"client_address" validate:"required"`
	ClientNumber   string `json:"client_number" validate:"required"`
	ClientState    string `json:"client_state" validate:"required"`
	ClientCity     string `json:"client_city" validate:"required"`

	DeviceBrand          string `json:"device_brand" validate:"required"`
	DeviceModel          string `json:"device_model" validate:"required"`
	DevicePassword       string `json:"device_password" validate:"required"`
	DeviceSerial         string `json:"device_serial" validate:"required"`
	DeviceIMEI           string `json:"device_imei" validate:"min=15"`
	DeviceAccessories    string `json:"device_accessories"`
	DeviceAdditionalInfo string `json:"device_additional_info"`

	Checklist entities.Checklist `json:"checklist"`
	Bills     []entities.Bill    `json:"bills" validate:"min=1,dive"`
	Terms     [TermSlots]Term    `json:"terms" validate:"-"`

	State State `json:"state" validate:"-"`
}

// NewCreateDraft starts a blank order with a random six digit number, today's
// date, every checklist component as NT and a single empty bill line.
func NewCreateDraft(now time.Time) *OrderForm {
	return &OrderForm{
		Mode:      ModeCreate,
		Number:    fmt.Sprintf("%06d", rand.IntN(1000000)),
		Date:      now.Format(DateLayout),
		Status:    entities.OrderStatusPendente,
		Checklist: entities.NewChecklist(),
		Bills:     []entities.Bill{{}},
		Terms:     defaultTerms(),
		State:     StateIdle,
	}
}

// NewUpdateForm seeds a form from an existing order. Unchecked clauses fall back
// to the canned text so they can be re-enabled.
func NewUpdateForm(o entities.ServiceOrder, logoURL string) *OrderForm {
	o.Normalize()
	f := &OrderForm{
		Mode:                 ModeUpdate,
		ID:                   o.ID,
		Number:               o.Number,
		Date:                 formatDate(o.Date),
		Status:               o.Status,
		LogoURL:              logoURL,
		ClientName:           o.ClientName,
		ClientPhone:          o.ClientPhone,
		ClientDocument:       o.ClientDocument,
		ClientZipCode:        o.ClientZipCode,
		ClientAddress:        o.ClientAddress,
		ClientNumber:         o.ClientNumber,
		ClientState:          o.ClientState,
		ClientCity:           o.ClientCity,
		DeviceBrand:          o.DeviceBrand,
		DeviceModel:          o.DeviceModel,
		DevicePassword:       o.DevicePassword,
		DeviceSerial:         o.DeviceSerial,
		DeviceIMEI:           o.DeviceIMEI,
		DeviceAccessories:    o.DeviceAccessories,
		DeviceAdditionalInfo: o.DeviceAdditionalInfo,
		Checklist:            o.Checklist,
		Bills:                append([]entities.Bill(nil), o.Bills...),
		Terms:                defaultTerms(),
		State:                StateIdle,
	}
	if len(f.Bills) == 0 {
		f.Bills = []entities.Bill{{}}
	}

	texts, checked := o.TermsSlots()
	for i := range f.Terms {
		if *texts[i] != nil && **texts[i] != "" {
			f.Terms[i].Text = **texts[i]
		}
		f.Terms[i].Checked = *checked[i]
	}
	return f
}

// formatDate keeps only the YYYY-MM-DD part of a stored timestamp.
func formatDate(v string) string {
	if len(v) >= len(DateLayout) {
		if _, err := time.Parse(DateLayout, v[:len(DateLayout)]); err == nil {
			return v[:len(DateLayout)]
		}
	}
	return v
}

func (f *OrderForm) AppendBill(b entities.Bill) {
	f.Bills = append(f.Bills, b)
}

// RemoveBill drops line i. The last remaining line cannot be removed.
func (f *OrderForm) RemoveBill(i int) error {
	if i < 0 || i >= len(f.Bills) {
		return ErrBillIndex
	}
	if len(f.Bills) == 1 {
		return fieldError(fieldBills, msgBillsMin)
	}
	f.Bills = append(f.Bills[:i:i], f.Bills[i+1:]...)
	return nil
}

func (f *OrderForm) TotalValue() float64 {
	return entities.TotalValue(f.Bills)
}

func (f *OrderForm) SetTerm(i int, text string) error {
	if i < 0 || i >= TermSlots {
		return fmt.Errorf("term slot %d out of range", i)
	}
	f.Terms[i].Text = text
	return nil
}

func (f *OrderForm) CheckTerm(i int, checked bool) error {
	if i < 0 || i >= TermSlots {
		return fmt.Errorf("term slot %d out of range", i)
	}
	f.Terms[i].Checked = checked
	return nil
}

// ApplyClient copies a registered client into the client section.
func (f *OrderForm) ApplyClient(c entities.Client) {
	f.ClientName = c.Name
	f.ClientPhone = c.PhoneNumber
	f.ClientAddress = c.Address
	f.ClientState = c.State
	f.ClientCity = c.City
	f.ClientZipCode = c.PostalCode
	f.ClientDocument = c.Document
	f.ClientNumber = c.Number
}

func (f *OrderForm) Validate() ValidationResult {
	return validateStruct(f)
}

// Payload builds the order to send. A clause is included only when its box is
// checked; an empty edited text falls back to the canned one.
func (f *OrderForm) Payload() entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:                   f.ID,
		Number:               f.Number,
		Date:                 f.Date,
		Status:               f.Status,
		ClientName:           f.ClientName,
		ClientPhone:          f.ClientPhone,
		ClientDocument:       f.ClientDocument,
		ClientZipCode:        f.ClientZipCode,
		ClientAddress:        f.ClientAddress,
		ClientNumber:         f.ClientNumber,
		ClientState:          f.ClientState,
		ClientCity:           f.ClientCity,
		DeviceBrand:          f.DeviceBrand,
		DeviceModel:          f.DeviceModel,
		DevicePassword:       f.DevicePassword,
		DeviceSerial:         f.DeviceSerial,
		DeviceIMEI:           f.DeviceIMEI,
		DeviceAccessories:    f.DeviceAccessories,
		DeviceAdditionalInfo: f.DeviceAdditionalInfo,
		Checklist:            f.Checklist,
		Bills:                append([]entities.Bill(nil), f.Bills...),
	}
	if f.Mode == ModeCreate {
		o.ID = ""
	}

	texts, checked := o.TermsSlots()
	for i, t := range f.Terms {
		*checked[i] = t.Checked
		if !t.Checked {
			continue
		}
		text := t.Text
		if text == "" {
			text = DefaultTerms[i]
		}
		*texts[i] = &text
	}

	o.Normalize()
	return o
}
