package entities

import (
	"encoding/json"
	"strings"
)

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// The remote API stores the Portuguese labels verbatim, so the constants carry
// the accented spelling used on the wire.

type OrderStatus string

const (
	OrderStatusPendente  OrderStatus = "Pendente"
	OrderStatusConcluido OrderStatus = "Concluído"
	OrderStatusCancelado OrderStatus = "Cancelado"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendente, OrderStatusConcluido, OrderStatusCancelado:
		return true
	}
	return false
}

// ChecklistValue is the outcome of a device check: tested ok, tested faulty, not tested.
type ChecklistValue string

const (
	ChecklistYes       ChecklistValue = "YES"
	ChecklistNo        ChecklistValue = "NO"
	ChecklistNotTested ChecklistValue = "NT"
)

// Checklist is the device inspection performed when the device is received.
//
// Every component must hold one of YES/NO/NT; the form defaults them to NT.
type Checklist struct {
	DeviceTurnsOn ChecklistValue `json:"device_turns_on" validate:"required,oneof=YES NO NT"`
	FaultyScreen  ChecklistValue `json:"faulty_screen" validate:"required,oneof=YES NO NT"`
	Restarting    ChecklistValue `json:"restarting" validate:"required,oneof=YES NO NT"`
	Locked        ChecklistValue `json:"locked" validate:"required,oneof=YES NO NT"`
	Network       ChecklistValue `json:"network" validate:"required,oneof=YES NO NT"`
	Wifi          ChecklistValue `json:"wifi" validate:"required,oneof=YES NO NT"`
	Headset       ChecklistValue `json:"headset" validate:"required,oneof=YES NO NT"`
	Microphone    ChecklistValue `json:"microphone" validate:"required,oneof=YES NO NT"`
	Speaker       ChecklistValue `json:"speaker" validate:"required,oneof=YES NO NT"`
	FrontalCamera ChecklistValue `json:"frontal_camera" validate:"required,oneof=YES NO NT"`
	BackCamera    ChecklistValue `json:"back_camera" validate:"required,oneof=YES NO NT"`
	Biometry      ChecklistValue `json:"biometry" validate:"required,oneof=YES NO NT"`
	FrontSensors  ChecklistValue `json:"front_sensors" validate:"required,oneof=YES NO NT"`
	Touch         ChecklistValue `json:"touch" validate:"required,oneof=YES NO NT"`
	Buttons       ChecklistValue `json:"buttons" validate:"required,oneof=YES NO NT"`
	Keyboard      ChecklistValue `json:"keyboard" validate:"required,oneof=YES NO NT"`
	Casing        ChecklistValue `json:"casing" validate:"required,oneof=YES NO NT"`
	Charger       ChecklistValue `json:"charger" validate:"required,oneof=YES NO NT"`
	Backup        ChecklistValue `json:"backup" validate:"required,oneof=YES NO NT"`
}

// NewChecklist returns a checklist with every component marked as not tested.
func NewChecklist() Checklist {
	var c Checklist
	c.fillEmpty(ChecklistNotTested)
	return c
}

// Components returns pointers to every component, in display order.
func (c *Checklist) Components() []*ChecklistValue {
	return []*ChecklistValue{
		&c.DeviceTurnsOn, &c.FaultyScreen, &c.Restarting, &c.Locked, &c.Network,
		&c.Wifi, &c.Headset, &c.Microphone, &c.Speaker, &c.FrontalCamera,
		&c.BackCamera, &c.Biometry, &c.FrontSensors, &c.Touch, &c.Buttons,
		&c.Keyboard, &c.Casing, &c.Charger, &c.Backup,
	}
}

func (c *Checklist) fillEmpty(v ChecklistValue) {
	for _, p := range c.Components() {
		if *p == "" {
			*p = v
		}
	}
}

// Bill is one line of the repair budget (orçamento).
type Bill struct {
	Description string  `json:"description" validate:"min=3"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Value       float64 `json:"value" validate:"gt=0"`
}

// TotalValue sums the value of every bill line.
func TotalValue(bills []Bill) float64 {
	total := 0.0
	for _, b := range bills {
		total += b.Value
	}
	return total
}

// ServiceOrder is the repair order as served by the remote API.
//
// Terms fields are pointers: a nil term is absent from the JSON payload, which is
// how unchecked warranty clauses are left out of a submission.
type ServiceOrder struct {
	ID     string      `json:"id,omitempty"`
	Number string      `json:"number"`
	Date   string      `json:"date"`
	Logo   string      `json:"logo,omitempty"`
	PDFURL string      `json:"pdf_url,omitempty"`
	Status OrderStatus `json:"status"`

	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	ClientDocument string `json:"client_document"`
	ClientZipCode  string `json:"client_zipcode"`
	ClientAddress  string `json:"client_address"`
	ClientNumber   string `json:"client_number"`
	ClientState    string `json:"client_state"`
	ClientCity     string `json:"client_city"`

	DeviceBrand          string `json:"device_brand"`
	DeviceModel          string `json:"device_model"`
	DevicePassword       string `json:"device_password"`
	DeviceSerial         string `json:"device_serial"`
	DeviceIMEI           string `json:"device_imei"`
	DeviceAccessories    string `json:"device_accessories"`
	DeviceAdditionalInfo string `json:"device_additional_info"`

	Terms      *string `json:"terms,omitempty"`
	TermsTwo   *string `json:"terms_two,omitempty"`
	TermsThree *string `json:"terms_three,omitempty"`
	TermsFour  *string `json:"terms_four,omitempty"`
	TermsFive  *string `json:"terms_five,omitempty"`
	TermsSix   *string `json:"terms_six,omitempty"`

	IsCheckedTerms      bool `json:"is_checked_terms"`
	IsCheckedTermsTwo   bool `json:"is_checked_terms_two"`
	IsCheckedTermsThree bool `json:"is_checked_terms_three"`
	IsCheckedTermsFour  bool `json:"is_checked_terms_four"`
	IsCheckedTermsFive  bool `json:"is_checked_terms_five"`
	IsCheckedTermsSix   bool `json:"is_checked_terms_six"`

	Checklist  Checklist `json:"checklist"`
	Bills      []Bill    `json:"bills"`
	TotalValue float64   `json:"total_value"`
}

// TermsSlots returns the six term texts and their checkbox flags, in order.
func (o *ServiceOrder) TermsSlots() ([6]**string, [6]*bool) {
	return [6]**string{&o.Terms, &o.TermsTwo, &o.TermsThree, &o.TermsFour, &o.TermsFive, &o.TermsSix},
		[6]*bool{&o.IsCheckedTerms, &o.IsCheckedTermsTwo, &o.IsCheckedTermsThree, &o.IsCheckedTermsFour, &o.IsCheckedTermsFive, &o.IsCheckedTermsSix}
}

// Normalize fills absent values with their defaults and recomputes the total.
func (o *ServiceOrder) Normalize() {
	o.ID = strings.TrimSpace(o.ID)
	o.Number = strings.TrimSpace(o.Number)
	if o.Status == "" {
		o.Status = OrderStatusPendente
	}
	if o.Bills == nil {
		o.Bills = []Bill{}
	}
	o.Checklist.fillEmpty(ChecklistNotTested)
	o.TotalValue = TotalValue(o.Bills)
}

// UnmarshalJSON accepts id and number as either JSON strings or numbers; older
// records were created with numeric order numbers.
func (o *ServiceOrder) UnmarshalJSON(b []byte) error {
	type alias ServiceOrder
	aux := struct {
		*alias
		ID     json.RawMessage `json:"id"`
		Number json.RawMessage `json:"number"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	o.ID = scalarString(aux.ID)
	o.Number = scalarString(aux.Number)
	return nil
}

func scalarString(raw json.RawMessage) string {
	v := strings.TrimSpace(string(raw))
	if v == "" || v == "null" {
		return ""
	}
	if strings.HasPrefix(v, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return v
}
