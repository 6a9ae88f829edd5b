package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// OrderPayment is a charge of a concluded service order's budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
//
// MPPayloadRaw keeps the provider body as received; MPPayload is the parsed copy.

type OrderPayment struct {
	ID          string        `json:"id"`
	OrderNumber string        `json:"order_number"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
