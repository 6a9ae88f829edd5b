package response

import (
	"time"

	"ordem_servico/internal/domain/entities"
)

type OrderPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	OrderNumber string    `json:"order_number"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		PaymentID:    p.ID,
		OrderNumber:  p.OrderNumber,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
