package request

import "encoding/json"

// OrderPaymentCreateRequest is the payload of the charge route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.

type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
