package entities

import "time"

// MutationKind names the remote operation behind an optimistic change.
type MutationKind string

const (
	MutationStatus MutationKind = "status"
	MutationDelete MutationKind = "delete"
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
)

// MutationOutcome records how the remote commit of a local change ended.
type MutationOutcome string

const (
	MutationCommitted  MutationOutcome = "committed"
	MutationRolledBack MutationOutcome = "rolled_back"
)

// SyncMutation is a journal entry for a change applied locally before the remote
// API confirmed it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
type SyncMutation struct {
	ID          string          `json:"id"`
	ShopToken   string          `json:"shop_token"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Kind        MutationKind    `json:"kind"`
	Previous    string          `json:"previous,omitempty"`
	Requested   string          `json:"requested,omitempty"`
	Outcome     MutationOutcome `json:"outcome"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
