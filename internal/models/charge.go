package models

// Well-known status values. Any other string is accepted and stored as-is.
const (
	StatusPending = "pendente"
	StatusPaid    = "pago"
	StatusOverdue = "vencido"
)

// Charge represents a billing charge ("cobrança").
type Charge struct {
	// ID is assigned by the store on creation and never changes.
	ID int64 `json:"id"`

	// ClientName is the name of the client being charged.
	ClientName string `json:"nome_cliente"`

	// Amount is the charged value. No sign or range constraint applies.
	Amount float64 `json:"valor"`

	// DueDate is the caller-supplied due date, stored verbatim.
	DueDate string `json:"data_vencimento"`

	// Status is the payment status (e.g. "pendente", "pago").
	Status string `json:"status"`
}
