package rpc

import "github.com/mmynk/cobrancas/internal/models"

// CreateChargeRequest fields are pointers so an absent field can be told
// apart from "" or 0. Every field is required.
type CreateChargeRequest struct {
	ClientName *string  `json:"nome_cliente"`
	Amount     *float64 `json:"valor"`
	DueDate    *string  `json:"data_vencimento"`
	Status     *string  `json:"status"`
}

// CreateChargeResponse echoes the stored charge, including its new ID.
type CreateChargeResponse struct {
	Status string         `json:"status"`
	Charge *models.Charge `json:"cobranca"`
}

type ListChargesRequest struct{}

type ListChargesResponse struct {
	Charges []*models.Charge `json:"cobrancas"`
}

type UpdateChargeStatusRequest struct {
	ID     *int64  `json:"id"`
	Status *string `json:"status"`
}

type UpdateChargeStatusResponse struct {
	Status string `json:"status"`
}

type GetSummaryRequest struct{}

type StatusTotal struct {
	Status string  `json:"status"`
	Count  int     `json:"quantidade"`
	Amount float64 `json:"valor"`
}

type GetSummaryResponse struct {
	Count       int           `json:"quantidade"`
	Total       float64       `json:"total"`
	Paid        float64       `json:"pago"`
	Outstanding float64       `json:"em_aberto"`
	ByStatus    []StatusTotal `json:"por_status"`
}
