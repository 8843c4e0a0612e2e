package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/cobrancas/internal/calculator"
	"github.com/mmynk/cobrancas/internal/service"
)

// Response bodies returned by the mutating endpoints.
const (
	statusCreated = "ok"
	statusUpdated = "atualizado"
)

// Pointer fields make "required" mean present: "" and 0 are accepted.
type createChargeRequest struct {
	ClientName *string  `json:"nome_cliente" binding:"required"`
	Amount     *float64 `json:"valor" binding:"required"`
	DueDate    *string  `json:"data_vencimento" binding:"required"`
	Status     *string  `json:"status" binding:"required"`
}

type updateStatusRequest struct {
	Status *string `json:"status" binding:"required"`
}

type statusTotalResponse struct {
	Status string  `json:"status"`
	Count  int     `json:"quantidade"`
	Amount float64 `json:"valor"`
}

type summaryResponse struct {
	Count       int                   `json:"quantidade"`
	Total       float64               `json:"total"`
	Paid        float64               `json:"pago"`
	Outstanding float64               `json:"em_aberto"`
	ByStatus    []statusTotalResponse `json:"por_status"`
}

// ChargeHandler serves /cobrancas.
type ChargeHandler struct {
	svc *service.ChargeService
}

func NewChargeHandler(svc *service.ChargeService) *ChargeHandler {
	return &ChargeHandler{svc: svc}
}

// CreateCharge handles POST /cobrancas.
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var req createChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	_, err := h.svc.Create(c.Request.Context(), service.CreateChargeInput{
		ClientName: *req.ClientName,
		Amount:     *req.Amount,
		DueDate:    *req.DueDate,
		Status:     *req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusCreated})
}

// ListCharges handles GET /cobrancas.
func (h *ChargeHandler) ListCharges(c *gin.Context) {
	charges, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, charges)
}

// UpdateChargeStatus handles PUT /cobrancas/:id.
func (h *ChargeHandler) UpdateChargeStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "id must be an integer"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), id, *req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusUpdated})
}

// GetSummary handles GET /cobrancas/resumo.
func (h *ChargeHandler) GetSummary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

func toSummaryResponse(s calculator.Summary) summaryResponse {
	byStatus := make([]statusTotalResponse, len(s.ByStatus))
	for i, st := range s.ByStatus {
		byStatus[i] = statusTotalResponse{Status: st.Status, Count: st.Count, Amount: st.Amount}
	}
	return summaryResponse{
		Count:       s.Count,
		Total:       s.Total,
		Paid:        s.Paid,
		Outstanding: s.Outstanding,
		ByStatus:    byStatus,
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrInvalidCharge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrChargeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
