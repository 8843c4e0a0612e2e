// Package rpc exposes the charge operations as a Connect service.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/cobrancas/internal/middleware"
	"github.com/mmynk/cobrancas/internal/service"
)

// ChargeServiceName is the fully-qualified name of the Connect service.
const ChargeServiceName = "cobrancas.v1.ChargeService"

// Procedure paths, relative to the server root.
const (
	ChargeServiceCreateChargeProcedure       = "/" + ChargeServiceName + "/CreateCharge"
	ChargeServiceListChargesProcedure        = "/" + ChargeServiceName + "/ListCharges"
	ChargeServiceUpdateChargeStatusProcedure = "/" + ChargeServiceName + "/UpdateChargeStatus"
	ChargeServiceGetSummaryProcedure         = "/" + ChargeServiceName + "/GetSummary"
)

// ChargeServer implements the Connect ChargeService on top of service.ChargeService.
type ChargeServer struct {
	svc *service.ChargeService
}

// NewChargeServer creates a new ChargeServer.
func NewChargeServer(svc *service.ChargeService) *ChargeServer {
	return &ChargeServer{svc: svc}
}

// NewChargeServiceHandler builds an HTTP handler serving every ChargeService
// procedure. It returns the path prefix to mount the handler on.
func NewChargeServiceHandler(svc *service.ChargeService, opts ...connect.HandlerOption) (string, http.Handler) {
	s := NewChargeServer(svc)
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ChargeServiceCreateChargeProcedure,
		connect.NewUnaryHandler(ChargeServiceCreateChargeProcedure, s.CreateCharge, opts...))
	mux.Handle(ChargeServiceListChargesProcedure,
		connect.NewUnaryHandler(ChargeServiceListChargesProcedure, s.ListCharges, opts...))
	mux.Handle(ChargeServiceUpdateChargeStatusProcedure,
		connect.NewUnaryHandler(ChargeServiceUpdateChargeStatusProcedure, s.UpdateChargeStatus, opts...))
	mux.Handle(ChargeServiceGetSummaryProcedure,
		connect.NewUnaryHandler(ChargeServiceGetSummaryProcedure, s.GetSummary, opts...))

	return "/" + ChargeServiceName + "/", mux
}

// DefaultInterceptors returns the interceptors the server installs on every procedure.
func DefaultInterceptors() connect.HandlerOption {
	return connect.WithInterceptors(
		middleware.RequestIDInterceptor(),
		middleware.LoggingInterceptor(),
	)
}

// CreateCharge creates a new charge.
func (s *ChargeServer) CreateCharge(ctx context.Context, req *connect.Request[CreateChargeRequest]) (*connect.Response[CreateChargeResponse], error) {
	msg := req.Msg
	if err := requireFields(
		field{"nome_cliente", msg.ClientName == nil},
		field{"valor", msg.Amount == nil},
		field{"data_vencimento", msg.DueDate == nil},
		field{"status", msg.Status == nil},
	); err != nil {
		return nil, toConnectError(err)
	}

	charge, err := s.svc.Create(ctx, service.CreateChargeInput{
		ClientName: *msg.ClientName,
		Amount:     *msg.Amount,
		DueDate:    *msg.DueDate,
		Status:     *msg.Status,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&CreateChargeResponse{Status: "ok", Charge: charge}), nil
}

// ListCharges returns every charge.
func (s *ChargeServer) ListCharges(ctx context.Context, _ *connect.Request[ListChargesRequest]) (*connect.Response[ListChargesResponse], error) {
	charges, err := s.svc.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ListChargesResponse{Charges: charges}), nil
}

// UpdateChargeStatus sets the status of one charge.
func (s *ChargeServer) UpdateChargeStatus(ctx context.Context, req *connect.Request[UpdateChargeStatusRequest]) (*connect.Response[UpdateChargeStatusResponse], error) {
	msg := req.Msg
	if err := requireFields(
		field{"id", msg.ID == nil},
		field{"status", msg.Status == nil},
	); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.svc.UpdateStatus(ctx, *msg.ID, *msg.Status); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&UpdateChargeStatusResponse{Status: "atualizado"}), nil
}

// GetSummary returns totals grouped by status.
func (s *ChargeServer) GetSummary(ctx context.Context, _ *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	summary, err := s.svc.Summary(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	byStatus := make([]StatusTotal, len(summary.ByStatus))
	for i, st := range summary.ByStatus {
		byStatus[i] = StatusTotal{Status: st.Status, Count: st.Count, Amount: st.Amount}
	}

	return connect.NewResponse(&GetSummaryResponse{
		Count:       summary.Count,
		Total:       summary.Total,
		Paid:        summary.Paid,
		Outstanding: summary.Outstanding,
		ByStatus:    byStatus,
	}), nil
}

type field struct {
	name    string
	missing bool
}

// requireFields reports every absent field at once. Empty values are fine.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.missing {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", service.ErrInvalidCharge, strings.Join(missing, ", "))
	}
	return nil
}

func toConnectError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCharge):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, service.ErrChargeNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		slog.Debug("Mapping internal error", "error", err)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}
}
