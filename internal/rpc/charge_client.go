package rpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// ChargeServiceClient is a client for the cobrancas.v1.ChargeService service.
type ChargeServiceClient struct {
	createCharge       *connect.Client[CreateChargeRequest, CreateChargeResponse]
	listCharges        *connect.Client[ListChargesRequest, ListChargesResponse]
	updateChargeStatus *connect.Client[UpdateChargeStatusRequest, UpdateChargeStatusResponse]
	getSummary         *connect.Client[GetSummaryRequest, GetSummaryResponse]
}

// NewChargeServiceClient constructs a client for the service at baseURL
// (for example, http://localhost:8080).
func NewChargeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ChargeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &ChargeServiceClient{
		createCharge: connect.NewClient[CreateChargeRequest, CreateChargeResponse](
			httpClient, baseURL+ChargeServiceCreateChargeProcedure, opts...),
		listCharges: connect.NewClient[ListChargesRequest, ListChargesResponse](
			httpClient, baseURL+ChargeServiceListChargesProcedure, opts...),
		updateChargeStatus: connect.NewClient[UpdateChargeStatusRequest, UpdateChargeStatusResponse](
			httpClient, baseURL+ChargeServiceUpdateChargeStatusProcedure, opts...),
		getSummary: connect.NewClient[GetSummaryRequest, GetSummaryResponse](
			httpClient, baseURL+ChargeServiceGetSummaryProcedure, opts...),
	}
}

// CreateCharge calls cobrancas.v1.ChargeService.CreateCharge.
func (c *ChargeServiceClient) CreateCharge(ctx context.Context, req *connect.Request[CreateChargeRequest]) (*connect.Response[CreateChargeResponse], error) {
	return c.createCharge.CallUnary(ctx, req)
}

// ListCharges calls cobrancas.v1.ChargeService.ListCharges.
func (c *ChargeServiceClient) ListCharges(ctx context.Context, req *connect.Request[ListChargesRequest]) (*connect.Response[ListChargesResponse], error) {
	return c.listCharges.CallUnary(ctx, req)
}

// UpdateChargeStatus calls cobrancas.v1.ChargeService.UpdateChargeStatus.
func (c *ChargeServiceClient) UpdateChargeStatus(ctx context.Context, req *connect.Request[UpdateChargeStatusRequest]) (*connect.Response[UpdateChargeStatusResponse], error) {
	return c.updateChargeStatus.CallUnary(ctx, req)
}

// GetSummary calls cobrancas.v1.ChargeService.GetSummary.
func (c *ChargeServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}
