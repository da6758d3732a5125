package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/generated/servers"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ContractRegistry is the registry the HTTP API exposes.
type ContractRegistry interface {
	CreateContract(ctx context.Context, terms contract.Terms) (kernel.UUID, error)
	MarkContractAsDelivered(ctx context.Context, key kernel.UUID, actualDeliveryTime int64) error
	GetContract(ctx context.Context, key kernel.UUID) (queries.ContractResponse, error)
	ListContracts(ctx context.Context, status *contract.Status) ([]queries.ContractResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates between API models and the registry.
type Server struct {
	registry ContractRegistry
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server over registry.
func NewServer(registry ContractRegistry, logger *slog.Logger) *Server {
	return &Server{
		registry: registry,
		logger:   logger.With("component", "http"),
	}
}

// ListContracts handles GET /api/v1/contracts - lists contracts, optionally by status.
func (s *Server) ListContracts(ctx echo.Context, params servers.ListContractsParams) error {
	var status *contract.Status
	if params.Status != nil {
		parsed, err := contract.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	contracts, err := s.registry.ListContracts(ctx.Request().Context(), status)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Contract, len(contracts))
	for i, c := range contracts {
		response[i] = toContract(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateContract handles POST /api/v1/contracts - creates a new contract.
func (s *Server) CreateContract(ctx echo.Context) error {
	var body servers.NewContract
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	terms, err := toTerms(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	key, err := s.registry.CreateContract(ctx.Request().Context(), terms)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ContractKey{Key: key.Bytes()})
}

// GetContract handles GET /api/v1/contracts/{key} - retrieves one contract.
func (s *Server) GetContract(ctx echo.Context, key openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(key[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.registry.GetContract(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toContract(c))
}

// MarkContractAsDelivered handles POST /api/v1/contracts/{key}/delivery - records delivery.
func (s *Server) MarkContractAsDelivered(ctx echo.Context, key openapi_types.UUID) error {
	var body servers.Delivery
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(key[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registry.MarkContractAsDelivered(ctx.Request().Context(), id, body.ActualDeliveryTime); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// fail writes err as an API error: 400 for invalid input, 404 for unknown
// keys, 409 for invalid status transitions and 500 otherwise.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func statusCode(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsInvalidState(err), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toTerms(body servers.NewContract) (contract.Terms, error) {
	seller, sellerErr := kernel.NewShortID(body.SellerShortId)
	buyer, buyerErr := kernel.NewShortID(body.BuyerShortId)
	transporter, transporterErr := kernel.NewShortID(body.TransporterId)
	items, itemsErr := contract.NewLineItems(body.ItemNames, body.ItemQuantities, body.ItemOptions)

	if err := errors.Join(
		fieldError("sellerShortId", sellerErr),
		fieldError("buyerShortId", buyerErr),
		fieldError("transporterId", transporterErr),
		itemsErr,
	); err != nil {
		return contract.Terms{}, err
	}

	return contract.Terms{
		PurchaseOrderID:        body.PurchaseOrderId,
		TransportOrderID:       body.TransportOrderId,
		SellerShortID:          seller,
		BuyerShortID:           buyer,
		TransporterID:          transporter,
		TotalBuyerPayment:      body.TotalBuyerPayment,
		TotalTransportPayment:  body.TotalTransportPayment,
		EstimatedDeliveryTimes: body.EstimatedDeliveryTimes,
		SellerAddress:          body.SellerAddress,
		BuyerAddress:           body.BuyerAddress,
		Items:                  items,
	}, nil
}

func fieldError(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", field, err)
}

func toContract(c queries.ContractResponse) servers.Contract {
	items := make([]servers.LineItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = servers.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Options:  item.Options,
		}
	}

	return servers.Contract{
		Key:                    c.ID.Bytes(),
		PurchaseOrderId:        c.PurchaseOrderID,
		TransportOrderId:       c.TransportOrderID,
		SellerShortId:          c.SellerShortID,
		BuyerShortId:           c.BuyerShortID,
		TransporterId:          c.TransporterID,
		TotalBuyerPayment:      c.TotalBuyerPayment,
		TotalTransportPayment:  c.TotalTransportPayment,
		EstimatedDeliveryTimes: c.EstimatedDeliveryTimes,
		SellerAddress:          c.SellerAddress,
		BuyerAddress:           c.BuyerAddress,
		Items:                  items,
		Status:                 servers.ContractStatus(c.Status.String()),
		ActualDeliveryTime:     c.ActualDeliveryTime,
	}
}
