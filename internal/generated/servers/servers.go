// Package servers holds the HTTP contract of the registry: the types,
// ServerInterface and echo routing described by openapi.yml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ContractStatus.
const (
	ContractStatusCreated   ContractStatus = "Created"
	ContractStatusDelivered ContractStatus = "Delivered"
)

// Contract defines model for Contract.
type Contract struct {
	ActualDeliveryTime     int64              `json:"actualDeliveryTime"`
	BuyerAddress           string             `json:"buyerAddress"`
	BuyerShortId           string             `json:"buyerShortId"`
	EstimatedDeliveryTimes []int64            `json:"estimatedDeliveryTimes"`
	Items                  []LineItem         `json:"items"`
	Key                    openapi_types.UUID `json:"key"`
	PurchaseOrderId        int64              `json:"purchaseOrderId"`
	SellerAddress          string             `json:"sellerAddress"`
	SellerShortId          string             `json:"sellerShortId"`
	Status                 ContractStatus     `json:"status"`
	TotalBuyerPayment      int64              `json:"totalBuyerPayment"`
	TotalTransportPayment  int64              `json:"totalTransportPayment"`
	TransportOrderId       int64              `json:"transportOrderId"`
	TransporterId          string             `json:"transporterId"`
}

// ContractKey defines model for ContractKey.
type ContractKey struct {
	Key openapi_types.UUID `json:"key"`
}

// ContractStatus defines model for ContractStatus.
type ContractStatus string

// Delivery defines model for Delivery.
type Delivery struct {
	ActualDeliveryTime int64 `json:"actualDeliveryTime"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	Name     string `json:"name"`
	Options  string `json:"options"`
	Quantity int64  `json:"quantity"`
}

// NewContract defines model for NewContract.
type NewContract struct {
	BuyerAddress           string   `json:"buyerAddress"`
	BuyerShortId           string   `json:"buyerShortId"`
	EstimatedDeliveryTimes []int64  `json:"estimatedDeliveryTimes"`
	ItemNames              []string `json:"itemNames"`
	ItemOptions            []string `json:"itemOptions"`
	ItemQuantities         []int64  `json:"itemQuantities"`
	PurchaseOrderId        int64    `json:"purchaseOrderId"`
	SellerAddress          string   `json:"sellerAddress"`
	SellerShortId          string   `json:"sellerShortId"`
	TotalBuyerPayment      int64    `json:"totalBuyerPayment"`
	TotalTransportPayment  int64    `json:"totalTransportPayment"`
	TransportOrderId       int64    `json:"transportOrderId"`
	TransporterId          string   `json:"transporterId"`
}

// ListContractsParams defines parameters for ListContracts.
type ListContractsParams struct {
	Status *ContractStatus `form:"status,omitempty" json:"status,omitempty"`
}

// CreateContractJSONRequestBody defines body for CreateContract for application/json ContentType.
type CreateContractJSONRequestBody = NewContract

// MarkContractAsDeliveredJSONRequestBody defines body for MarkContractAsDelivered for application/json ContentType.
type MarkContractAsDeliveredJSONRequestBody = Delivery

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List contracts
	// (GET /api/v1/contracts)
	ListContracts(ctx echo.Context, params ListContractsParams) error
	// Create a contract
	// (POST /api/v1/contracts)
	CreateContract(ctx echo.Context) error
	// Get a contract
	// (GET /api/v1/contracts/{key})
	GetContract(ctx echo.Context, key openapi_types.UUID) error
	// Record the delivery of a contract
	// (POST /api/v1/contracts/{key}/delivery)
	MarkContractAsDelivered(ctx echo.Context, key openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListContracts converts echo context to params.
func (w *ServerInterfaceWrapper) ListContracts(ctx echo.Context) error {
	var err error

	var params ListContractsParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = w.Handler.ListContracts(ctx, params)
	return err
}

// CreateContract converts echo context to params.
func (w *ServerInterfaceWrapper) CreateContract(ctx echo.Context) error {
	return w.Handler.CreateContract(ctx)
}

// GetContract converts echo context to params.
func (w *ServerInterfaceWrapper) GetContract(ctx echo.Context) error {
	var err error
	var key openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "key", ctx.Param("key"), &key,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter key: %s", err))
	}

	err = w.Handler.GetContract(ctx, key)
	return err
}

// MarkContractAsDelivered converts echo context to params.
func (w *ServerInterfaceWrapper) MarkContractAsDelivered(ctx echo.Context) error {
	var err error
	var key openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "key", ctx.Param("key"), &key,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter key: %s", err))
	}

	err = w.Handler.MarkContractAsDelivered(ctx, key)
	return err
}

// EchoRouter is the subset of *echo.Echo and *echo.Group the handlers are registered on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/contracts", wrapper.ListContracts)
	router.POST(baseURL+"/api/v1/contracts", wrapper.CreateContract)
	router.GET(baseURL+"/api/v1/contracts/:key", wrapper.GetContract)
	router.POST(baseURL+"/api/v1/contracts/:key/delivery", wrapper.MarkContractAsDelivered)
}

//go:embed openapi.yml
var rawSpec []byte

// GetSwagger returns the parsed OpenAPI document of the API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
