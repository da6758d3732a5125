package http

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RegisterSwagger publishes the OpenAPI document to the swagger UI.
// The document is registered once per process.
func RegisterSwagger(swagger *openapi3.T) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}

	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	swag.Register(swag.Name, &swag.Spec{
		Version:          swagger.Info.Version,
		Title:            swagger.Info.Title,
		Description:      swagger.Info.Description,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(doc),
		LeftDelim:        "{%",
		RightDelim:       "%}",
	})
	return nil
}

// SwaggerHandler serves the swagger UI and the registered document.
func SwaggerHandler() echo.HandlerFunc {
	return echoSwagger.WrapHandler
}
