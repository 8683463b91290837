package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// Routes serving the API description.
const (
	OpenAPIPath = "/openapi.yaml"
	DocsPrefix  = "/docs"
)

const (
	msgInvalidOrderID = "ID de Pedido inválido. Debe ser un número."
	msgInvalidRequest = "Solicitud inválida."
)

//go:embed openapi.yaml
var openAPIDoc []byte

var registerDocs sync.Once

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDoc)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}
	return doc, nil
}

// swaggerDoc hands the description to Swagger UI as doc.json.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// registerSwagger publishes doc under the default swag instance. Only the
// first call registers.
func registerSwagger(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi: %w", err)
	}
	registerDocs.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}

func mountDocs(e *echo.Echo, doc *openapi3.T) error {
	if err := registerSwagger(doc); err != nil {
		return err
	}

	e.GET(OpenAPIPath, func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openAPIDoc)
	})
	e.GET(DocsPrefix+"/*", echoSwagger.WrapHandler)
	return nil
}

// validateRequests checks path and query parameters against doc. Request
// bodies are validated by the handlers. Requests outside doc pass through.
func validateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi router: %w", err)
	}
	opts := &openapi3filter.Options{ExcludeRequestBody: true}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, params, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: params,
				Route:      route,
				Options:    opts,
			})
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
			}

			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil && reqErr.Parameter.Name == fieldOrderID {
		return msgInvalidOrderID
	}
	return msgInvalidRequest
}
