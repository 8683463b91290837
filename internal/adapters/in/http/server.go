package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"

	"deliveryproof/internal/core/application/usecases/commands"
	"deliveryproof/internal/core/application/usecases/queries"
	"deliveryproof/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// StaticPrefix is the public URL prefix of the upload directory.
const StaticPrefix = "/static/uploads"

// Form fields of POST /entregas. The photo may arrive under either name.
const (
	fieldOrderID     = "pedido_id"
	fieldDeliveredBy = "entregado_por"
	fieldComment     = "comentario"
	fieldPhoto       = "imagen"
	fieldPhotoAlt    = "foto"
)

// DeliveryConfirmer runs the delivery workflow.
type DeliveryConfirmer interface {
	Handle(ctx context.Context, cmd commands.ConfirmDeliveryCommand) (commands.ConfirmDeliveryResult, error)
	RejectInvalid(ctx context.Context, err error) commands.ConfirmDeliveryResult
}

// CustomerDataReader answers the order autofill lookup.
type CustomerDataReader interface {
	Handle(ctx context.Context, query queries.GetCustomerDataQuery) (queries.GetCustomerDataQueryResponse, error)
}

// Server handles HTTP requests and coordinates application use cases.
type Server struct {
	// Command handlers
	confirmDeliveryHandler DeliveryConfirmer

	// Query handlers
	getCustomerDataHandler CustomerDataReader

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	confirmDeliveryHandler DeliveryConfirmer,
	getCustomerDataHandler CustomerDataReader,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		confirmDeliveryHandler: confirmDeliveryHandler,
		getCustomerDataHandler: getCustomerDataHandler,
		logger:                 logger.With("component", "http"),
	}
}

// DeliveryResponse is the JSON body of POST /entregas.
type DeliveryResponse struct {
	SubmissionID      string `json:"submission_id,omitempty"`
	OrderID           int64  `json:"pedido_id,omitempty"`
	State             string `json:"state"`
	Outcome           string `json:"outcome"`
	Code              string `json:"code"`
	Message           string `json:"message"`
	Photo             string `json:"photo,omitempty"`
	NotificationError string `json:"notification_error,omitempty"`
}

// CustomerDataResponse is the JSON body of GET /datos_cliente/:pedido_id.
type CustomerDataResponse struct {
	Name     string `json:"nombre"`
	Address  string `json:"direccion"`
	Locality string `json:"comuna"`
}

// ErrorResponse is returned by the customer lookup on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfirmDelivery handles POST /entregas - records a delivery with its photo.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	ctx := c.Request().Context()

	photo, err := s.readPhoto(c)
	if err != nil {
		// Chunked bodies only hit the upload limit while the form is read.
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		s.logger.WarnContext(ctx, "Failed to read uploaded photo", "error", err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		submissionID(c),
		c.FormValue(fieldOrderID),
		c.FormValue(fieldDeliveredBy),
		c.FormValue(fieldComment),
		photo,
	)

	var res commands.ConfirmDeliveryResult
	if err != nil {
		res = s.confirmDeliveryHandler.RejectInvalid(ctx, err)
	} else {
		// Rejections are fully described by the result.
		res, _ = s.confirmDeliveryHandler.Handle(ctx, cmd)
	}

	return c.JSON(statusFor(res.Code), toDeliveryResponse(res))
}

// GetCustomerData handles GET /datos_cliente/:pedido_id - autofills the form.
func (s *Server) GetCustomerData(c echo.Context) error {
	ctx := c.Request().Context()

	var rawID int32
	err := runtime.BindStyledParameterWithOptions("simple", fieldOrderID, c.Param(fieldOrderID), &rawID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidOrderID})
	}

	orderID, err := kernel.NewOrderID(int64(rawID))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidOrderID})
	}
	query, err := queries.NewGetCustomerDataQueryForOrder(orderID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidOrderID})
	}

	data, err := s.getCustomerDataHandler.Handle(ctx, query)
	if err != nil {
		s.logger.InfoContext(ctx, "Customer data unavailable", "order_id", query.OrderID().String(), "error", err)
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Pedido no encontrado o error de base de datos"})
	}

	return c.JSON(http.StatusOK, CustomerDataResponse{
		Name:     data.Name,
		Address:  data.Address,
		Locality: data.Locality,
	})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// readPhoto returns the first non-empty upload among the accepted fields.
// A request without any photo yields nil and no error.
func (s *Server) readPhoto(c echo.Context) ([]byte, error) {
	for _, field := range []string{fieldPhoto, fieldPhotoAlt} {
		fh, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			return nil, err
		}
		if fh.Size == 0 {
			continue
		}
		return readFileHeader(fh)
	}
	return nil, nil
}

// submissionID reuses the request ID echoed back to the client, so proxy logs,
// the response and the workflow logs share one correlation ID.
func submissionID(c echo.Context) kernel.UUID {
	if id, err := kernel.UUIDFromString(c.Response().Header().Get(echo.HeaderXRequestID)); err == nil {
		return id
	}
	return kernel.NewUUID()
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

func toDeliveryResponse(res commands.ConfirmDeliveryResult) DeliveryResponse {
	out := DeliveryResponse{
		OrderID: res.OrderID.Int64(),
		State:   res.State.String(),
		Outcome: res.Outcome.String(),
		Code:    res.Code,
		Message: res.Message,
	}
	if res.SubmissionID.Validate() == nil {
		out.SubmissionID = res.SubmissionID.String()
	}
	if res.PhotoPath != "" {
		out.Photo = path.Join(StaticPrefix, filepath.Base(res.PhotoPath))
	}
	if res.NotificationErr != nil {
		out.NotificationError = res.NotificationErr.Error()
	}
	return out
}

func statusFor(code string) int {
	switch code {
	case commands.CodeDelivered, commands.CodeDeliveredNotificationFailed:
		return http.StatusCreated
	case commands.CodeValidationFailed:
		return http.StatusBadRequest
	case commands.CodeOrderNotFound:
		return http.StatusNotFound
	case commands.CodeOrderLookupFailed:
		return http.StatusServiceUnavailable
	case commands.CodeImageProcessingFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
