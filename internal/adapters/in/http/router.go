package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"deliveryproof/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

// RequestObserver records served requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RouterConfig configures NewRouter. Observer and MetricsHandler are optional.
type RouterConfig struct {
	UploadDir      string
	MaxUploadSize  string // echo BodyLimit format, e.g. "4M"
	LogLevel       log.Lvl
	Observer       RequestObserver
	MetricsHandler http.Handler
}

// NewRouter wires the server routes, static uploads, the API description and
// middleware. Requests are validated against the embedded OpenAPI document.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	validate, err := validateRequests(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return kernel.NewUUID().String() },
	}))
	if cfg.Observer != nil {
		e.Use(observe(cfg.Observer))
	}
	e.Use(validate)

	upload := []echo.MiddlewareFunc{}
	if cfg.MaxUploadSize != "" {
		upload = append(upload, middleware.BodyLimit(cfg.MaxUploadSize))
	}

	e.GET("/health", s.Health)
	e.POST("/entregas", s.ConfirmDelivery, upload...)
	e.GET("/datos_cliente/:"+fieldOrderID, s.GetCustomerData)

	if err = mountDocs(e, doc); err != nil {
		return nil, err
	}

	if cfg.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.MetricsHandler))
	}

	if cfg.UploadDir != "" {
		e.Static(StaticPrefix, cfg.UploadDir)
		s.logger.WarnContext(context.Background(),
			"Upload directory is served publicly; anyone knowing a file name can fetch the photo",
			"dir", cfg.UploadDir, "prefix", StaticPrefix)
	}

	return e, nil
}

func observe(o RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			o.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

			return nil
		}
	}
}

// ParseLogLevel maps LOG_LEVEL values onto echo's logger levels.
func ParseLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
