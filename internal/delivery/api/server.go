package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"sportera/config"
	"sportera/internal/delivery"
	apimiddleware "sportera/internal/delivery/api/middleware"
	"sportera/internal/delivery/api/router"
	"sportera/internal/delivery/api/validator"
	"sportera/internal/delivery/middleware"
	"sportera/internal/domain/lifecycle"
	"sportera/internal/errors"
	"sportera/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	addr   string
	h2     *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	RouterParams router.RouterParams
}

// NewServer builds the API delivery. It starts listening only when Serve is called
// and shuts down gracefully when the application stops.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		echo:   NewEcho(params),
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv, nil
}

// NewEcho returns the echo instance with middleware, error handling, validation
// and routes installed, without binding a port.
func NewEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	applyTimeouts(e.Server, params.Cfg)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	// Order matters: recovered panics still get a request id, and metrics and the
	// access log run after the error has been rendered.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		apimiddleware.NewMetricsMiddleware(params.Metrics).Handle,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
			ExposeHeaders: []string{echo.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterMetricsRoute(e)

	return e
}

func applyTimeouts(srv *http.Server, cfg *config.Config) {
	timeouts := cfg.HTTP.Timeouts
	srv.ReadTimeout = timeouts.ReadTimeout
	srv.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	srv.WriteTimeout = timeouts.WriteTimeout
	srv.IdleTimeout = timeouts.IdleTimeout
}

// Serve blocks until the server stops. A graceful shutdown is not an error.
func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("API server listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.Wrap(err, "serve api")
}

func (s *apiServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")

	return errors.Wrap(s.echo.Shutdown(ctx), "shutdown api")
}
