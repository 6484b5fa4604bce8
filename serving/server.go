package serving

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackwhelpton/fasthttp-routing/v2"
	"github.com/kcz17/dirichlet/dirichlet"
	"github.com/kcz17/dirichlet/latency"
	"github.com/kcz17/dirichlet/logging"
	"github.com/valyala/fasthttp"
)

type ServerOptions struct {
	Addr string
	// DefaultMethod is used when a request does not name a method.
	DefaultMethod dirichlet.Method
	// MaxDimensions and MaxSamples bound per-request work so a single
	// call cannot exhaust the server.
	MaxDimensions    int
	MaxSamples       int
	LatencyCollector latency.Collector
	Logger           logging.Logger
}

// Server exposes the Dirichlet sampler over HTTP. Each successful
// sample call is timed, with durations fed to the latency collector
// and the request logger.
type Server struct {
	addr          string
	defaultMethod dirichlet.Method
	maxDimensions int
	maxSamples    int
	collector     latency.Collector
	logger        logging.Logger
	validator     *validator.Validate
}

func NewServer(options *ServerOptions) *Server {
	return &Server{
		addr:          options.Addr,
		defaultMethod: options.DefaultMethod,
		maxDimensions: options.MaxDimensions,
		maxSamples:    options.MaxSamples,
		collector:     options.LatencyCollector,
		logger:        options.Logger,
		validator:     validator.New(),
	}
}

func (s *Server) ListenAndServe() error {
	return fasthttp.ListenAndServe(s.addr, s.router().HandleRequest)
}

func (s *Server) router() *routing.Router {
	router := routing.New()

	router.Post("/sample", s.sampleHandler())
	router.Get("/methods", s.listMethodsHandler())

	router.Get("/latency", s.latencyStatsHandler())
	router.Delete("/latency", s.resetLatencyHandler())

	return router
}

type sampleRequest struct {
	Alpha []float64 `json:"alpha" validate:"required,min=1,dive,gt=0"`
	N     int       `json:"n" validate:"required,min=1"`
	// Method is optional; the server default applies when empty.
	Method string `json:"method"`
}

type sampleResponse struct {
	Method  string      `json:"method"`
	Samples [][]float64 `json:"samples"`
}

// checkRequest validates a sample request against the server's
// per-request limits, returning a client-facing error for violations.
func (s *Server) checkRequest(req *sampleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("invalid sample request: %w", err)
	}
	if len(req.Alpha) > s.maxDimensions {
		return fmt.Errorf("alpha has %d components; server accepts at most %d", len(req.Alpha), s.maxDimensions)
	}
	if req.N > s.maxSamples {
		return fmt.Errorf("n = %d; server accepts at most %d samples per request", req.N, s.maxSamples)
	}
	return nil
}

func (s *Server) sampleHandler() routing.Handler {
	return func(c *routing.Context) error {
		var req sampleRequest
		if err := c.Read(&req); err != nil {
			return routing.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("could not parse request body: %v", err))
		}
		if err := s.checkRequest(&req); err != nil {
			return routing.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		method := s.defaultMethod
		if req.Method != "" {
			var err error
			if method, err = dirichlet.ParseMethod(req.Method); err != nil {
				return routing.NewHTTPError(http.StatusBadRequest, err.Error())
			}
		}

		startTime := time.Now()
		samples, err := dirichlet.SampleWithMethod(req.Alpha, req.N, method)
		if err != nil {
			if errors.Is(err, dirichlet.ErrInvalidArgument) {
				return routing.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			// Upstream generator failures are surfaced, not recovered.
			return routing.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		duration := time.Now().Sub(startTime)

		s.collector.Add(duration)
		s.logger.LogSampleRequest(len(req.Alpha), req.N, method.String(), duration.Seconds())

		b, err := json.Marshal(&sampleResponse{
			Method:  method.String(),
			Samples: samples,
		})
		if err != nil {
			return fmt.Errorf("could not marshal samples: err = %w", err)
		}
		c.Response.Header.SetContentType("application/json")
		return c.Write(b)
	}
}

func (s *Server) listMethodsHandler() routing.Handler {
	return func(c *routing.Context) error {
		b, err := json.Marshal(&struct {
			Default string   `json:"default"`
			Methods []string `json:"methods"`
		}{
			Default: s.defaultMethod.String(),
			Methods: dirichlet.MethodNames(),
		})
		if err != nil {
			return fmt.Errorf("could not marshal methods: err = %w", err)
		}
		c.Response.Header.SetContentType("application/json")
		return c.Write(b)
	}
}

func (s *Server) latencyStatsHandler() routing.Handler {
	return func(c *routing.Context) error {
		aggregation := s.collector.Aggregate()
		b, err := json.Marshal(&struct {
			P50 float64 `json:"p50"`
			P75 float64 `json:"p75"`
			P95 float64 `json:"p95"`
		}{
			P50: float64(aggregation.P50) / float64(time.Second),
			P75: float64(aggregation.P75) / float64(time.Second),
			P95: float64(aggregation.P95) / float64(time.Second),
		})
		if err != nil {
			return fmt.Errorf("could not marshal aggregation: err = %w", err)
		}
		c.Response.Header.SetContentType("application/json")
		return c.Write(b)
	}
}

func (s *Server) resetLatencyHandler() routing.Handler {
	return func(c *routing.Context) error {
		s.collector.Reset()
		return c.Write("latency collector reset\n")
	}
}
