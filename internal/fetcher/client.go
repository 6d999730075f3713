package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/citynews/internal/application"
	"github.com/inovacc/citynews/internal/common"
	"github.com/inovacc/citynews/internal/encoding"
	"github.com/inovacc/citynews/internal/logging"
	"github.com/inovacc/citynews/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/inovacc/citynews/internal/fetcher"

	// RequestIDHeader carries the id generated for every outgoing request.
	RequestIDHeader = "X-Request-ID"
)

// Getter issues a GET for path and decodes the reply into out.
type Getter interface {
	Get(ctx context.Context, path string, out any) error
}

// Options configures the Client
type Options struct {
	// Timeout bounds every request; zero disables the limit
	Timeout time.Duration

	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client

	Logger  *slog.Logger
	Metrics *Metrics
}

// Client talks to the news backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *Metrics
}

// New creates a backend client for baseURL.
func New(baseURL string, opts Options) (*Client, error) {
	base, err := common.NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger.Debug("creating backend client", slog.String("base_url", common.RedactURL(base)))

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		timeout:    opts.Timeout,
		logger:     logger,
		metrics:    opts.Metrics,
	}, nil
}

// BaseURL returns the normalized base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs one GET request against baseURL+path and decodes the JSON
// reply into out. Any failure to obtain a decodable 2xx reply is returned as
// *TransportError.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	route := RouteLabel(path)
	requestID := uuid.NewString()

	ctx = logging.WithRequestID(ctx, requestID)
	logger := logging.WithRequest(ctx, c.logger)

	ctx, span := otel.Tracer(tracerName).Start(ctx, http.MethodGet+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	span.SetAttributes(
		attribute.String("http.method", http.MethodGet),
		attribute.String("http.route", route),
		attribute.String("request.id", requestID),
	)

	logger.Debug("making backend request",
		slog.String("method", http.MethodGet),
		slog.String("path", path),
	)

	start := time.Now()
	status, err := c.do(ctx, path, requestID, out)
	elapsed := time.Since(start)

	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}

	outcome := outcomeFor(out, err)
	c.metrics.observe(route, outcome, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		logger.Warn("backend request failed",
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)

		return err
	}

	span.SetAttributes(attribute.String("citynews.outcome", outcome))

	if r, ok := out.(successReporter); ok && !r.OK() {
		code, message := r.Status()
		logger.Debug("backend reported failure",
			slog.String("path", path),
			slog.Int("code", code),
			slog.String("message", message),
		)
	}

	logger.Debug("backend request completed",
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("outcome", outcome),
		slog.Duration("elapsed", elapsed),
	)

	return nil
}

func (c *Client) do(ctx context.Context, path, requestID string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, &TransportError{Path: path, Message: fmt.Sprintf("failed to create request: %v", err), Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", application.AppName+"/"+application.Version)
	req.Header.Set(RequestIDHeader, requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, newTransportError(path, err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, newStatusError(path, resp.StatusCode)
	}

	if out == nil {
		return resp.StatusCode, nil
	}

	if err := encoding.DecodeJSON(resp.Body, out); err != nil {
		// A body cut short by the deadline is still a timeout
		if ctx.Err() != nil {
			return resp.StatusCode, newTransportError(path, ctx.Err())
		}

		return resp.StatusCode, newDecodeError(path, err)
	}

	return resp.StatusCode, nil
}

// Fetch performs a GET for path and returns the decoded envelope as-is.
// A nil error means the backend was reached; callers still have to check
// Envelope.Success.
func Fetch[T any](ctx context.Context, g Getter, path string) (model.Envelope[T], error) {
	var env model.Envelope[T]

	if err := g.Get(ctx, path, &env); err != nil {
		return model.Envelope[T]{}, err
	}

	return env, nil
}

type successReporter interface {
	OK() bool
	Status() (code int, message string)
}

func outcomeFor(out any, err error) string {
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) && te.gotResponse() {
			return OutcomeBadResponse
		}

		return OutcomeTransport
	}

	if r, ok := out.(successReporter); ok && !r.OK() {
		return OutcomeAppFailure
	}

	return OutcomeSuccess
}
