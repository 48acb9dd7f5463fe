package chainquery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ProbeEndpoint implements Service.
func (s *service) ProbeEndpoint(ctx context.Context, url string) ProbeResult {
	ctx, span := s.tracer.Start(ctx, "chainquery.ProbeEndpoint")
	defer span.End()

	url = strings.TrimSpace(url)
	if url == "" {
		fail(span, ErrEndpointRequired)
		return ProbeResult{Message: ErrEndpointRequired.Error()}
	}
	span.SetAttributes(attribute.String("url", url))

	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fail(span, err)
		return ProbeResult{Message: fmt.Sprintf("invalid endpoint: %v", err)}
	}

	start := time.Now()
	res, err := s.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		fail(span, err)
		logger.Debug(ctx, "endpoint probe failed", zap.String("url", url), zap.Error(err))
		return ProbeResult{Latency: latency, Message: fmt.Sprintf("connection failed: %v", err)}
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return ProbeResult{Latency: latency, Message: fmt.Sprintf("unexpected status %d", res.StatusCode)}
	}

	return ProbeResult{
		Success: true,
		Latency: latency,
		Message: fmt.Sprintf("connected in %d ms", latency.Milliseconds()),
	}
}
