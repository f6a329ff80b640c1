package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"circlecheck/config"
	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	// expoBatchSize is the maximum number of messages Expo accepts per request
	expoBatchSize = 100

	// maxErrorBodyBytes bounds how much of a failed response is kept for logging
	maxErrorBodyBytes = 2048
)

// expoTicket is a single entry of the Expo push response
type expoTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Details struct {
		Error string `json:"error,omitempty"`
	} `json:"details"`
}

type expoResponse struct {
	Data   []expoTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

type expoGateway struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewExpoGateway creates a push gateway for the Expo push API
func NewExpoGateway(cfg *config.PushConfig, httpClient *http.Client, logger *slog.Logger) service.PushGateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	return &expoGateway{
		endpoint:    cfg.Endpoint,
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		limiter:     limiter,
		logger:      logger,
	}
}

// SendBatch posts messages in chunks of at most 100. A failed chunk does not stop the rest.
func (g *expoGateway) SendBatch(ctx context.Context, messages []*entity.PushMessage) ([]entity.PushReceipt, error) {
	receipts := make([]entity.PushReceipt, 0, len(messages))
	var errs []error

	for start := 0; start < len(messages); start += expoBatchSize {
		end := min(start+expoBatchSize, len(messages))
		chunk := messages[start:end]

		chunkReceipts, err := g.sendChunk(ctx, chunk)
		if err != nil {
			g.logger.Error("[Expo] Failed to send push chunk",
				slog.Int("offset", start),
				slog.Int("size", len(chunk)),
				slog.Any("error", err),
			)
			errs = append(errs, err)

			continue
		}

		receipts = append(receipts, chunkReceipts...)
	}

	if len(errs) > 0 {
		return receipts, errors.Wrapf(errs[0], "%d of %d push chunks failed", len(errs), (len(messages)+expoBatchSize-1)/expoBatchSize)
	}

	return receipts, nil
}

func (g *expoGateway) sendChunk(ctx context.Context, chunk []*entity.PushMessage) ([]entity.PushReceipt, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter wait")
	}

	body, err := json.Marshal(chunk)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if g.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.accessToken)
	}

	startTime := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "expo push request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, errors.Errorf("expo push returned status %d: %s", resp.StatusCode, string(snippet))
	}

	var parsed expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode expo push response")
	}

	if len(parsed.Errors) > 0 {
		return nil, errors.Errorf("expo push rejected request: %s: %s", parsed.Errors[0].Code, parsed.Errors[0].Message)
	}

	g.logger.Debug("[Expo] Push chunk sent",
		slog.Int("size", len(chunk)),
		slog.Int("tickets", len(parsed.Data)),
		slog.Duration("elapsed", time.Since(startTime)),
	)

	// Tickets are returned in request order
	receipts := make([]entity.PushReceipt, 0, len(parsed.Data))
	for i, ticket := range parsed.Data {
		if i >= len(chunk) {
			break
		}

		receipts = append(receipts, entity.PushReceipt{
			Token:     chunk[i].To,
			Status:    ticket.Status,
			ErrorCode: ticket.Details.Error,
			Message:   ticket.Message,
		})
	}

	return receipts, nil
}
