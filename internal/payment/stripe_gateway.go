package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"munchbox-be/internal/logger"

	"go.uber.org/zap"
)

const (
	stripeBaseURL = "https://api.stripe.com"
	currencyGBP   = "gbp"
)

type stripeGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewStripeGateway(apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("Stripe API key is empty")
	}

	return &stripeGateway{
		apiKey:  apiKey,
		baseURL: stripeBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- CreateIntent -----------------

func (g *stripeGateway) CreateIntent(
	ctx context.Context,
	amount int64,
	metadata map[string]string,
) (*Intent, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("gateway", "stripe"),
		zap.Int64("amount", amount),
	)

	if amount <= 0 {
		return nil, errors.New("payment amount must be greater than zero")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currencyGBP)
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("payment intent request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to reach payment processor: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.Unmarshal(body, &apiErr)
		log.Error("payment processor rejected intent",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", apiErr.Error.Message),
		)
		return nil, fmt.Errorf("payment processor error (status %d)", resp.StatusCode)
	}

	var payload struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
		Amount       int64  `json:"amount"`
		Currency     string `json:"currency"`
		Status       string `json:"status"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode payment intent response: %w", err)
	}

	log.Info("payment intent created",
		zap.String("intent_id", payload.ID),
		zap.String("status", payload.Status),
	)

	return &Intent{
		ID:           payload.ID,
		ClientSecret: payload.ClientSecret,
		Amount:       payload.Amount,
		Currency:     payload.Currency,
		Status:       payload.Status,
	}, nil
}
