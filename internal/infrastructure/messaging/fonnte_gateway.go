package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smart_laundry/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	sendPath          = "/send"
	messageStatusPath = "/get-message-status"

	maxResponseBytes = 1 << 20
)

var (
	ErrMissingToken     = errors.New("missing fonnte api token")
	ErrGatewayRejected  = errors.New("fonnte rejected the request")
	ErrMissingMessageID = errors.New("fonnte response carried no message id")
)

// FonnteGateway is a WhatsApp gateway client for the Fonnte HTTP API.
//
// Both endpoints take form-encoded bodies and the API token as the raw
// Authorization header value.
type FonnteGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.INotificationGateway = (*FonnteGateway)(nil)

func NewFonnteGateway(baseURL string, timeout time.Duration) *FonnteGateway {
	return &FonnteGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type sendResponse struct {
	Status bool            `json:"status"`
	ID     json.RawMessage `json:"id"`
	Reason string          `json:"reason"`
}

type messageStatusResponse struct {
	Status        bool   `json:"status"`
	MessageStatus string `json:"message_status"`
	Reason        string `json:"reason"`
}

func (g *FonnteGateway) Send(ctx context.Context, token, target, message string) (string, error) {
	log := logrus.WithFields(logrus.Fields{"component": "fonnte.gateway", "target": target})

	var resp sendResponse
	if err := g.post(ctx, sendPath, token, url.Values{"target": {target}, "message": {message}}, &resp); err != nil {
		log.WithError(err).Warn("send request failed")
		return "", err
	}
	if !resp.Status {
		log.WithField("reason", resp.Reason).Warn("send rejected")
		return "", rejected(resp.Reason)
	}

	id, err := firstID(resp.ID)
	if err != nil {
		log.WithError(err).Warn("send response unreadable")
		return "", err
	}
	log.WithField("message_id", id).Debug("send accepted")
	return id, nil
}

func (g *FonnteGateway) MessageStatus(ctx context.Context, token, providerMessageID string) (string, error) {
	log := logrus.WithFields(logrus.Fields{"component": "fonnte.gateway", "message_id": providerMessageID})

	var resp messageStatusResponse
	if err := g.post(ctx, messageStatusPath, token, url.Values{"id": {providerMessageID}}, &resp); err != nil {
		log.WithError(err).Warn("status request failed")
		return "", err
	}
	if !resp.Status {
		log.WithField("reason", resp.Reason).Warn("status query rejected")
		return "", rejected(resp.Reason)
	}
	return resp.MessageStatus, nil
}

func (g *FonnteGateway) post(ctx context.Context, path, token string, form url.Values, out any) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build fonnte request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("call fonnte %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read fonnte %s response: %w", path, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("fonnte %s returned status %d", path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode fonnte %s response (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}

// firstID extracts the first message id; Fonnte returns an array of ids
// (one per target), as strings or numbers.
func firstID(raw json.RawMessage) (string, error) {
	var ids []json.RawMessage
	if err := json.Unmarshal(raw, &ids); err != nil {
		ids = []json.RawMessage{raw}
	}
	if len(ids) == 0 {
		return "", ErrMissingMessageID
	}

	first := ids[0]
	var s string
	if err := json.Unmarshal(first, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return s, nil
		}
		return "", ErrMissingMessageID
	}
	var n json.Number
	if err := json.Unmarshal(first, &n); err == nil && n.String() != "" {
		return n.String(), nil
	}
	return "", ErrMissingMessageID
}

func rejected(reason string) error {
	if reason = strings.TrimSpace(reason); reason == "" {
		return ErrGatewayRejected
	}
	return fmt.Errorf("%w: %s", ErrGatewayRejected, reason)
}
