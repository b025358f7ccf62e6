// Package feecalc is the client for the external coverage/delivery-fee
// calculator. Coverage checks and fee computation are not implemented here;
// the platform only consumes the remote answer.
package feecalc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/velozapp/veloz/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var (
	ErrNoCoverage  = errors.New("location outside coverage")
	ErrUnavailable = errors.New("fee calculator unavailable")
)

type Coverage struct {
	HasCoverage bool   `json:"has_coverage"`
	BaseFee     int64  `json:"base_fee"`
	ZoneID      string `json:"zone_id"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

// CheckCoverage asks the remote calculator whether the point is deliverable
// and at what base fee. Retries transient failures before giving up.
func (c *Client) CheckCoverage(ctx context.Context, lat, lng float64) (*Coverage, error) {
	url := fmt.Sprintf("%s/api/coverage?lat=%f&lng=%f", c.url, lat, lng)

	var statusCode int
	var respBody []byte
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		statusCode, respBody, _, err = c.client.Get(url, nil)
		if err == nil && statusCode == http.StatusOK {
			break
		}
		zap.L().Error("coverage check attempt failed",
			zap.Int("attempt", attempt), zap.Int("status", statusCode), zap.Error(err))
		if attempt < maxRetries {
			time.Sleep(retryInterval)
		}
	}
	if err != nil || statusCode != http.StatusOK {
		return nil, ErrUnavailable
	}

	var coverage Coverage
	if err := json.Unmarshal(respBody, &coverage); err != nil {
		return nil, fmt.Errorf("can't decode coverage response: %w", err)
	}
	if !coverage.HasCoverage {
		return nil, ErrNoCoverage
	}
	return &coverage, nil
}
