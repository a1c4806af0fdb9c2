package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ortelius/purl-component/model"
	"go.uber.org/zap"
)

const (
	remoteInitialInterval = 200 * time.Millisecond
	remoteMaxInterval     = 2 * time.Second
	remoteMaxRetries      = 4
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// resolveRemote posts purl to the API at serverURL. Transport failures and 5xx
// responses are retried with exponential backoff; rejections of the PURL are final.
func resolveRemote(ctx context.Context, serverURL, purl string, log *zap.Logger) (model.Component, error) {
	jsonData, err := json.Marshal(model.ComponentRequest{Purl: purl})
	if err != nil {
		return model.Component{}, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	url := strings.TrimRight(serverURL, "/") + "/api/v1/component"

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = remoteInitialInterval
	bo.MaxInterval = remoteMaxInterval

	var result model.Component
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("HTTP request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
		}

		var payload model.ComponentResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err))
		}

		if !payload.Success || payload.Result == nil {
			return backoff.Permanent(&RemoteError{Status: resp.StatusCode, Kind: payload.ErrorKind, Message: payload.Message})
		}

		result = *payload.Result
		return nil
	}

	err = backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, remoteMaxRetries), ctx),
		func(err error, wait time.Duration) {
			log.Sugar().Debugf("Retrying %s in %s: %v", url, wait, err)
		})
	if err != nil {
		return model.Component{}, err
	}
	return result, nil
}

// RemoteError is a rejection reported by the purl-component API
type RemoteError struct {
	Status  int
	Kind    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("server returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsRemoteKind reports whether err is a RemoteError of the given kind
func IsRemoteKind(err error, kind string) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.Kind == kind
}
