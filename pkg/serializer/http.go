package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/dashboard-audit/pkg/defaults"
)

// RespondJSON writes data as a JSON response. Encoding happens before the
// status is written so a failure still produces a 500.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// HttpReaderUserAgent is sent with every download.
const HttpReaderUserAgent = "dashaudit-serializer/1.0"

// HttpReaderOption configures an HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader downloads remote documents.
type HttpReader struct {
	UserAgent string
	Client    *http.Client
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout overrides the whole-request timeout.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		if timeout > 0 {
			r.Client.Timeout = timeout
		}
	}
}

// WithClient replaces the HTTP client.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		if client != nil {
			r.Client = client
		}
	}
}

// NewHttpReader returns a reader with the default transport timeouts.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent: HttpReaderUserAgent,
		Client: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
				ForceAttemptHTTP2:     true,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
	}

	for _, opt := range options {
		opt(r)
	}
	return r
}

// ReadWithContext fetches url and returns the body. Non-200 responses are
// errors.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch data: status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
