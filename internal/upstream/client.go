package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/payingzee/sellerpanel/internal/model"
	"github.com/payingzee/sellerpanel/pgk/session"
)

const basePath = "/api/v1/seller"

// Client talks to the external paying-zee seller API. Every request
// carries the bearer credential from the injected token source. Failures
// are terminal for the attempt: no retries, the user re-triggers the
// action.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  session.TokenSource
}

func New(baseURL string, tokens session.TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + basePath,
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// dataEnvelope is the { data: ... } wrapper around every 2xx body.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.UpstreamError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()

		// Only the optional message field of an error body is read;
		// status codes are not distinguished beyond non-2xx.
		upErr := &model.UpstreamError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			upErr.Message = envelope.Message
		}

		return nil, upErr
	}

	return resp, nil
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var payload dataEnvelope[T]

	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return payload.Data, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payload.Data, fmt.Errorf("decode response for %s: %w", path, err)
	}

	return payload.Data, nil
}

func (c *Client) post(ctx context.Context, path string, body io.Reader, contentType string) error {
	resp, err := c.do(ctx, http.MethodPost, path, body, contentType)
	if err != nil {
		return err
	}

	resp.Body.Close()
	return nil
}

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	return getJSON[[]model.Order](ctx, c, "/orders")
}

func (c *Client) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := getJSON[model.Order](ctx, c, "/orders/"+id)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) GetPerformance(ctx context.Context) (*model.PerformanceMetrics, error) {
	metrics, err := getJSON[model.PerformanceMetrics](ctx, c, "/performance")
	if err != nil {
		return nil, err
	}

	return &metrics, nil
}

func (c *Client) AcceptOrder(ctx context.Context, id string) error {
	return c.post(ctx, "/orders/"+id+"/accept", nil, "")
}

func (c *Client) RejectOrder(ctx context.Context, id string) error {
	return c.post(ctx, "/orders/"+id+"/reject", nil, "")
}

func (c *Client) SubmitShipping(ctx context.Context, id string, sub model.ShippingSubmission) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"courierName":           sub.CourierName,
		"trackingNumber":        sub.TrackingNumber,
		"estimatedDeliveryDate": sub.EstimatedDeliveryDate,
		"notes":                 sub.Notes,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("write shipping field %s: %w", name, err)
		}
	}

	for _, img := range sub.ProofImages {
		part, err := mw.CreateFormFile("proofImages", img.Filename)
		if err != nil {
			return fmt.Errorf("create proof image part: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return fmt.Errorf("write proof image %s: %w", img.Filename, err)
		}
	}

	if err := mw.Close(); err != nil {
		return err
	}

	return c.post(ctx, "/orders/"+id+"/shipping", &buf, mw.FormDataContentType())
}

func (c *Client) SendMessage(ctx context.Context, id, text string) error {
	body, err := json.Marshal(map[string]string{"message": text})
	if err != nil {
		return err
	}

	return c.post(ctx, "/orders/"+id+"/messages", bytes.NewReader(body), "application/json")
}
