package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"freight/internal/entities"
	retrierconfig "freight/pkg/retrier"
	"freight/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "image-host"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway - клиент внешнего хостинга изображений (POD и квитанции).
// Хостинг возвращает URL и ключ удаления; ключ нужен только для best-effort
// очистки, его потеря не критична.
type Gateway struct {
	client  httpClient
	retrier retrier
	baseURL string
	apiKey  string
}

func New(client httpClient, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type uploadResponse struct {
	URL       string `json:"url"`
	DeleteKey string `json:"delete_key"`
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("image host returned status %d", e.code)
}

func (g *Gateway) Store(ctx context.Context, filename string, data []byte) (*entities.ProofImage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("gateway image host, build upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("gateway image host, build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gateway image host, build upload: %w", err)
	}

	var uploaded uploadResponse
	err = g.executeWithMetrics(ctx, "Store", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/upload", bytes.NewReader(body.Bytes()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			io.Copy(io.Discard, resp.Body)
			return &statusError{code: resp.StatusCode}
		}

		return json.NewDecoder(resp.Body).Decode(&uploaded)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway image host, store %s: %w", filename, err)
	}

	return &entities.ProofImage{
		URL:       uploaded.URL,
		DeleteKey: uploaded.DeleteKey,
	}, nil
}

func (g *Gateway) Delete(ctx context.Context, deleteKey string) error {
	err := g.executeWithMetrics(ctx, "Delete", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.baseURL+"/image/"+deleteKey, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		// Ключ уже недействителен - считаем удаленным.
		if resp.StatusCode == http.StatusNotFound {
			return nil
		}
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
			return &statusError{code: resp.StatusCode}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("gateway image host, delete: %w", err)
	}

	return nil
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}

	var st *statusError
	if !errors.As(err, &st) {
		// Сетевые ошибки транспорта ретраим всегда.
		return true
	}

	return st.code == http.StatusTooManyRequests || st.code >= http.StatusInternalServerError
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var st *statusError
	if errors.As(err, &st) {
		return strconv.Itoa(st.code)
	}
	return "transport_error"
}
