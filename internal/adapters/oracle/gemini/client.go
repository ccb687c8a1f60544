package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vahis-pet-care-hub/internal/platform/httpclient"
	"vahis-pet-care-hub/internal/platform/logger"
	"vahis-pet-care-hub/internal/ports/oracle"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-flash-latest"

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration

	// BaseURL opcional; vacío usa el endpoint público de Gemini.
	BaseURL string
}

func (c Config) IsConfigured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Client implementa oracle.Oracle sobre la API de Gemini.
type Client struct {
	cfg    Config
	genai  *genai.Client
	log    logger.Logger
	config *genai.GenerateContentConfig
}

var _ oracle.Oracle = (*Client)(nil)

// New crea el cliente. Sin API key devuelve oracle.ErrNotConfigured: el server
// arranca igual y el matcher responde 500 hasta que se configure.
func New(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, oracle.ErrNotConfigured
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if log == nil {
		log = logger.Nop()
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpclient.New(cfg.Timeout, log.With(map[string]any{"component": "gemini"})),
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}

	return &Client{
		cfg:   cfg,
		genai: gc,
		log:   log,
		config: &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.4),
		},
	}, nil
}

// Generate manda el prompt y devuelve el texto crudo. No valida el contenido.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), c.config)
	if err != nil {
		return "", classify(err)
	}

	// Sin candidatos no hubo respuesta del modelo. Un texto vacío sí es respuesta
	// y lo valida quien llama.
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", oracle.ErrUnavailable)
	}
	return resp.Text(), nil
}

// classify traduce errores del SDK a los sentinels del puerto, conservando la causa.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || strings.EqualFold(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return fmt.Errorf("%w: %w", oracle.ErrRateLimited, err)
		}
		return fmt.Errorf("%w: %w", oracle.ErrUnavailable, err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") {
		return fmt.Errorf("%w: %w", oracle.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %w", oracle.ErrUnavailable, err)
}
