package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"google.golang.org/genai"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
	"github.com/abhinav-rai/pathcraft/internal/config"
)

const defaultModel = "gemini-2.0-flash"
const defaultTimeout = 60 * time.Second

type geminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiProvider builds the Gemini-backed provider. Model and timeout are
// read from GEMINI_MODEL and GENERATION_TIMEOUT_SECONDS.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	timeout := defaultTimeout
	if s := os.Getenv("GENERATION_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &geminiProvider{client: client, model: model, timeout: timeout}, nil
}

func (p *geminiProvider) GenerateJSON(ctx context.Context, system, user string, schema *Schema) (json.RawMessage, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.WithError(err).Error("Generation call timed out")
			return nil, apperr.Generation("generation timed out", err)
		}
		log.WithError(err).Error("Failed to generate content")
		return nil, apperr.Generation("text generation failed", err)
	}

	raw := CleanFences(result.Text())
	log.Debugf("Raw model response (%d bytes) for schema %q", len(raw), schema.Name)

	return checkGenerated(schema, json.RawMessage(raw))
}
