package suggest

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/dmitrijs2005/founderstack/internal/models"
	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultSmartModel  = "gemini-2.5-pro"
	DefaultCallTimeout = 30 * time.Second
)

// Client wraps a Generator with prompts and fallbacks. A Client with a nil
// Generator always serves fallbacks.
type Client struct {
	gen        Generator
	log        logging.Logger
	model      string
	smartModel string
	timeout    time.Duration
	pick       func(n int) int
}

type Option func(*Client)

// WithModel sets the model used for quick tasks.
func WithModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

// WithSmartModel sets the model used for portfolio questions.
func WithSmartModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.smartModel = m
		}
	}
}

// WithTimeout bounds every call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithPicker replaces the random fallback-quote picker.
func WithPicker(pick func(n int) int) Option {
	return func(c *Client) { c.pick = pick }
}

func New(gen Generator, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		gen:        gen,
		log:        log,
		model:      DefaultModel,
		smartModel: DefaultSmartModel,
		timeout:    DefaultCallTimeout,
		pick:       rand.IntN,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Enabled reports whether live suggestions are available.
func (c *Client) Enabled() bool { return c.gen != nil }

func (c *Client) generate(ctx context.Context, op, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if c.gen == nil {
		return "", ErrNoAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.gen.Generate(ctx, model, prompt, cfg)
	if err != nil {
		if IsQuotaError(err) {
			c.log.Warn(ctx, "suggestion quota exceeded, serving fallback", "op", op)
		} else {
			c.log.Error(ctx, "suggestion failed", "op", op, "model", model, "error", err)
		}
		return "", err
	}
	return text, nil
}

// Quote returns a short inspirational quote.
func (c *Client) Quote(ctx context.Context) string {
	text, err := c.generate(ctx, "quote", c.model, quotePrompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.9),
	})
	if err != nil {
		return fallbackQuotes[c.pick(len(fallbackQuotes))]
	}
	if text = strings.TrimSpace(text); text == "" {
		return fallbackQuotes[0]
	}
	return text
}

// AnalyzeSubscriptions returns strategic suggestions for subs.
func (c *Client) AnalyzeSubscriptions(ctx context.Context, subs []models.Subscription) string {
	data, err := json.Marshal(subs)
	if err != nil {
		return insightsFallback
	}
	text, err := c.generate(ctx, "insights", c.model, insightsPrompt(string(data)), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	switch {
	case IsQuotaError(err):
		return insightsQuotaFallback
	case err != nil:
		return insightsFallback
	case strings.TrimSpace(text) == "":
		return insightsEmpty
	}
	return text
}

var accountSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"platform":      {Type: genai.TypeString},
		"email":         {Type: genai.TypeString},
		"twoFactorAuth": {Type: genai.TypeString},
		"pricingModel":  {Type: genai.TypeString, Description: "One of: free, paid"},
		"notes":         {Type: genai.TypeString},
	},
	Required: []string{"platform", "email"},
}

type parsedAccount struct {
	Platform      string `json:"platform"`
	Email         string `json:"email"`
	TwoFactorAuth string `json:"twoFactorAuth"`
	PricingModel  string `json:"pricingModel"`
	Notes         string `json:"notes"`
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

// ParseAccount extracts account fields from free text. It returns nil when
// nothing could be parsed.
func (c *Client) ParseAccount(ctx context.Context, text string) *models.AccountPatch {
	out, err := c.generate(ctx, "parse", c.model, parsePrompt(text), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   accountSchema,
	})
	if err != nil {
		return nil
	}
	if strings.TrimSpace(out) == "" {
		out = "{}"
	}

	var p parsedAccount
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		c.log.Error(ctx, "suggestion returned invalid JSON", "op", "parse", "error", err)
		return nil
	}

	patch := &models.AccountPatch{
		Platform:      optional(p.Platform),
		Email:         optional(p.Email),
		TwoFactorAuth: optional(p.TwoFactorAuth),
	}
	if pm := optional(strings.ToLower(p.PricingModel)); pm != nil && (*pm == models.PricingFree || *pm == models.PricingPaid) {
		patch.PricingModel = pm
	}
	if n := optional(p.Notes); n != nil {
		patch.Notes = []string{*n}
	}
	return patch
}

// AskPortfolio answers a free-form question about snap.
func (c *Client) AskPortfolio(ctx context.Context, snap models.Snapshot, question string) string {
	data, err := json.Marshal(Digest(snap))
	if err != nil {
		return askFallback
	}
	text, err := c.generate(ctx, "ask", c.smartModel, askPrompt(string(data), question), nil)
	switch {
	case IsQuotaError(err):
		return askQuotaFallback
	case err != nil:
		return askFallback
	}
	return text
}

// EmailPurpose suggests what a subscription's account email is used for. It
// returns "" on failure.
func (c *Client) EmailPurpose(ctx context.Context, subscriptionName string) string {
	text, err := c.generate(ctx, "email-purpose", c.model, emailPurposePrompt(subscriptionName), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
