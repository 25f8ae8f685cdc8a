// Package catalog supplies item templates for new games: a fixed list of
// built-ins plus an optional AI generator for free-text prompts.
//
// The game core depends only on the Provider interface, so session and
// resolution logic stays fully testable without ever invoking the
// generator, and a slow or failing generator can never hold a session
// lock (it is called before any session exists).
package catalog

import (
	"context"
	"net/http"
	"time"

	"github.com/mmynk/auctioneer/internal/models"
)

// Provider lists templates and, when configured, generates new ones.
type Provider interface {
	// Templates returns the built-in templates in display order.
	Templates() []models.Template

	// Generate builds a template from a free-text prompt via the external
	// text generator. Failures surface as GENERATION_FAILED errors.
	Generate(ctx context.Context, prompt string) (models.Template, error)
}

// Config configures the catalog and its generator backend.
type Config struct {
	// APIKey authorizes generator calls. Empty disables generation; the
	// built-in templates keep working.
	APIKey string

	// Model is the generator model name.
	Model string

	// ResponsesURL overrides the OpenAI responses endpoint, mainly for
	// tests.
	ResponsesURL string

	// HTTPClient overrides the default client (30s timeout).
	HTTPClient *http.Client
}

// Catalog implements Provider.
type Catalog struct {
	cfg Config
}

// Ensure Catalog implements Provider
var _ Provider = (*Catalog)(nil)

// New creates a Catalog, filling config defaults.
func New(cfg Config) *Catalog {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.ResponsesURL == "" {
		cfg.ResponsesURL = "https://api.openai.com/v1/responses"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Catalog{cfg: cfg}
}

// Templates returns the built-in templates.
func (c *Catalog) Templates() []models.Template {
	return builtinTemplates
}

// builtinTemplates are the stock item lists. Order is display order.
var builtinTemplates = []models.Template{
	{
		ID:          "whimsical-museum",
		Name:        "Whimsical Museum",
		Description: "Curated oddities with unpredictable worth.",
		Items: []models.TemplateItem{
			{Emoji: "🖼️", Name: "Mysterious Portrait", Value: 620},
			{Emoji: "🪄", Name: "Cracked Wand", Value: 240},
			{Emoji: "🧸", Name: "Vintage Plush Bear", Value: 410},
			{Emoji: "💎", Name: "Clouded Gem", Value: 790},
			{Emoji: "📯", Name: "Forgotten Bugle", Value: 360},
		},
	},
	{
		ID:          "space-salvage",
		Name:        "Space Salvage",
		Description: "Relics retrieved from deep-space junkyards.",
		Items: []models.TemplateItem{
			{Emoji: "🚀", Name: "Retro Thruster", Value: 550},
			{Emoji: "👽", Name: "Alien Trinket", Value: 300},
			{Emoji: "🛰️", Name: "Mini Satellite", Value: 480},
			{Emoji: "🪐", Name: "Orbital Pebble", Value: 210},
			{Emoji: "🪫", Name: "Depleted Power Core", Value: 670},
		},
	},
	{
		ID:          "retro-yard-sale",
		Name:        "Retro Yard Sale",
		Description: "Odd bargains from decades past.",
		Items: []models.TemplateItem{
			{Emoji: "📼", Name: "Rare VHS", Value: 290},
			{Emoji: "🎮", Name: "Handheld Console", Value: 510},
			{Emoji: "☎️", Name: "Rotary Phone", Value: 340},
			{Emoji: "🧦", Name: "Mismatched Socks", Value: 120},
			{Emoji: "📻", Name: "Tinny Radio", Value: 410},
		},
	},
}
