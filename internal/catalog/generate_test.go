package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmynk/auctioneer/internal/models"
)

func TestItemCountHint(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{name: "no number defaults", prompt: "haunted carnival prizes", want: 15},
		{name: "first integer wins", prompt: "8 cursed artifacts from 3 dynasties", want: 8},
		{name: "clamped low", prompt: "just 1 item please", want: 3},
		{name: "clamped high", prompt: "give me 500 things", want: 30},
		{name: "boundary low", prompt: "3 relics", want: 3},
		{name: "boundary high", prompt: "30 relics", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := itemCountHint(tt.prompt); got != tt.want {
				t.Errorf("itemCountHint(%q) = %d, want %d", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name         string
		output       string
		wantErr      bool
		validateFunc func(t *testing.T, tmpl models.Template)
	}{
		{
			name: "plain JSON",
			output: `{"name": "Pirate Haul", "description": "Loot.", "items": [
				{"emoji": "🏴‍☠️", "name": "Tattered Flag", "value": 120},
				{"emoji": "🗡️", "name": "Dull Cutlass", "value": 340}
			]}`,
			validateFunc: func(t *testing.T, tmpl models.Template) {
				if tmpl.Name != "Pirate Haul" {
					t.Errorf("name = %q", tmpl.Name)
				}
				if len(tmpl.Items) != 2 {
					t.Fatalf("items = %d, want 2", len(tmpl.Items))
				}
				if tmpl.Items[1].Value != 340 {
					t.Errorf("value = %d, want 340", tmpl.Items[1].Value)
				}
				if !strings.HasPrefix(tmpl.ID, "generated-") {
					t.Errorf("id = %q, want generated- prefix", tmpl.ID)
				}
			},
		},
		{
			name: "JSON wrapped in prose and fences",
			output: "Here is your template:\n```json\n" +
				`{"name": "Attic Finds", "items": [{"emoji": "🕰️", "name": "Stopped Clock", "value": 200}]}` +
				"\n```\nEnjoy!",
			validateFunc: func(t *testing.T, tmpl models.Template) {
				if tmpl.Name != "Attic Finds" || len(tmpl.Items) != 1 {
					t.Errorf("tmpl = %+v", tmpl)
				}
			},
		},
		{
			name:   "missing name and emoji get defaults",
			output: `{"items": [{"name": "  ", "value": 100}]}`,
			validateFunc: func(t *testing.T, tmpl models.Template) {
				if tmpl.Name != "Custom Auction" {
					t.Errorf("name = %q, want Custom Auction", tmpl.Name)
				}
				if tmpl.Items[0].Name != "Mystery Item" || tmpl.Items[0].Emoji != "❓" {
					t.Errorf("item = %+v, want placeholder name and emoji", tmpl.Items[0])
				}
			},
		},
		{
			name: "non-integer and negative values dropped",
			output: `{"name": "Mixed", "items": [
				{"emoji": "🎲", "name": "Loaded Die", "value": 9.5},
				{"emoji": "🎯", "name": "Bent Dart", "value": -40},
				{"emoji": "🧿", "name": "Lucky Charm", "value": 75}
			]}`,
			validateFunc: func(t *testing.T, tmpl models.Template) {
				if len(tmpl.Items) != 1 || tmpl.Items[0].Name != "Lucky Charm" {
					t.Errorf("items = %+v, want only the valid item", tmpl.Items)
				}
			},
		},
		{
			name:    "no usable items",
			output:  `{"name": "Empty", "items": [{"emoji": "🎲", "name": "Bad", "value": "lots"}]}`,
			wantErr: true,
		},
		{
			name:    "no JSON object at all",
			output:  "Sorry, I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := parseTemplate(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseTemplate succeeded: %+v", tmpl)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTemplate: %v", err)
			}
			tt.validateFunc(t, tmpl)
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("happy path via output_text", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			var req struct {
				Model string `json:"model"`
				Input string `json:"input"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			if !strings.Contains(req.Input, "cursed antiques") {
				t.Errorf("prompt missing from instruction: %q", req.Input)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"output_text": `{"name": "Cursed Antiques", "items": [{"emoji": "🪞", "name": "Whispering Mirror", "value": 666}]}`,
			})
		}))
		defer srv.Close()

		c := New(Config{APIKey: "test-key", ResponsesURL: srv.URL, HTTPClient: srv.Client()})
		tmpl, err := c.Generate(context.Background(), "cursed antiques")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if gotAuth != "Bearer test-key" {
			t.Errorf("authorization = %q", gotAuth)
		}
		if tmpl.Name != "Cursed Antiques" || len(tmpl.Items) != 1 {
			t.Errorf("tmpl = %+v", tmpl)
		}
	})

	t.Run("happy path via output array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"output": []map[string]any{{
					"content": []map[string]any{{
						"type": "output_text",
						"text": `{"name": "Fallback", "items": [{"emoji": "🎁", "name": "Box", "value": 50}]}`,
					}},
				}},
			})
		}))
		defer srv.Close()

		c := New(Config{APIKey: "test-key", ResponsesURL: srv.URL, HTTPClient: srv.Client()})
		tmpl, err := c.Generate(context.Background(), "anything")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if tmpl.Name != "Fallback" {
			t.Errorf("name = %q", tmpl.Name)
		}
	})

	t.Run("upstream error maps to GENERATION_FAILED", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := New(Config{APIKey: "test-key", ResponsesURL: srv.URL, HTTPClient: srv.Client()})
		_, err := c.Generate(context.Background(), "anything")
		wantGenerateCode(t, err, models.CodeGenerationFailed)
	})

	t.Run("missing key maps to GENERATION_FAILED", func(t *testing.T) {
		c := New(Config{})
		_, err := c.Generate(context.Background(), "anything")
		wantGenerateCode(t, err, models.CodeGenerationFailed)
	})

	t.Run("empty prompt is a validation error", func(t *testing.T) {
		c := New(Config{APIKey: "test-key"})
		_, err := c.Generate(context.Background(), "   ")
		wantGenerateCode(t, err, models.CodeValidation)
	})
}

func wantGenerateCode(t *testing.T, err error, code models.Code) {
	t.Helper()
	var appErr *models.Error
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("error = %v, want code %s", err, code)
	}
}
