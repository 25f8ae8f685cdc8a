package catalog

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/auctioneer/internal/models"
)

const (
	defaultItemCount = 15
	minItemCount     = 3
	maxItemCount     = 30
)

var firstInt = regexp.MustCompile(`\d+`)

// Generate asks the text generator for a themed item list and re-validates
// everything it returns. Generator output is fully untrusted: values must
// be whole non-negative numbers, names are trimmed and capped, and a
// response with no usable items fails. All collaborator failures map to
// GENERATION_FAILED; session logic never sees them as anything else.
func (c *Catalog) Generate(ctx context.Context, prompt string) (models.Template, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return models.Template{}, models.NewError(models.CodeValidation, "Prompt is required")
	}
	if c.cfg.APIKey == "" {
		return models.Template{}, models.NewError(models.CodeGenerationFailed, "Template generation is not configured")
	}

	count := itemCountHint(prompt)
	output, err := c.invoke(ctx, generatorInstruction(prompt, count))
	if err != nil {
		return models.Template{}, models.WrapError(models.CodeGenerationFailed, "Template generation failed", err)
	}

	tmpl, err := parseTemplate(output)
	if err != nil {
		return models.Template{}, models.WrapError(models.CodeGenerationFailed, "Generator returned an unusable template", err)
	}
	return tmpl, nil
}

// itemCountHint extracts the desired item count from the prompt: the first
// integer literal found, clamped to a sane range, defaulting to 15.
func itemCountHint(prompt string) int {
	match := firstInt.FindString(prompt)
	if match == "" {
		return defaultItemCount
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return defaultItemCount
	}
	if n < minItemCount {
		return minItemCount
	}
	if n > maxItemCount {
		return maxItemCount
	}
	return n
}

func generatorInstruction(prompt string, count int) string {
	return fmt.Sprintf(`You are generating items for a sealed-bid auction party game. `+
		`Theme: %s. Respond with a single JSON object and nothing else, shaped as `+
		`{"name": string, "description": string, "items": [{"emoji": string, "name": string, "value": integer}]} `+
		`with exactly %d items. Values are whole numbers between 50 and 1000.`, prompt, count)
}

// invoke posts the instruction to the responses endpoint and extracts the
// output text. The credential is sent only as an Authorization header and
// never echoed into errors.
func (c *Catalog) invoke(ctx context.Context, input string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"model": c.cfg.Model,
		"input": input,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ResponsesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return "", fmt.Errorf("generate request status %d", res.StatusCode)
		}
		return "", fmt.Errorf("generate request status %d: %s", res.StatusCode, strings.TrimSpace(string(detail)))
	}

	var payload struct {
		OutputText string `json:"output_text"`
		Output     []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	text := strings.TrimSpace(payload.OutputText)
	if text == "" {
		for _, item := range payload.Output {
			for _, content := range item.Content {
				if strings.TrimSpace(content.Text) != "" {
					text = strings.TrimSpace(content.Text)
					break
				}
			}
			if text != "" {
				break
			}
		}
	}
	if text == "" {
		return "", fmt.Errorf("generate response missing output text")
	}
	return text, nil
}

// parseTemplate pulls the JSON object out of the generator's text (models
// like to wrap JSON in prose or code fences) and validates every field.
func parseTemplate(output string) (models.Template, error) {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return models.Template{}, fmt.Errorf("no JSON object in output")
	}

	var raw struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Items       []struct {
			Emoji string      `json:"emoji"`
			Name  string      `json:"name"`
			Value json.Number `json:"value"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(output[start:end+1]), &raw); err != nil {
		return models.Template{}, fmt.Errorf("parse output JSON: %w", err)
	}

	items := make([]models.TemplateItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		value, err := it.Value.Int64()
		if err != nil || value < 0 {
			// Non-integer or negative values are rejected, not clamped.
			continue
		}
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = "Mystery Item"
		}
		if runes := []rune(name); len(runes) > 40 {
			name = string(runes[:40])
		}
		emoji := strings.TrimSpace(it.Emoji)
		if emoji == "" {
			emoji = "❓"
		}
		items = append(items, models.TemplateItem{Emoji: emoji, Name: name, Value: int(value)})
	}
	if len(items) == 0 {
		return models.Template{}, fmt.Errorf("output had no usable items")
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = "Custom Auction"
	}
	id := uuid.New()
	return models.Template{
		ID:          "generated-" + hex.EncodeToString(id[:]),
		Name:        name,
		Description: strings.TrimSpace(raw.Description),
		Items:       items,
	}, nil
}
