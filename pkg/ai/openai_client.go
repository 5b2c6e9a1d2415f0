// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) chat(system, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}

func (c *openAI) AnalyzeRisks(name string, hazards []string, lat, lng *float64) (string, error) {
	loc := "unknown"
	if lat != nil && lng != nil {
		loc = fmt.Sprintf("%.4f,%.4f", *lat, *lng)
	}
	prompt := fmt.Sprintf(`Write a concise Markdown risk assessment (max 10 lines) for a neighbourhood
emergency-preparedness community.

COMMUNITY: %s
MEETING POINT: %s
SELECTED HAZARDS: %v

For each hazard give one practical preparedness priority. Avoid generic advice.`,
		name, loc, hazards)
	return c.chat("You are an emergency-preparedness planner who writes concise, actionable Markdown.", prompt)
}

func (c *openAI) CustomizeGuide(baseMD, communityName string, hazards []string) (string, error) {
	prompt := fmt.Sprintf(`Adapt the BASE GUIDE below for the community "%s" (hazards: %v).
Keep the structure, tighten the wording, drop sections irrelevant to these hazards.
Reply with Markdown only.

BASE GUIDE:
%s`, communityName, hazards, baseMD)
	return c.chat("You are an emergency-preparedness planner. Reply with Markdown only.", prompt)
}

func (c *openAI) PromoContent(name, description string, hazards []string) (string, string, error) {
	prompt := fmt.Sprintf(`Draft a short shareable announcement for a new neighbourhood
preparedness community. Reply ONLY valid JSON: {"title":"...","body":"..."}

COMMUNITY: %s
DESCRIPTION: %s
HAZARDS: %v`, name, description, hazards)
	raw, err := c.chat("You are a community organizer. Reply ONLY valid JSON.", prompt)
	if err != nil {
		return "", "", err
	}
	var payload struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", "", fmt.Errorf("parse promo: %v / raw: %s", err, raw)
	}
	return strings.TrimSpace(payload.Title), strings.TrimSpace(payload.Body), nil
}
