package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Generator produces a candidate MCQ payload from a curriculum-standard
// selection. The candidate is ordinary untrusted input: callers feed it
// through the same create path as manual submissions.
type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) (*CandidateMCQ, error)
}

type GenerateRequest struct {
	Subject    string `json:"subject" binding:"required"`
	GradeLevel string `json:"grade_level" binding:"required"`
	Standard   string `json:"standard" binding:"required"`
}

type CandidateMCQ struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Question    string        `json:"question"`
	Choices     []ChoiceInput `json:"choices"`
}

// HTTPGenerator calls an external content-generation service.
type HTTPGenerator struct {
	client *resty.Client
	url    string
	apiKey string
}

func NewHTTPGenerator(url, apiKey string) *HTTPGenerator {
	return &HTTPGenerator{
		client: resty.New().SetTimeout(15 * time.Second),
		url:    url,
		apiKey: apiKey,
	}
}

func (g *HTTPGenerator) Generate(ctx context.Context, req *GenerateRequest) (*CandidateMCQ, error) {
	r := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if g.apiKey != "" {
		r.SetHeader("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := r.Post(g.url)
	if err != nil {
		return nil, fmt.Errorf("content generator request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("content generator returned status %d", resp.StatusCode())
	}

	var candidate CandidateMCQ
	if err := json.Unmarshal(resp.Body(), &candidate); err != nil {
		return nil, fmt.Errorf("invalid content generator response: %w", err)
	}

	return &candidate, nil
}
