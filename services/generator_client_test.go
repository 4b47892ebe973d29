package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPGeneratorGenerate(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Standard != "3.NBT.A.1" {
			t.Errorf("standard = %q", req.Standard)
		}

		json.NewEncoder(w).Encode(CandidateMCQ{
			Title:    "Rounding to the nearest ten",
			Question: "Round 47 to the nearest ten.",
			Choices: []ChoiceInput{
				{ChoiceText: "40"},
				{ChoiceText: "50", IsCorrect: true},
				{ChoiceText: "45"},
				{ChoiceText: "47"},
			},
		})
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, "test-key")
	candidate, err := gen.Generate(context.Background(), &GenerateRequest{
		Subject:    "math",
		GradeLevel: "3",
		Standard:   "3.NBT.A.1",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if candidate.Question != "Round 47 to the nearest ten." {
		t.Fatalf("question = %q", candidate.Question)
	}
	if len(candidate.Choices) != 4 || !candidate.Choices[1].IsCorrect {
		t.Fatalf("choices = %+v", candidate.Choices)
	}
}

func TestHTTPGeneratorErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, "")
	if _, err := gen.Generate(context.Background(), &GenerateRequest{Subject: "math", GradeLevel: "3", Standard: "x"}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestHTTPGeneratorBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, "")
	if _, err := gen.Generate(context.Background(), &GenerateRequest{Subject: "math", GradeLevel: "3", Standard: "x"}); err == nil {
		t.Fatal("expected error on malformed response")
	}
}
