package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
)

func testConfig(endpoint string, batchSize int) *config.Config {
	return &config.Config{
		Vector: config.VectorConfig{Dim: 4},
		Embedding: config.EmbeddingConfig{
			Endpoint:  endpoint,
			Model:     "BAAI/bge-m3",
			BatchSize: batchSize,
			Timeout:   5,
		},
	}
}

func TestEmbedBatch_SplitsIntoBatches(t *testing.T) {
	var batchSizes []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Texts []string `json:"texts"`
			Model string   `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		batchSizes = append(batchSizes, len(req.Texts))

		vectors := make([][]float32, len(req.Texts))
		for i := range vectors {
			vectors[i] = []float32{1, 0, 0, 0}
		}
		json.NewEncoder(w).Encode(map[string]any{"embeddings": vectors})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, 2))
	vectors, err := client.EmbedBatch(context.Background(), []string{"a", "b", "c", "d", "e"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 5 {
		t.Fatalf("expected 5 vectors, got %d", len(vectors))
	}
	if len(batchSizes) != 3 || batchSizes[0] != 2 || batchSizes[2] != 1 {
		t.Fatalf("unexpected batching: %v", batchSizes)
	}
}

func TestEmbed_SingleText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"embeddings": [][]float32{{0, 1, 0, 0}}})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL, 32))
	vec, err := client.Embed(context.Background(), "The wafer is cleaned.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 4 || vec[1] != 1 {
		t.Fatalf("unexpected vector %v", vec)
	}
}

func TestEmbedBatch_EmptyInput(t *testing.T) {
	client := NewClient(testConfig("http://localhost:0", 32))
	vectors, err := client.EmbedBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vectors) != 0 {
		t.Fatalf("expected no vectors, got %d", len(vectors))
	}
}
