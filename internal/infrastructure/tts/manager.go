// Package tts provides content-hash-cached speech synthesis.
package tts

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
)

// Manager caches generated audio by an md5 hash of the input text: repeated
// calls with identical text return the same reference without touching the
// remote service.
type Manager struct {
	baseURL    string
	apiKey     string
	model      string
	voice      string
	cacheDir   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewManager builds a speech manager from configuration, ensuring the cache
// directory exists.
func NewManager(cfg *config.Config, logger *logrus.Logger) (*Manager, error) {
	if err := os.MkdirAll(cfg.TTS.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache directory: %w", err)
	}
	return &Manager{
		baseURL:  strings.TrimRight(cfg.TTS.BaseURL, "/"),
		apiKey:   cfg.TTS.APIKey,
		model:    cfg.TTS.Model,
		voice:    cfg.TTS.Voice,
		cacheDir: cfg.TTS.CacheDir,
		httpClient: &http.Client{
			Timeout: cfg.TTSTimeout(),
		},
		logger: logger,
	}, nil
}

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

// AudioRef returns a stable file reference for the spoken text, generating
// and caching the audio on first use. Failures return an empty reference,
// never an error.
func (m *Manager) AudioRef(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	sum := md5.Sum([]byte(text))
	path := filepath.Join(m.cacheDir, hex.EncodeToString(sum[:])+".mp3")

	if _, err := os.Stat(path); err == nil {
		return path
	}

	audio, err := m.synthesize(ctx, text)
	if err != nil {
		m.logger.WithError(err).Warn("speech synthesis failed")
		return ""
	}
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		m.logger.WithError(err).Warn("write audio cache file failed")
		return ""
	}
	return path
}

func (m *Manager) synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(&speechRequest{
		Model: m.model,
		Voice: m.voice,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal speech request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create speech request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	httpResp, err := m.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, fmt.Errorf("speech request failed: status=%d", httpResp.StatusCode)
	}

	return io.ReadAll(httpResp.Body)
}
