package tts

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
)

func testConfig(baseURL, cacheDir string) *config.Config {
	return &config.Config{
		TTS: config.TTSConfig{
			BaseURL:  baseURL,
			Model:    "tts-1",
			Voice:    "alloy",
			CacheDir: cacheDir,
			Timeout:  5,
		},
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestAudioRef_CacheHitSkipsRemoteCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	text := "The wafer is cleaned."
	sum := md5.Sum([]byte(text))
	cached := filepath.Join(dir, hex.EncodeToString(sum[:])+".mp3")
	if err := os.WriteFile(cached, []byte("cached"), 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	m, err := NewManager(testConfig(srv.URL, dir), quietLogger())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	ref := m.AudioRef(context.Background(), text)
	if ref != cached {
		t.Fatalf("expected cached ref %q, got %q", cached, ref)
	}
	if calls != 0 {
		t.Fatalf("remote service called %d times for a cache hit", calls)
	}
}

func TestAudioRef_SynthesizesAndCaches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	m, err := NewManager(testConfig(srv.URL, dir), quietLogger())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	first := m.AudioRef(context.Background(), "The wafer is cleaned.")
	if first == "" {
		t.Fatal("expected a reference")
	}
	second := m.AudioRef(context.Background(), "The wafer is cleaned.")
	if first != second {
		t.Fatalf("expected stable reference, got %q then %q", first, second)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read cached audio: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Fatalf("unexpected cached content %q", data)
	}
}

func TestAudioRef_FailureReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m, err := NewManager(testConfig(srv.URL, t.TempDir()), quietLogger())
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if ref := m.AudioRef(context.Background(), "The wafer is cleaned."); ref != "" {
		t.Fatalf("expected empty ref on failure, got %q", ref)
	}
}
