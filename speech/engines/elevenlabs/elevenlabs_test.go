package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kindkeeper/kindkeeper/speech"
)

func testConfig(baseURL string) speech.ElevenLabsConfig {
	cfg := speech.DefaultElevenLabsConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	cfg.RequestsPerMinute = 600
	return cfg
}

func TestNew_RequiresAPIKey(t *testing.T) {
	cfg := speech.DefaultElevenLabsConfig()
	if _, err := New(cfg); !errors.Is(err, speech.ErrMissingAPIKey) {
		t.Errorf("error = %v, want %v", err, speech.ErrMissingAPIKey)
	}
}

func TestSynthesize_RequestShape(t *testing.T) {
	var gotPath, gotKey, gotQuery string
	var gotBody synthesisRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("xi-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_, _ = w.Write([]byte("pcm-audio-bytes"))
	}))
	defer server.Close()

	engine, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer engine.Close() //nolint:errcheck

	settings := speech.VoiceSettings{Stability: 0.65, Similarity: 0.8, Style: 0.1, Rate: 0.92}
	audio, err := engine.Synthesize(context.Background(), "You paid 500.", settings)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if string(audio) != "pcm-audio-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if want := "/v1/text-to-speech/" + engine.cfg.VoiceID; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if !strings.Contains(gotQuery, "output_format=pcm_22050") {
		t.Errorf("query = %q, want pcm output format", gotQuery)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotBody.Text != "You paid 500." {
		t.Errorf("request text = %q", gotBody.Text)
	}
	if gotBody.VoiceSettings.Stability != 0.65 || gotBody.VoiceSettings.Speed != 0.92 {
		t.Errorf("voice settings not forwarded: %+v", gotBody.VoiceSettings)
	}
}

func TestSynthesize_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer server.Close()

	engine, err := New(testConfig(server.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = engine.Synthesize(context.Background(), "hello", speech.VoiceSettings{Rate: 1.0})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error does not mention status: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error does not quote the response body: %v", err)
	}
}

func TestSynthesize_InputValidation(t *testing.T) {
	engine, err := New(testConfig("http://localhost:0"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := engine.Synthesize(context.Background(), "", speech.VoiceSettings{}); !errors.Is(err, speech.ErrEmptyText) {
		t.Errorf("empty text error = %v, want %v", err, speech.ErrEmptyText)
	}

	long := strings.Repeat("a", maxTextSize+1)
	if _, err := engine.Synthesize(context.Background(), long, speech.VoiceSettings{}); !errors.Is(err, speech.ErrTextTooLong) {
		t.Errorf("long text error = %v, want %v", err, speech.ErrTextTooLong)
	}
}

func TestSynthesize_AfterClose(t *testing.T) {
	engine, err := New(testConfig("http://localhost:0"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := engine.Synthesize(context.Background(), "hello", speech.VoiceSettings{}); !errors.Is(err, speech.ErrEngineClosed) {
		t.Errorf("error = %v, want %v", err, speech.ErrEngineClosed)
	}
}

func TestValidate(t *testing.T) {
	engine, err := New(testConfig("http://localhost:0"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := engine.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
