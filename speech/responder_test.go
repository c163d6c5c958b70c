package speech_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kindkeeper/kindkeeper/internal/cache"
	"github.com/kindkeeper/kindkeeper/speech"
	"github.com/kindkeeper/kindkeeper/speech/classify"
	"github.com/kindkeeper/kindkeeper/speech/engines/mock"
)

func newTestResponder(t *testing.T) (*speech.Responder, *mock.Engine, *cache.Cache) {
	t.Helper()
	engine := mock.New(speech.DefaultMockConfig())
	audioCache := cache.New(10, time.Minute)
	return speech.NewResponder(engine, audioCache, nil), engine, audioCache
}

func TestResponder_SpeakCachesFinancialReply(t *testing.T) {
	responder, engine, _ := newTestResponder(t)

	const text = "gave the maid two thousand yesterday"

	first, err := responder.Speak(context.Background(), text)
	if err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if first.Result.Kind != classify.KindComplex {
		t.Errorf("Kind = %v, want %v", first.Result.Kind, classify.KindComplex)
	}
	if !first.Result.Cacheable {
		t.Error("financial reply should be cacheable")
	}
	if first.CacheHit {
		t.Error("first call should not be a cache hit")
	}

	second, err := responder.Speak(context.Background(), text)
	if err != nil {
		t.Fatalf("second Speak failed: %v", err)
	}
	if !second.CacheHit {
		t.Error("second call should be a cache hit")
	}
	if string(second.Audio) != string(first.Audio) {
		t.Error("cached audio differs from synthesized audio")
	}
	if engine.CallCount() != 1 {
		t.Errorf("engine called %d times, want 1 (cache hit must not synthesize)", engine.CallCount())
	}
}

func TestResponder_UncacheableReplySynthesizesEveryTime(t *testing.T) {
	responder, engine, _ := newTestResponder(t)

	const text = "Could you repeat that?"

	for i := 0; i < 3; i++ {
		reply, err := responder.Speak(context.Background(), text)
		if err != nil {
			t.Fatalf("Speak failed: %v", err)
		}
		if reply.CacheHit {
			t.Error("uncacheable reply should never hit the cache")
		}
		if reply.Result.Kind != classify.KindQuery {
			t.Errorf("Kind = %v, want %v", reply.Result.Kind, classify.KindQuery)
		}
	}

	if engine.CallCount() != 3 {
		t.Errorf("engine called %d times, want 3", engine.CallCount())
	}
}

func TestResponder_FailedSynthesisCachesNothing(t *testing.T) {
	responder, engine, audioCache := newTestResponder(t)

	synthErr := errors.New("quota exceeded")
	engine.SetFailure(synthErr)

	_, err := responder.Speak(context.Background(), "You paid 500 to the milkman.")
	if err == nil {
		t.Fatal("Speak should have failed")
	}
	if !errors.Is(err, synthErr) {
		t.Errorf("error does not wrap the engine failure: %v", err)
	}
	if audioCache.Len() != 0 {
		t.Errorf("failed synthesis left %d cache entries", audioCache.Len())
	}

	// Recovery: the same text synthesizes and caches once the engine works.
	engine.SetFailure(nil)
	reply, err := responder.Speak(context.Background(), "You paid 500 to the milkman.")
	if err != nil {
		t.Fatalf("Speak failed after recovery: %v", err)
	}
	if reply.CacheHit {
		t.Error("recovered call should not be a cache hit")
	}
	if audioCache.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", audioCache.Len())
	}
}

func TestResponder_EmptyText(t *testing.T) {
	responder, engine, _ := newTestResponder(t)

	if _, err := responder.Speak(context.Background(), ""); !errors.Is(err, speech.ErrEmptyText) {
		t.Errorf("error = %v, want %v", err, speech.ErrEmptyText)
	}
	if engine.CallCount() != 0 {
		t.Error("empty text must not reach the engine")
	}
}

func TestResponder_NilCacheStillSpeaks(t *testing.T) {
	engine := mock.New(speech.DefaultMockConfig())
	responder := speech.NewResponder(engine, nil, nil)

	reply, err := responder.Speak(context.Background(), "gave the maid two thousand yesterday")
	if err != nil {
		t.Fatalf("Speak failed without cache: %v", err)
	}
	if reply.CacheHit {
		t.Error("cache hit reported with no cache configured")
	}
	if len(reply.Audio) == 0 {
		t.Error("no audio returned")
	}
}

func TestResponder_SettingsFollowKind(t *testing.T) {
	responder, _, _ := newTestResponder(t)

	reply, err := responder.Speak(context.Background(), "Sorry, I couldn't understand, please try again")
	if err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if reply.Result.Kind != classify.KindError {
		t.Fatalf("Kind = %v, want %v", reply.Result.Kind, classify.KindError)
	}
	if want := speech.SettingsFor(classify.KindError); reply.Settings != want {
		t.Errorf("Settings = %+v, want %+v", reply.Settings, want)
	}
}

func TestResponder_CacheStats(t *testing.T) {
	responder, _, _ := newTestResponder(t)

	const text = "Don't forget the doctor visit tomorrow."
	if _, err := responder.Speak(context.Background(), text); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if _, err := responder.Speak(context.Background(), text); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	stats := responder.CacheStats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
}
