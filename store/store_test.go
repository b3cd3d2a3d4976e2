package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/neon-strike/constants"
	"github.com/lixenwraith/neon-strike/events"
)

var testDate = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "scores.yaml"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.HighScore() != 0 || len(s.History()) != 0 {
		t.Errorf("expected empty store, got high=%d history=%d", s.HighScore(), len(s.History()))
	}
}

func TestOpenCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("high_score: [not, an, int\nhistory: {"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() should discard corrupt content, got error %v", err)
	}
	if s.HighScore() != 0 || len(s.History()) != 0 {
		t.Errorf("expected empty store, got high=%d history=%d", s.HighScore(), len(s.History()))
	}
}

func TestParseCorrupt(t *testing.T) {
	_, err := parse([]byte("history: [unclosed"))
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("parse() error = %v, want ErrCorrupt", err)
	}
}

func TestParseDropsMalformedRecords(t *testing.T) {
	data := []byte(`
high_score: 100
history:
  - {id: a, score: 500, kills: 4, time: 30}
  - {id: b, score: -5, kills: 1, time: 3}
  - {id: c, score: 50, kills: 1, time: 9}
`)
	doc, err := parse(data)
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	if len(doc.History) != 2 {
		t.Fatalf("kept %d records, want 2", len(doc.History))
	}
	if doc.History[0].ID != "a" || doc.History[1].ID != "c" {
		t.Errorf("unexpected records kept: %+v", doc.History)
	}
	// High score never below a recorded score
	if doc.HighScore != 500 {
		t.Errorf("HighScore = %d, want 500", doc.HighScore)
	}
}

func TestRecordGameOrderAndLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= constants.HistoryLimit+2; i++ {
		if _, err := s.RecordGame(i*100, i, time.Duration(i)*time.Second, testDate); err != nil {
			t.Fatalf("RecordGame(%d) error = %v", i, err)
		}
	}

	h := s.History()
	if len(h) != constants.HistoryLimit {
		t.Fatalf("history has %d records, want %d", len(h), constants.HistoryLimit)
	}
	// Most recent first
	if h[0].Score != (constants.HistoryLimit+2)*100 {
		t.Errorf("first record score = %d, want most recent", h[0].Score)
	}
	if h[len(h)-1].Score != 300 {
		t.Errorf("last record score = %d, want 300", h[len(h)-1].Score)
	}
	if h[0].ID == "" || h[0].ID == h[1].ID {
		t.Errorf("records need unique ids, got %q and %q", h[0].ID, h[1].ID)
	}

	// Reload round trip
	reloaded, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.HighScore() != s.HighScore() {
		t.Errorf("reloaded high score = %d, want %d", reloaded.HighScore(), s.HighScore())
	}
	rh := reloaded.History()
	if len(rh) != len(h) || rh[0].ID != h[0].ID || rh[0].Time != h[0].Time || !rh[0].Date.Equal(testDate) {
		t.Errorf("reloaded history mismatch: %+v vs %+v", rh[0], h[0])
	}
}

func TestHighScoreOnlyRaised(t *testing.T) {
	s, _ := Open("")

	if err := s.SetHighScore(900); err != nil {
		t.Fatal(err)
	}
	if err := s.SetHighScore(400); err != nil {
		t.Fatal(err)
	}
	if s.HighScore() != 900 {
		t.Errorf("HighScore = %d, want 900", s.HighScore())
	}

	if _, err := s.RecordGame(300, 2, 10*time.Second, testDate); err != nil {
		t.Fatal(err)
	}
	if s.HighScore() != 900 {
		t.Errorf("lower game lowered high score to %d", s.HighScore())
	}
}

func TestClearHistoryKeepsHighScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	s, _ := Open(path)
	if _, err := s.RecordGame(1200, 9, time.Minute, testDate); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearHistory(); err != nil {
		t.Fatal(err)
	}

	reloaded, _ := Open(path)
	if len(reloaded.History()) != 0 {
		t.Errorf("history not cleared: %d records", len(reloaded.History()))
	}
	if reloaded.HighScore() != 1200 {
		t.Errorf("HighScore = %d, want 1200", reloaded.HighScore())
	}
}

func TestRecorderHandlesGameOver(t *testing.T) {
	s, _ := Open("")
	r := NewRecorder[struct{}](s)
	r.now = func() time.Time { return testDate }

	r.HandleEvent(struct{}{}, events.GameEvent{
		Type:    events.EventGameOver,
		Payload: &events.GameOverPayload{Score: 2500, Kills: 17, Level: 4, Duration: 95*time.Second + 400*time.Millisecond},
	})
	// Wrong payload type is ignored
	r.HandleEvent(struct{}{}, events.GameEvent{Type: events.EventGameOver, Payload: "oops"})

	h := s.History()
	if len(h) != 1 {
		t.Fatalf("history has %d records, want 1", len(h))
	}
	if h[0].Score != 2500 || h[0].Kills != 17 || h[0].Time != 95 || !h[0].Date.Equal(testDate) {
		t.Errorf("unexpected record %+v", h[0])
	}
	if s.HighScore() != 2500 {
		t.Errorf("HighScore = %d, want 2500", s.HighScore())
	}
}
