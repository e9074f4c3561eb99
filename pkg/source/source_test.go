package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/errors"
	"github.com/drodenkirchen/rio/pkg/layouter"
	"github.com/drodenkirchen/rio/pkg/snapshot"
)

func testSnapshot() *layouter.Snapshot {
	rec := layouter.NewRecord()
	rec.NaturalWidth = 12
	return &layouter.Snapshot{
		WindowWidth:  640,
		WindowHeight: 480,
		Records:      map[component.ID]*layouter.Record{7: rec},
	}
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := WriteFile(testSnapshot(), path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	snap, err := NewFile(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if snap.WindowWidth != 640 || snap.WindowHeight != 480 {
		t.Errorf("window = %gx%g, want 640x480", snap.WindowWidth, snap.WindowHeight)
	}
	if rec, ok := snap.Records[7]; !ok || rec.NaturalWidth != 12 {
		t.Errorf("Records[7] not preserved: %+v", snap.Records)
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.json")).Fetch(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestDecodeSnapshot_PartialRecordKeepsSentinels(t *testing.T) {
	// A pushed report often carries only leaf natural sizes. Fields the
	// payload leaves out must stay at the sentinel; decoding them to zero
	// would make every unreported field look like a disagreement.
	body := `{
		"window_width": 100,
		"window_height": 50,
		"records": {
			"1": {},
			"2": {"natural_width": 10, "natural_height": 5}
		}
	}`

	snap, err := DecodeSnapshot([]byte(body))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}

	empty := snap.Records[1]
	for _, f := range layouter.Fields {
		if got := f.Get(empty); got != layouter.Unset {
			t.Errorf("Records[1].%s = %v, want the unset sentinel", f.Name, got)
		}
	}

	leaf := snap.Records[2]
	if leaf.NaturalWidth != 10 || leaf.NaturalHeight != 5 {
		t.Errorf("Records[2] naturals = %v x %v, want 10 x 5", leaf.NaturalWidth, leaf.NaturalHeight)
	}
	if got := leaf.AllocatedOuterWidth; got != layouter.Unset {
		t.Errorf("Records[2].AllocatedOuterWidth = %v, want the unset sentinel", got)
	}
}

func TestDecodeSnapshot_RejectsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no window", `{"records": {"1": {}}}`},
		{"no records", `{"window_width": 100, "window_height": 100}`},
		{"not json", `nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot([]byte(tt.body)); err == nil {
				t.Error("DecodeSnapshot() should fail")
			}
		})
	}
}

func TestHTTP_FetchesAndRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != DebugLayoutPath {
			http.NotFound(w, r)
			return
		}
		// First attempt fails transiently; the retry succeeds.
		if calls.Add(1) == 1 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"window_width": 320, "window_height": 200, "records": {"1": {"natural_width": 5}}}`))
	}))
	defer srv.Close()

	src, err := NewHTTP(srv.URL, WithRetry(3, time.Millisecond))
	if err != nil {
		t.Fatalf("NewHTTP() error: %v", err)
	}

	snap, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if snap.WindowWidth != 320 {
		t.Errorf("WindowWidth = %v, want 320", snap.WindowWidth)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server saw %d calls, want 2 (one retry)", got)
	}
}

func TestHTTP_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src, err := NewHTTP(srv.URL, WithRetry(3, time.Millisecond))
	if err != nil {
		t.Fatalf("NewHTTP() error: %v", err)
	}

	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch() should fail on 404")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server saw %d calls, want 1 (no retry on 404)", got)
	}
}

func TestNewHTTP_RejectsBadURL(t *testing.T) {
	if _, err := NewHTTP("ftp://example.com"); err == nil {
		t.Error("NewHTTP() should reject non-http schemes")
	}
}

func TestRecorded_RecordsAndReplays(t *testing.T) {
	ctx := context.Background()
	store, err := snapshot.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	upstream := &countingSource{snap: testSnapshot()}

	// First fetch goes upstream and records.
	rec := NewRecorded(upstream, store, "scene:main", true)
	if _, err := rec.Fetch(ctx); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if upstream.calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", upstream.calls)
	}

	// Second fetch replays without touching the upstream.
	if _, err := rec.Fetch(ctx); err != nil {
		t.Fatalf("replay Fetch() error: %v", err)
	}
	if upstream.calls != 1 {
		t.Errorf("upstream calls = %d, want 1 (replay should not fetch)", upstream.calls)
	}
}

func TestRecorded_WithoutReplayAlwaysFetches(t *testing.T) {
	ctx := context.Background()
	store, err := snapshot.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	upstream := &countingSource{snap: testSnapshot()}
	rec := NewRecorded(upstream, store, "scene:main", false)

	for range 2 {
		if _, err := rec.Fetch(ctx); err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
	}
	if upstream.calls != 2 {
		t.Errorf("upstream calls = %d, want 2", upstream.calls)
	}
}

type countingSource struct {
	snap  *layouter.Snapshot
	calls int
}

func (s *countingSource) Fetch(ctx context.Context) (*layouter.Snapshot, error) {
	s.calls++
	return s.snap, nil
}
