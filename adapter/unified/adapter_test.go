package unified

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/unilog"
)

// recordSink is a minimal Sink for tests.
type recordSink struct {
	mu    sync.Mutex
	lines []emitted
}

type emitted struct {
	Sev  Severity
	Line string
}

func (s *recordSink) Emit(sev Severity, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, emitted{Sev: sev, Line: line})
}

func (s *recordSink) all() []emitted {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]emitted(nil), s.lines...)
}

// recordFallback is a minimal Fallback for tests.
type recordFallback struct {
	mu    sync.Mutex
	lines []string
}

func (f *recordFallback) Print(line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, line)
}

func boundFacility(sink *recordSink, gotScope *[2]string) Facility {
	return FacilityFunc(func(subsystem, category string) (Sink, bool) {
		if gotScope != nil {
			*gotScope = [2]string{subsystem, category}
		}
		return sink, true
	})
}

var unavailable = FacilityFunc(func(string, string) (Sink, bool) { return nil, false })

func newBound(t *testing.T, label string, env Env, opts ...Option) (*Adapter, *recordSink, *recordFallback) {
	t.Helper()
	sink := &recordSink{}
	fb := &recordFallback{}
	base := []Option{
		WithFacility(boundFacility(sink, nil)),
		WithFallback(fb),
		WithEnv(env),
		WithAppID("com.example.test"),
	}
	return New(label, append(base, opts...)...), sink, fb
}

func TestEndToEnd_WarningWithMetadata(t *testing.T) {
	t.Parallel()

	a, sink, fb := newBound(t, "DISK", MapEnv{})
	a.Log(unilog.LevelWarning, "disk low", unilog.Metadata{"pct": unilog.StringValue("5")}, unilog.Source{})

	got := sink.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 line, got %d", len(got))
	}
	if got[0].Line != "⚠️ disk low -- pct=5" {
		t.Fatalf("line mismatch: %q", got[0].Line)
	}
	if got[0].Sev != SeverityInfo {
		t.Fatalf("severity mismatch: %v", got[0].Sev)
	}
	if len(fb.lines) != 0 {
		t.Fatalf("bound adapter used fallback: %v", fb.lines)
	}
}

func TestEndToEnd_InfoNoMetadata(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "APP", MapEnv{})
	a.Log(unilog.LevelInfo, "started", nil, unilog.Source{})

	got := sink.all()
	if len(got) != 1 || got[0].Line != "started" || got[0].Sev != SeverityInfo {
		t.Fatalf("unexpected emit: %+v", got)
	}
}

func TestSuppressionGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       MapEnv
		forwarded bool
	}{
		{"unset", MapEnv{}, true},
		{"true", MapEnv{"MYLOG": "true"}, true},
		{"false", MapEnv{"MYLOG": "false"}, false},
		{"other", MapEnv{"MYLOG": "anything-else"}, false},
		{"empty", MapEnv{"MYLOG": ""}, false},
		{"TRUE is not true", MapEnv{"MYLOG": "TRUE"}, false},
		{"other label muted", MapEnv{"OTHER": "false"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, sink, fb := newBound(t, "MYLOG", tt.env)
			a.Log(unilog.LevelError, "boom", nil, unilog.Source{})
			got := len(sink.all()) == 1
			if got != tt.forwarded {
				t.Fatalf("forwarded=%v, want %v", got, tt.forwarded)
			}
			if a.Suppressed() == tt.forwarded {
				t.Fatalf("Suppressed()=%v disagrees with forwarded=%v", a.Suppressed(), tt.forwarded)
			}
			if len(fb.lines) != 0 {
				t.Fatalf("fallback must not be used: %v", fb.lines)
			}
		})
	}
}

func TestSuppressionGate_Unbound(t *testing.T) {
	t.Parallel()

	fb := &recordFallback{}
	a := New("QUIET",
		WithFacility(unavailable),
		WithFallback(fb),
		WithEnv(MapEnv{"QUIET": "false"}),
		WithAppID("com.example.test"),
	)
	a.Log(unilog.LevelCritical, "nope", nil, unilog.Source{})
	if len(fb.lines) != 0 {
		t.Fatalf("muted adapter printed: %v", fb.lines)
	}
}

func TestMetadataMerge(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "M", MapEnv{}, WithMetadata(unilog.Metadata{"a": unilog.StringValue("1")}))

	a.Log(unilog.LevelInfo, "x", unilog.Metadata{"b": unilog.StringValue("2")}, unilog.Source{})
	a.Log(unilog.LevelInfo, "x", unilog.Metadata{"a": unilog.StringValue("3")}, unilog.Source{})
	a.Log(unilog.LevelInfo, "x", unilog.Metadata{}, unilog.Source{})

	got := sink.all()
	want := []string{"x -- a=1 b=2", "x -- a=3", "x -- a=1"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Line != want[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i].Line, want[i])
		}
	}

	// per-call metadata is not persisted
	if _, ok := a.Metadata("b"); ok {
		t.Fatal("per-call key leaked into base metadata")
	}
	if v, _ := a.Metadata("a"); v.String() != "1" {
		t.Fatalf("base value changed: %q", v.String())
	}
}

func TestSetMetadata_UpdatesCacheAndRemoves(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "S", MapEnv{})

	a.SetMetadata("svc", unilog.StringValue("api"))
	a.Log(unilog.LevelInfo, "one", nil, unilog.Source{})

	a.SetMetadata("port", unilog.Int64Value(8080))
	a.Log(unilog.LevelInfo, "two", nil, unilog.Source{})

	a.SetMetadata("svc", unilog.Value{})
	a.Log(unilog.LevelInfo, "three", nil, unilog.Source{})

	a.SetMetadata("port", unilog.Value{})
	a.Log(unilog.LevelInfo, "four", nil, unilog.Source{})

	want := []string{"one -- svc=api", "two -- port=8080 svc=api", "three -- port=8080", "four"}
	got := sink.all()
	for i := range want {
		if got[i].Line != want[i] {
			t.Fatalf("line %d: got %q want %q", i, got[i].Line, want[i])
		}
	}
	if _, ok := a.Metadata("svc"); ok {
		t.Fatal("svc should have been removed")
	}
}

func TestReplaceMetadataCopies(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "R", MapEnv{})
	md := unilog.Metadata{"k": unilog.StringValue("v")}
	a.ReplaceMetadata(md)
	md["k"] = unilog.StringValue("mutated")

	a.Log(unilog.LevelInfo, "m", nil, unilog.Source{})
	if got := sink.all()[0].Line; got != "m -- k=v" {
		t.Fatalf("line mismatch: %q", got)
	}
	if snap := a.MetadataSnapshot(); len(snap) != 1 {
		t.Fatalf("snapshot size: %d", len(snap))
	}
}

func TestIdempotentLines(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "I", MapEnv{}, WithMetadata(unilog.Metadata{
		"z": unilog.StringValue("last"),
		"a": unilog.Int64Value(1),
		"m": unilog.BoolValue(true),
	}))
	for i := 0; i < 20; i++ {
		a.Log(unilog.LevelNotice, "same", unilog.Metadata{"q": unilog.StringValue("x")}, unilog.Source{})
	}
	got := sink.all()
	for i := range got {
		if got[i].Line != got[0].Line {
			t.Fatalf("line %d differs: %q vs %q", i, got[i].Line, got[0].Line)
		}
	}
	if got[0].Line != "📌 same -- a=1 m=true q=x z=last" {
		t.Fatalf("line mismatch: %q", got[0].Line)
	}
}

func TestFacilityScope(t *testing.T) {
	t.Parallel()

	var scope [2]string
	New("network",
		WithFacility(boundFacility(&recordSink{}, &scope)),
		WithAppID("com.example.app"),
		WithEnv(MapEnv{}),
	)
	if scope != [2]string{"com.example.app", "network"} {
		t.Fatalf("scope mismatch: %v", scope)
	}
}

func TestUnboundUsesFallback(t *testing.T) {
	t.Parallel()

	fb := &recordFallback{}
	a := New("OLD",
		WithFacility(unavailable),
		WithFallback(fb),
		WithEnv(MapEnv{}),
		WithAppID("com.example.test"),
	)
	if a.Bound() {
		t.Fatal("adapter should be unbound")
	}
	a.Log(unilog.LevelError, "failed", unilog.Metadata{"code": unilog.Int64Value(7)}, unilog.Source{})
	if len(fb.lines) != 1 || fb.lines[0] != "❌ failed -- code=7" {
		t.Fatalf("fallback lines: %q", fb.lines)
	}
}

func TestNilFacilityIsUnbound(t *testing.T) {
	t.Parallel()

	fb := &recordFallback{}
	a := New("NIL", WithFacility(nil), WithFallback(fb), WithEnv(MapEnv{}), WithAppID("x"))
	if a.Bound() {
		t.Fatal("nil facility must leave the adapter unbound")
	}
}

func TestWriterFallbackFormat(t *testing.T) {
	old := xclock.Default()
	defer xclock.SetDefault(old)
	xclock.SetDefault(xclock.NewFrozen(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	var buf bytes.Buffer
	a := New("W",
		WithFacility(unavailable),
		WithFallback(NewWriterFallback(&buf, "com.example.w")),
		WithEnv(MapEnv{}),
		WithAppID("com.example.w"),
	)
	a.Log(unilog.LevelDebug, "hello", nil, unilog.Source{})

	line := buf.String()
	wantPrefix := "2025-01-01 00:00:00.000000 com.example.w["
	if !strings.HasPrefix(line, wantPrefix) {
		t.Fatalf("prefix mismatch: %q", line)
	}
	if !strings.HasSuffix(line, "] 💬 hello\n") {
		t.Fatalf("suffix mismatch: %q", line)
	}
}

func TestWithChildDoesNotMutateParent(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "C", MapEnv{}, WithMetadata(unilog.Metadata{"a": unilog.StringValue("1")}))
	child := a.With(unilog.Metadata{"req": unilog.StringValue("r-1")})

	child.Log(unilog.LevelInfo, "child", nil, unilog.Source{})
	a.Log(unilog.LevelInfo, "parent", nil, unilog.Source{})

	got := sink.all()
	if got[0].Line != "child -- a=1 req=r-1" {
		t.Fatalf("child line: %q", got[0].Line)
	}
	if got[1].Line != "parent -- a=1" {
		t.Fatalf("parent line: %q", got[1].Line)
	}
}

func TestMinLevel(t *testing.T) {
	t.Parallel()

	a, _, _ := newBound(t, "L", MapEnv{})
	if a.MinLevel() != unilog.LevelInfo {
		t.Fatalf("default min level: %v", a.MinLevel())
	}
	a.SetMinLevel(unilog.LevelTrace)
	if a.MinLevel() != unilog.LevelTrace {
		t.Fatalf("min level not updated: %v", a.MinLevel())
	}
}

func TestNewPanicsOnEmptyLabel(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New("", WithAppID("x"))
}

func TestDefaultFacilityRegistration(t *testing.T) {
	sink := &recordSink{}
	RegisterDefaultFacility(boundFacility(sink, nil))
	defer RegisterDefaultFacility(nil)

	a := New("REG", WithEnv(MapEnv{}), WithAppID("x"))
	if !a.Bound() {
		t.Fatal("default facility was not used")
	}
	a.Log(unilog.LevelInfo, "via default", nil, unilog.Source{})
	if got := sink.all(); len(got) != 1 {
		t.Fatalf("expected 1 emit, got %d", len(got))
	}
}

func TestConcurrentLogAndSetMetadata(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "RACE", MapEnv{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				a.SetMetadata(fmt.Sprintf("k%d", i), unilog.Int64Value(int64(j)))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				a.Log(unilog.LevelInfo, "tick", unilog.Metadata{"j": unilog.Int64Value(int64(j))}, unilog.Source{})
			}
		}()
	}
	wg.Wait()
	if got := len(sink.all()); got != 8*50 {
		t.Fatalf("expected %d emits, got %d", 8*50, got)
	}
}

func TestZeroValuesNeverBound(t *testing.T) {
	t.Parallel()

	a, sink, _ := newBound(t, "Z", MapEnv{}, WithMetadata(unilog.Metadata{
		"a":    unilog.StringValue("1"),
		"gone": {},
	}))
	a.Log(unilog.LevelInfo, "m", nil, unilog.Source{})

	a.ReplaceMetadata(unilog.Metadata{"gone": {}, "b": unilog.StringValue("2")})
	if _, ok := a.Metadata("gone"); ok {
		t.Fatal("ReplaceMetadata kept a zero value")
	}
	a.Log(unilog.LevelInfo, "m", nil, unilog.Source{})

	child := a.With(unilog.Metadata{"b": {}, "c": unilog.StringValue("3")}).(*Adapter)
	child.Log(unilog.LevelInfo, "m", nil, unilog.Source{})
	if _, ok := child.Metadata("b"); ok {
		t.Fatal("With kept a zero value")
	}
	if v, ok := a.Metadata("b"); !ok || v.String() != "2" {
		t.Fatal("With mutated the parent")
	}

	// a zero per-call value hides the bound key for that call only
	a.Log(unilog.LevelInfo, "m", unilog.Metadata{"b": {}}, unilog.Source{})

	want := []string{"m -- a=1", "m -- b=2", "m -- c=3", "m"}
	got := sink.all()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Line != w {
			t.Fatalf("line %d = %q, want %q", i, got[i].Line, w)
		}
	}
}

func TestDefaultAppID(t *testing.T) {
	t.Setenv(AppIDEnv, "com.x")
	if got := DefaultAppID(); got != "com.x" {
		t.Fatalf("DefaultAppID() = %q, want env value", got)
	}
	if a := New("APPID", WithFacility(nil), WithFallback(&recordFallback{}), WithEnv(MapEnv{})); a.Subsystem() != "com.x" {
		t.Fatalf("New resolved subsystem %q", a.Subsystem())
	}

	t.Setenv(AppIDEnv, "")
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("no executable path: %v", err)
	}
	if got := DefaultAppID(); got != filepath.Base(exe) {
		t.Fatalf("DefaultAppID() = %q, want %q", got, filepath.Base(exe))
	}
}

func TestNewPanicsWithoutAppID(t *testing.T) {
	old := resolveAppID
	resolveAppID = func() string { return "" }
	defer func() { resolveAppID = old }()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, AppIDEnv) {
			t.Fatalf("panic should name %s: %v", AppIDEnv, r)
		}
	}()
	New("NOAPP", WithFacility(nil), WithEnv(MapEnv{}))
}
