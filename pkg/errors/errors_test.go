package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSlideErrorString(t *testing.T) {
	err := New("slide.Resolve", KindConfig, "threshold out of range: %v", 1.5)
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	if !strings.Contains(got, "slide.Resolve") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "config") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestSlideErrorWithChannel(t *testing.T) {
	err := &SlideError{
		Op:      "platform.Haptics.Impact",
		Kind:    KindPlatform,
		Channel: "slide/haptics",
		Err:     errors.New("no backend registered"),
	}
	got := err.Error()
	want := "channel=slide/haptics"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestSlideErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &SlideError{Op: "op", Kind: KindConfig, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindPlatform, "platform"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "slide.Engine.emit",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in slide.Engine.emit: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	errors []*SlideError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *SlideError) { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(&SlideError{Op: "op", Kind: KindPlatform, Err: errors.New("boom")})

	if len(rec.errors) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(rec.errors))
	}
	if rec.errors[0].Timestamp.IsZero() {
		t.Error("expected Report to fill in a timestamp")
	}
}

func TestReportNilIsNoOp(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)

	if len(rec.errors) != 0 || len(rec.panics) != 0 {
		t.Error("expected nil reports to be dropped")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(rec.panics) != 1 {
		t.Fatalf("expected 1 recovered panic, got %d", len(rec.panics))
	}
	if rec.panics[0].Op != "test.op" {
		t.Errorf("panic op = %q, want %q", rec.panics[0].Op, "test.op")
	}
	if rec.panics[0].Value != "kaboom" {
		t.Errorf("panic value = %v, want %q", rec.panics[0].Value, "kaboom")
	}
	if rec.panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
