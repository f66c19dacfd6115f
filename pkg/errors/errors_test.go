package errors

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMotionErrorString(t *testing.T) {
	err := MissingTarget("animation.Handle.tick", "", "ripple")
	got := err.Error()
	want := `animation.Handle.tick [missing-target]: render target not found: "ripple"`
	if got != want {
		t.Errorf("MotionError.Error() = %q, want %q", got, want)
	}
}

func TestMotionErrorWithWidget(t *testing.T) {
	err := IllegalTransition("widgets.ProgressCard.Start", "w-1", "start", "running")
	got := err.Error()
	want := "widget=w-1"
	if !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
	if !Is(err, ErrIllegalTransition) {
		t.Error("expected error chain to contain ErrIllegalTransition")
	}
	var motionErr *MotionError
	if !As(err, &motionErr) || motionErr.Kind != KindIllegalTransition {
		t.Errorf("As() = %v, kind %v", motionErr, motionErr.Kind)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindMissingTarget, "missing-target"},
		{KindIllegalTransition, "illegal-transition"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
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
		Op:        "reactive.Cell.notify",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in reactive.Cell.notify: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *MotionError
	handler := &testHandler{
		onError: func(err *MotionError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(MissingTarget("test.op", "", "knob"))

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ran := false
	Guard("test.guard", func() { panic("intentional test panic") })
	ran = true

	if !ran {
		t.Fatal("panic escaped Guard")
	}
	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.guard" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.guard")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	h := &LogHandler{Logger: logger}

	h.HandleError(MissingTarget("test.op", "", "badge"))
	if buf.Len() != 0 {
		t.Errorf("missing target should log at debug, got %q", buf.String())
	}

	h.HandlePanic(&PanicError{Op: "test.op", Value: "boom"})
	if !strings.Contains(buf.String(), "motion panic") {
		t.Errorf("expected panic record, got %q", buf.String())
	}
}

type testHandler struct {
	onError func(*MotionError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *MotionError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
