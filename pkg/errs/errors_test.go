package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if Wrap(KindLoad, "whatever", nil) != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(errors.New("plain")) != "" {
		t.Error("plain errors have no kind")
	}
	if KindOf(New(KindExtract, "boom")) != KindExtract {
		t.Error("expected extract kind")
	}

	// Outermost kind wins through a chain of wraps.
	inner := New(KindTransform, "empty table")
	outer := Wrap(KindPipeline, "transformation stage failed", inner)
	if KindOf(outer) != KindPipeline {
		t.Errorf("expected pipeline kind, got %q", KindOf(outer))
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindLoad, "store connection failed", cause)

	if !errors.Is(err, cause) {
		t.Error("cause must survive wrapping")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("message should include the cause: %v", err)
	}
	if !strings.Contains(err.Error(), "load:") {
		t.Errorf("message should carry the kind tag: %v", err)
	}
}

func TestVerboseFormatIncludesLocation(t *testing.T) {
	err := Wrap(KindExtract, "parsing dataset file", errors.New("bad csv"))

	verbose := fmt.Sprintf("%+v", err)
	if !strings.Contains(verbose, "errors_test.go") {
		t.Errorf("%%+v should include the originating location, got:\n%s", verbose)
	}
}
