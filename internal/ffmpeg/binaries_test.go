package ffmpeg

import (
	"strings"
	"testing"
)

func TestResolveEnvOverride(t *testing.T) {
	t.Setenv("SUBSYNC_FAKETOOL_PATH", "/opt/tools/faketool")

	got, err := resolve("faketool", "SUBSYNC_FAKETOOL_PATH")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/opt/tools/faketool" {
		t.Errorf("path = %q, want env override", got)
	}
}

func TestResolveCachesResult(t *testing.T) {
	t.Setenv("SUBSYNC_CACHED_PATH", "/opt/tools/first")
	if _, err := resolve("cachedtool", "SUBSYNC_CACHED_PATH"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	t.Setenv("SUBSYNC_CACHED_PATH", "/opt/tools/second")
	got, err := resolve("cachedtool", "SUBSYNC_CACHED_PATH")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "/opt/tools/first" {
		t.Errorf("path = %q, want cached first resolution", got)
	}
}

func TestResolveMissingBinary(t *testing.T) {
	_, err := resolve("definitely-not-a-real-binary-name", "SUBSYNC_UNSET_PATH")
	if err == nil {
		t.Fatal("expected error for unresolvable binary")
	}
	if !strings.Contains(err.Error(), "SUBSYNC_UNSET_PATH") {
		t.Errorf("error should name the override variable: %v", err)
	}
}
