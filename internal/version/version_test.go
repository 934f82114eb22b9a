package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if got := String(); !strings.HasPrefix(got, "frame version dev (") {
		t.Errorf("String() = %q", got)
	}
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "no build info",
			info: Info{Version: "dev", Commit: "unknown", Date: "unknown", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "frame version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "long commit",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2026-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "frame version 1.2.0 (commit: 01234567, built: 2026-01-02T03:04:05Z, go1.25.1, linux/amd64)",
		},
		{
			name: "short dirty commit",
			info: Info{Version: "1.2.0", Commit: "abc", Date: "2026-01-02", Modified: true, GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "frame version 1.2.0 (commit: abc-dirty, built: 2026-01-02, go1.25.1, linux/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyBuildSettings(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "fedcba9876543210"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	info := Info{Commit: "unknown", Date: "unknown"}
	applyBuildSettings(&info, settings)
	if info.Commit != "fedcba9876543210" || info.Date != "2026-03-04T05:06:07Z" || !info.Modified {
		t.Errorf("applyBuildSettings() = %+v", info)
	}

	injected := Info{Commit: "0123456789abcdef", Date: "2026-01-02T03:04:05Z"}
	applyBuildSettings(&injected, settings)
	if injected.Commit != "0123456789abcdef" || injected.Date != "2026-01-02T03:04:05Z" {
		t.Errorf("ldflags values were overwritten: %+v", injected)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version || info.Contrast != ContrastAlgorithm || info.GoVersion == "" {
		t.Errorf("GetInfo() = %+v", info)
	}
}
