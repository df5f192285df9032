package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setVersion(t *testing.T, version, buildDate, gitCommit string) {
	t.Helper()

	origVersion, origBuildDate, origGitCommit := Version, BuildDate, GitCommit
	t.Cleanup(func() {
		Version, BuildDate, GitCommit = origVersion, origBuildDate, origGitCommit
	})
	Version, BuildDate, GitCommit = version, buildDate, gitCommit
}

func TestGetVersion(t *testing.T) {
	setVersion(t, "v1.2.3", "unknown", "unknown")
	assert.Equal(t, "v1.2.3", GetVersion())
}

func TestGetFullVersion(t *testing.T) {
	platform := runtime.GOOS + "/" + runtime.GOARCH

	tests := []struct {
		name      string
		version   string
		buildDate string
		gitCommit string
		want      string
	}{
		{
			name:      "default values",
			version:   "dev",
			buildDate: "unknown",
			gitCommit: "unknown",
			want:      "dev (build: unknown, commit: unknown, " + platform + ")",
		},
		{
			name:      "release",
			version:   "1.0.0",
			buildDate: "2026-10-19T10:30:00Z",
			gitCommit: "abc123d",
			want:      "1.0.0 (build: 2026-10-19T10:30:00Z, commit: abc123d, " + platform + ")",
		},
		{
			name: "empty values",
			want: " (build: , commit: , " + platform + ")",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setVersion(t, tt.version, tt.buildDate, tt.gitCommit)
			assert.Equal(t, tt.want, GetFullVersion())
		})
	}
}

func TestPlatform(t *testing.T) {
	t.Parallel()

	p := Platform()
	assert.True(t, strings.HasPrefix(p, runtime.GOOS+"/"))
	assert.True(t, strings.HasSuffix(p, "/"+runtime.GOARCH))
}

func TestDefaultValues(t *testing.T) {
	// ldflags may override these, so only require that something is set.
	if Version == "" && BuildDate == "" && GitCommit == "" {
		t.Error("At least one version variable should have a default value")
	}
}
