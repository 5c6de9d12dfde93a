package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc123",
		BuildDate: "2026-01-02",
		GoVersion: "go1.25.0",
		Platform:  "linux/amd64",
	}

	s := info.String()
	assert.True(t, strings.HasPrefix(s, "cookie v1.2.3"))
	assert.Contains(t, s, "abc123")
	assert.Contains(t, s, "linux/amd64")
}

func TestDepVersion_Unknown(t *testing.T) {
	assert.Empty(t, depVersion("example.com/not-a-dependency"))
}
