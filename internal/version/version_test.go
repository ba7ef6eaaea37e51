package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestBuildInfoString(t *testing.T) {
	s := BuildInfo{
		Version:   "1.2.3",
		BuildDate: "2026-01-01",
		GitCommit: "abc1234",
		GoVersion: "go1.24",
	}.String()

	assert.Contains(t, s, "scour 1.2.3")
	assert.Contains(t, s, "build date: 2026-01-01")
	assert.Contains(t, s, "git commit: abc1234")
	assert.Contains(t, s, "go version: go1.24")
}
