package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUsesLinkerValues(t *testing.T) {
	defer func(v, c, b string) { Version, GitCommit, BuildTime = v, c, b }(Version, GitCommit, BuildTime)

	Version, GitCommit, BuildTime = "1.2.3", "abc1234", "2025-06-01T00:00:00Z"

	info := Get()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc1234", info.Commit)
	assert.Equal(t, "2025-06-01T00:00:00Z", info.BuildTime)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "0.3.0", Commit: "abc1234", BuildTime: "2025-06-01"}
	assert.Equal(t, "gopurlin v0.3.0 (commit abc1234, built 2025-06-01)", info.String())

	info.Modified = true
	assert.Equal(t, "gopurlin v0.3.0 (commit abc1234-dirty, built 2025-06-01)", info.String())
}
