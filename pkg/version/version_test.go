package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailed(t *testing.T) {
	orig := [3]string{version, gitCommit, buildDate}
	t.Cleanup(func() { version, gitCommit, buildDate = orig[0], orig[1], orig[2] })

	version, gitCommit, buildDate = "1.2.3", "", ""
	assert.Equal(t, "1.2.3", Detailed())
	assert.Equal(t, "1.2.3", GetVersion())

	gitCommit, buildDate = "abc1234", "2024-05-01"
	assert.Equal(t, "1.2.3 (abc1234) built 2024-05-01", Detailed())
	assert.Equal(t, "abc1234", GetGitCommit())
	assert.Equal(t, "2024-05-01", GetBuildDate())
}
