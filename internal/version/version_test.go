package version

import (
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	origVersion := Version
	origCommitsAhead := CommitsAhead
	origCommitHash := CommitHash
	defer func() {
		Version = origVersion
		CommitsAhead = origCommitsAhead
		CommitHash = origCommitHash
	}()

	Version = ""
	CommitsAhead = ""
	CommitHash = "abc1234"
	if got := GetVersionString(); !strings.HasPrefix(got, "devel") {
		t.Errorf("unexpected version string: %s", got)
	}

	Version = "1.2.3"
	if got := GetVersionString(); got != "1.2.3 (abc1234)" {
		t.Errorf("unexpected version string: %s", got)
	}

	CommitsAhead = "5"
	if got := GetVersionString(); got != "1.2.3+5 (abc1234)" {
		t.Errorf("unexpected version string: %s", got)
	}
}
