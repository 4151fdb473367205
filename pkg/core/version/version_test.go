package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	if !semverRegex.MatchString(Analyzer) {
		t.Errorf("Analyzer version %q does not match semver format (x.y.z)", Analyzer)
	}
	if Language != "IPPcode24" {
		t.Errorf("Language = %q, want IPPcode24", Language)
	}
}

func TestInfo(t *testing.T) {
	info := Info("ippparse")

	for _, want := range []string{"ippparse v" + Analyzer, "(IPPcode24)", "Git Commit: " + GitCommit, "Go Version:"} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() = %q, missing %q", info, want)
		}
	}
	if !strings.HasSuffix(info, "\n") {
		t.Error("Info() should end with a newline")
	}
}
