package r

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"rboot/errors"
	"rboot/system/command"
)

// MinimumVersion is advisory only: an older installation gets a warning
// during bootstrap, never a hard failure.
const MinimumVersion = "4.1.0"

var versionPat = regexp.MustCompile(`R version (\d+\.\d+\.\d+)`)

type Interpreter struct {
	Path        string
	RscriptPath string
}

// Find locates the R runtime on the search path. Absence is a terminal
// condition for the bootstrapper.
var Find = func() (*Interpreter, error) {
	rPath, err := command.LookPath("R")
	if err != nil {
		return nil, &errors.MissingRuntimeError{Minimum: MinimumVersion}
	}

	rscriptPath, err := command.LookPath("Rscript")
	if err != nil {
		return nil, &errors.MissingRuntimeError{Minimum: MinimumVersion}
	}

	slog.Debug("Found R at " + rPath)
	slog.Debug("Found Rscript at " + rscriptPath)

	return &Interpreter{
		Path:        rPath,
		RscriptPath: rscriptPath,
	}, nil
}

// Version extracts the version string from `R --version` output.
func (i *Interpreter) Version() (string, error) {
	out, err := command.Output(i.Path, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to probe R version: %w", err)
	}

	m := versionPat.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("could not parse R version from '%s'", firstLine(out))
	}

	return m[1], nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// OlderThan reports whether version a sorts numerically before version b.
// Malformed components compare as zero.
func OlderThan(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			return av < bv
		}
	}

	return false
}
