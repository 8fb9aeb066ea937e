// Package poetry implements domain.PackageQuerier on top of the poetry and
// pip command-line tools. All invocations are synchronous and inherit the
// caller's context; nothing is cached between calls.
package poetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depstatus/domain"
)

// Querier queries a Poetry-managed project via its CLI tools.
type Querier struct {
	poetryBin string
	pipBin    string
	dir       string
}

var _ domain.PackageQuerier = (*Querier)(nil)

// NewQuerier creates a querier running poetryBin and pipBin inside dir.
func NewQuerier(poetryBin, pipBin, dir string) *Querier {
	return &Querier{
		poetryBin: poetryBin,
		pipBin:    pipBin,
		dir:       dir,
	}
}

// outdatedEntry mirrors one element of `poetry show --outdated --json`.
type outdatedEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Latest  string `json:"latest"`
}

// installedEntry mirrors one element of `pip list --format json`.
type installedEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// QueryOutdated lists the packages with a newer version available, in the
// order poetry emits them. Poetry may exit non-zero and still print usable
// JSON, so the exit error only matters when stdout is empty.
func (q *Querier) QueryOutdated(ctx context.Context) ([]domain.DependencyStatus, error) {
	out, err := q.run(ctx, q.poetryBin, "show", "--outdated", "--json")
	if err != nil && len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf(
			"%w: running %s show --outdated: %v",
			domain.ErrExternalTool, q.poetryBin, err,
		)
	}

	deps, parseErr := parseOutdated(out)
	if parseErr != nil {
		return nil, fmt.Errorf(
			"%w: parsing %s output: %v",
			domain.ErrExternalTool, q.poetryBin, parseErr,
		)
	}

	return deps, nil
}

// InstalledPackages returns name -> version for every installed package.
func (q *Querier) InstalledPackages(ctx context.Context) (map[string]string, error) {
	out, err := q.run(ctx, q.pipBin, "list", "--format", "json")
	if err != nil {
		return nil, fmt.Errorf(
			"%w: running %s list: %v",
			domain.ErrExternalTool, q.pipBin, err,
		)
	}

	installed, parseErr := parseInstalled(out)
	if parseErr != nil {
		return nil, fmt.Errorf(
			"%w: parsing %s output: %v",
			domain.ErrExternalTool, q.pipBin, parseErr,
		)
	}

	return installed, nil
}

// CheckCompatibility dry-runs `poetry add pkg@version` and reports whether
// the resolver accepted it. A non-zero exit means incompatible, not broken.
func (q *Querier) CheckCompatibility(ctx context.Context, pkg, version string) (bool, error) {
	spec := fmt.Sprintf("%s@%s", pkg, version)

	_, err := q.run(ctx, q.poetryBin, "add", spec, "--dry-run")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debugf("[poetry] dry-run add %s exited %d", spec, exitErr.ExitCode())
			return false, nil
		}
		return false, fmt.Errorf(
			"%w: running %s add --dry-run: %v",
			domain.ErrExternalTool, q.poetryBin, err,
		)
	}

	return true, nil
}

// run executes a tool inside the project directory and returns its stdout.
func (q *Querier) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = q.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stderr.Len() > 0 {
		logger.Debugf("[%s] stderr: %s", name, bytes.TrimSpace(stderr.Bytes()))
	}

	return stdout.Bytes(), err
}

// parseOutdated decodes the JSON array emitted by poetry, preserving order.
func parseOutdated(data []byte) ([]domain.DependencyStatus, error) {
	var entries []outdatedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	deps := make([]domain.DependencyStatus, 0, len(entries))
	for _, e := range entries {
		deps = append(deps, domain.DependencyStatus{
			Name:       e.Name,
			CurrentVer: e.Version,
			LatestVer:  e.Latest,
		})
	}

	return deps, nil
}

// parseInstalled decodes the JSON array emitted by pip list.
func parseInstalled(data []byte) (map[string]string, error) {
	var entries []installedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	installed := make(map[string]string, len(entries))
	for _, e := range entries {
		installed[e.Name] = e.Version
	}

	return installed, nil
}

// pyprojectFile is the subset of pyproject.toml needed for detection.
type pyprojectFile struct {
	Tool struct {
		Poetry map[string]interface{} `toml:"poetry"`
	} `toml:"tool"`
}

// DetectProject reports whether dir holds a Poetry-managed project, i.e. a
// pyproject.toml with a [tool.poetry] section.
func DetectProject(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return false
	}

	var pyproject pyprojectFile
	if decodeErr := toml.Unmarshal(data, &pyproject); decodeErr != nil {
		logger.Debugf("[poetry] failed to parse pyproject.toml: %v", decodeErr)
		return false
	}

	return pyproject.Tool.Poetry != nil
}
