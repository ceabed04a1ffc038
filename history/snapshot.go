package history

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultQueryHistoryPath returns the default --history file location
// under the XDG data home, used when the flag is not given.
func DefaultQueryHistoryPath() (string, error) {
	return xdg.DataFile(filepath.Join("skimmer", "history"))
}

// DefaultCmdHistoryPath returns the default --cmd-history file location.
func DefaultCmdHistoryPath() (string, error) {
	return xdg.DataFile(filepath.Join("skimmer", "cmd_history"))
}

// Snapshot is a small extra bit of session state alongside the plain-text
// history rings: the last query, last cmd-query, and last pre-select
// pattern used, so a future run can offer them as defaults. The history
// rings remain the source of truth for history navigation; the snapshot is
// a structured convenience layered on top.
type Snapshot struct {
	LastQuery        string `yaml:"last_query"`
	LastCmdQuery     string `yaml:"last_cmd_query"`
	LastPreSelectPat string `yaml:"last_pre_select_pattern"`
}

// DefaultSnapshotPath returns the session snapshot file's default location
// under the XDG config home.
func DefaultSnapshotPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("skimmer", "session.yaml"))
}

// LoadSnapshot reads the snapshot file, returning a zero Snapshot if it
// does not exist yet.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Snapshot{}, nil
	} else if err != nil {
		return Snapshot{}, errors.Wrapf(err, "history: read snapshot %q", path)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrapf(err, "history: unmarshal snapshot %q", path)
	}
	return s, nil
}

// SaveSnapshot writes the snapshot file, creating its directory if needed.
func SaveSnapshot(path string, s Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "history: mkdir %q", dir)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrapf(err, "history: marshal snapshot")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "history: write snapshot %q", path)
	}
	return nil
}
