package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port"
)

const settingsFile = "settings.json"

// SettingsFile persists user settings as a flat JSON object. Keys missing
// from the file keep their defaults.
type SettingsFile struct {
	mu   sync.Mutex
	path string
}

func NewSettingsFile(dataDir string) *SettingsFile {
	return &SettingsFile{path: filepath.Join(dataDir, settingsFile)}
}

func (f *SettingsFile) Path() string {
	return f.path
}

func (f *SettingsFile) Load(_ context.Context) (domain.SettingsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := domain.DefaultSettings()
	raw, err := f.read()
	if err != nil {
		return snapshot, err
	}
	for key, value := range raw {
		snapshot.Apply(key, value)
	}
	return snapshot, nil
}

func (f *SettingsFile) Set(_ context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := f.read()
	if err != nil {
		return err
	}
	raw[key] = value
	return writeJSON(f.path, raw)
}

func (f *SettingsFile) read() (map[string]any, error) {
	raw := make(map[string]any)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return raw, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return raw, nil
}

var _ port.ConfigStore = (*SettingsFile)(nil)
