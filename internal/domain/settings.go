package domain

import "strconv"

const (
	SettingAutoSave          = "autoSave"
	SettingDevConsoleEnabled = "devConsoleEnabled"
	SettingUIEventsEnabled   = "uiEventsEnabled"
)

type SettingsSnapshot struct {
	AutoSave          bool `json:"autoSave"`
	DevConsoleEnabled bool `json:"devConsoleEnabled"`
	UIEventsEnabled   bool `json:"uiEventsEnabled"`
}

func DefaultSettings() SettingsSnapshot {
	return SettingsSnapshot{
		AutoSave:          true,
		DevConsoleEnabled: false,
		UIEventsEnabled:   true,
	}
}

// SettingChange is the payload of a setting-changed event.
type SettingChange struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Apply patches the field named by key. It returns false for unknown keys
// and for values that are not booleans, leaving s untouched.
func (s *SettingsSnapshot) Apply(key string, value any) bool {
	b, ok := SettingBool(value)
	if !ok {
		return false
	}
	switch key {
	case SettingAutoSave:
		s.AutoSave = b
	case SettingDevConsoleEnabled:
		s.DevConsoleEnabled = b
	case SettingUIEventsEnabled:
		s.UIEventsEnabled = b
	default:
		return false
	}
	return true
}

func IsKnownSetting(key string) bool {
	switch key {
	case SettingAutoSave, SettingDevConsoleEnabled, SettingUIEventsEnabled:
		return true
	}
	return false
}

// SettingBool accepts booleans and their string spellings.
func SettingBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}
