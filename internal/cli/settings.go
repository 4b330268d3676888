package cli

import (
	"fmt"

	"github.com/anicla/anicla/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSettingsGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		RunE:  runSettingsSet,
	})

	RootCmd.AddCommand(cmd)
}

type settingValue struct {
	key   string
	value bool
}

func settingValues(s domain.SettingsSnapshot) []settingValue {
	return []settingValue{
		{domain.SettingAutoSave, s.AutoSave},
		{domain.SettingDevConsoleEnabled, s.DevConsoleEnabled},
		{domain.SettingUIEventsEnabled, s.UIEventsEnabled},
	}
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	snapshot := a.settings.Snapshot()
	if len(args) == 1 {
		value, ok := lookupSetting(snapshot, args[0])
		if !ok {
			return fmt.Errorf("unknown setting %q", args[0])
		}
		_, _ = fmt.Fprintln(out, value)
		return nil
	}
	for _, kv := range settingValues(snapshot) {
		_, _ = fmt.Fprintf(out, "%s=%t\n", kv.key, kv.value)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.settingsSvc.Set(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	value, _ := lookupSetting(a.settings.Snapshot(), args[0])
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", args[0], value)
	return nil
}

func lookupSetting(s domain.SettingsSnapshot, key string) (bool, bool) {
	for _, kv := range settingValues(s) {
		if kv.key == key {
			return kv.value, true
		}
	}
	return false, false
}
