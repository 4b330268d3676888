package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "classify <path>",
		Short: "Classify one image or video file",
		Long: "Runs the same pipeline as the web UI for a single file: store it, " +
			"derive a thumbnail and metadata, classify it and, when autoSave is on, " +
			"record it in the history.",
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolP("verbose", "v", false, "Print pipeline events to stderr")

	RootCmd.AddCommand(cmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if verbose {
		stderr := cmd.ErrOrStderr()
		sub := a.bus.Subscribe(service.TopicUILog, func(e service.Event) {
			_, _ = fmt.Fprintf(stderr, "%s %s: %s\n", e.Log.Icon(), e.Log.Source, e.Log.Message)
		})
		defer sub.Unsubscribe()
	}
	a.healthCheck()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := a.pipeline.SelectFromDrop(ctx, path); err != nil {
		return err
	}

	result, err := a.pipeline.StartClassification(ctx)
	if err != nil {
		return err
	}

	if err := printResult(cmd, format, result); err != nil {
		return err
	}
	if result.Failed() {
		return fmt.Errorf("classification failed: %s", result.Err)
	}
	return nil
}

func printResult(cmd *cobra.Command, format string, result domain.ClassificationResult) error {
	out := cmd.OutOrStdout()
	if format == "json" {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	_, _ = fmt.Fprintln(out, result.Display())
	if result.Failed() {
		return nil
	}
	_, _ = fmt.Fprintf(out, "kind: %s\n", result.MediaKind)
	if result.Resolution != "" {
		_, _ = fmt.Fprintf(out, "resolution: %s\n", result.Resolution)
	}
	if result.DurationSeconds != nil {
		_, _ = fmt.Fprintf(out, "duration: %s\n", domain.FormatDuration(*result.DurationSeconds))
	}
	return nil
}
