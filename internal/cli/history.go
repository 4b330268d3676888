package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/anicla/anicla/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved classifications, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 for all)")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.entries.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		if entries == nil {
			entries = []*domain.MediaEntry{}
		}
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No saved classifications.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DATE\tNAME\tKIND\tRESULT\tRESOLUTION\tSIZE")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Name, e.MediaType, e.Result, e.Resolution, domain.FormatSize(e.SizeBytes))
	}
	return tw.Flush()
}
