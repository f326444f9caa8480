package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"teamdash/adapters/chart"
	"teamdash/adapters/excel"
	"teamdash/domain/team"
	"teamdash/internal/logger"
	"teamdash/internal/testkit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "teamctl",
		Short:         "Team dashboard roster tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newSummaryCmd(),
		newChartCmd(),
	)
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	var seed int64
	var members int

	cmd := &cobra.Command{
		Use:   "generate [output.xlsx]",
		Short: "Write a synthetic roster workbook",
		Long: `Write a deterministic synthetic roster to an .xlsx workbook that the
dashboard can load through ROSTER_FILE.

Example: teamctl generate roster.xlsx --members 20 --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persons := testkit.NewRosterGenerator(testkit.RosterGeneratorConfig{
				MemberCount: members,
				Seed:        seed,
				Now:         time.Now().UTC(),
			}).Generate()

			if err := excel.WriteRoster(args[0], persons); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d members to %s\n", len(persons), args[0])
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic output")
	cmd.Flags().IntVar(&members, "members", 12, "Number of members to generate")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [roster.xlsx|roster.csv]",
		Short: "Print the dashboard aggregates for a roster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			persons, err := excel.NewRosterReader(args[0], logger.NewNop()).Read()
			if err != nil {
				return err
			}
			stats, err := team.CompensationStats(persons)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), team.Aggregate(persons), stats)
		},
	}
}

func newChartCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "chart [roster file] [output.png]",
		Short: "Render the members-by-title chart to a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			persons, err := excel.NewRosterReader(args[0], logger.NewNop()).Read()
			if err != nil {
				return err
			}
			renderer, err := chart.NewRenderer(width, height, logger.NewNop())
			if err != nil {
				return err
			}
			png, err := renderer.RenderSummaryPNG(team.Aggregate(persons))
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], png, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "Chart width in pixels")
	cmd.Flags().IntVar(&height, "height", chart.DefaultHeight, "Chart height in pixels")
	return cmd
}

func printSummary(out io.Writer, summary team.Summary, stats team.CostStats) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, widget := range summary.Widgets() {
		fmt.Fprintf(w, "%s\t%s\n", widget.Label, widget.Value)
	}
	fmt.Fprintf(w, "Median Compensation\t%s\n", team.FormatCurrency(int64(stats.Median)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Title\tMembers")
	for _, bucket := range summary.Histogram {
		fmt.Fprintf(w, "%s\t%d\n", bucket.Title, bucket.Count)
	}
	return w.Flush()
}
