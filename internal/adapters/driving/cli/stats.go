package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/teampulse/internal/core/ports/driving"
)

var (
	statsDays int
	statsJSON bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rolling rating statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "window length in days")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	st, err := buildStack(cmd.Context())
	if err != nil {
		return err
	}
	defer st.close()

	report, err := st.query.Stats(cmd.Context(), statsDays)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputStatsTable(cmd, report)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

func outputStatsTable(cmd *cobra.Command, report driving.Report) error {
	cmd.Println(headerStyle.Render(fmt.Sprintf("Culture ratings %s to %s", report.From, report.To)))
	cmd.Println()

	for _, day := range report.PerDay {
		line := fmt.Sprintf("  %s  %2d ratings  avg %.2f", day.Day, day.Count, day.Average)
		if day.Count == 0 {
			cmd.Println(dimStyle.Render(line))
			continue
		}
		cmd.Println(line)
	}

	cmd.Println()
	cmd.Println(totalStyle.Render(fmt.Sprintf("  window: %d ratings, average %.2f", report.Count, report.Average)))

	if len(report.ByRole) > 0 {
		cmd.Println()
		cmd.Println(headerStyle.Render("By role:"))
		for _, role := range report.ByRole {
			cmd.Printf("  %-16s %2d ratings  avg %.2f\n", role.Role, role.Count, role.Average)
		}
	}
	if len(report.SubmittedToday) > 0 {
		cmd.Println()
		cmd.Printf("Submitted today: %v\n", report.SubmittedToday)
	}
	return nil
}
