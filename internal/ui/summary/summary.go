package summary

import (
	"fmt"
	"io"
	"strings"

	sessiondto "chatreport/internal/modules/session/dto"
	"chatreport/internal/ui/theme"
)

// Render prints the success summary for a generated report.
func Render(w io.Writer, out sessiondto.GenerateOutput) error {
	styles := theme.For(w)

	status := styles.OK
	if strings.HasPrefix(out.Status, "Problematic") {
		status = styles.Hot
	}

	lines := []string{
		styles.Title.Render("Report generated successfully:"),
		"  - " + out.TextPath,
		"  - " + out.HTMLPath,
	}
	if out.SummaryPath != "" {
		lines = append(lines, "  - "+out.SummaryPath)
	}
	lines = append(lines,
		fmt.Sprintf("%s %s  %s %s",
			styles.Muted.Render("Error rate:"), out.ErrorRatePercent,
			styles.Muted.Render("Status:"), status.Render(out.Status)),
	)
	if out.Health != "" {
		lines = append(lines, fmt.Sprintf("%s %d/100 (%s)", styles.Muted.Render("Health:"), out.HealthScore, out.Health))
	}
	if out.RunID != "" {
		lines = append(lines, styles.Muted.Render("run "+out.RunID))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
