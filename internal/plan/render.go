package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for the rendered report.
type Theme struct {
	Heading lipgloss.Color
	Value   lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var defaultTheme = Theme{
	Heading: lipgloss.Color("#5FAFD7"), // light blue
	Value:   lipgloss.Color("#00D787"), // green
	Warning: lipgloss.Color("#FFAF00"), // amber
	Error:   lipgloss.Color("#FF005F"), // red
}

func (t Theme) headingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Heading).Bold(true)
}

func (t Theme) valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Value)
}

func (t Theme) warningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

// Render formats the report. With styled set the report is colored for a
// terminal; otherwise it is plain text suitable for piping into a file.
func Render(r Result, styled bool) string {
	plain := func(s ...string) string { return strings.Join(s, "") }
	heading, value, warning, fail := plain, plain, plain, plain
	if styled {
		t := defaultTheme
		heading = t.headingStyle().Render
		value = t.valueStyle().Render
		warning = t.warningStyle().Render
		fail = t.errorStyle().Render
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", heading(fmt.Sprintf("Counting plan: %s (%.2f keV, %.2f%%)",
		r.Isotope, r.GammaKeV, r.BranchPct)))

	row := func(label, val string) {
		fmt.Fprintf(&b, "  %-22s %s\n", label, value(val))
	}
	row("Half-life:", fmt.Sprintf("%.6g s  (%.4g h)", r.HalfLife, r.HalfLife/3600))
	row("Atoms at count start:", fmt.Sprintf("%.6g", r.Atoms))
	row("Starting activity:", fmt.Sprintf("%.6g Bq", r.InitialActivity))
	row("Specific activity:", fmt.Sprintf("%.6g Bq/g", r.SpecificActivity))
	row("Detector distance:", fmt.Sprintf("%g cm", r.Distance))
	row("Absolute efficiency:", fmt.Sprintf("%.6g", r.Efficiency))
	row("Dead-time loss:", fmt.Sprintf("%.3g %%", r.DeadLossPct))

	if r.HotFoil {
		fmt.Fprintf(&b, "  %s\n", warning(
			"warning: foil still exceeds 1% dead-time loss at the maximum distance; let it cool before counting"))
	}

	if r.Unachievable {
		fmt.Fprintf(&b, "  %s\n", fail(
			"target statistics unachievable: no background rate to split against; count as long as practical"))
		return b.String()
	}

	row("Average count rate:", fmt.Sprintf("%.6g counts/s", r.AvgRate))
	row("Foil count time:", fmt.Sprintf("%.0f s  (%.2f h)", r.FoilSeconds, r.FoilSeconds/3600))
	row("Background count time:", fmt.Sprintf("%.0f s  (%.2f h)", r.BackgroundSeconds, r.BackgroundSeconds/3600))
	return b.String()
}
