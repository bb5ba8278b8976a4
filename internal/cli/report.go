package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/rsvp-tracker/internal/domain"
	"github.com/phrazzld/rsvp-tracker/internal/service"
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	statusStyles = map[domain.RsvpStatus]lipgloss.Style{
		domain.RsvpStatusYes:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		domain.RsvpStatusNo:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		domain.RsvpStatusMaybe: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	}
)

const timestampLayout = "2006-01-02 15:04:05"

func renderTitle(s string) string {
	return titleStyle.Render(s)
}

func renderHeading(s string) string {
	return headerStyle.Render(s)
}

func renderStatus(s domain.RsvpStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}

func writeAttendees(w io.Writer, heading string, players []domain.Player) {
	fmt.Fprintln(w, renderHeading(heading))
	if len(players) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, p := range players {
		fmt.Fprintf(w, "- %s (ID: %s)\n", p.Name, p.ID)
	}
}

func writeCounts(w io.Writer, heading string, counts domain.RsvpCounts) {
	fmt.Fprintln(w, renderHeading(heading))
	fmt.Fprintf(w, "Total RSVPs: %d\n", counts.Total)
	fmt.Fprintf(w, "Confirmed: %d\n", counts.Confirmed)
	fmt.Fprintf(w, "Declined: %d\n", counts.Declined)
	fmt.Fprintf(w, "Maybe: %d\n", counts.Maybe)
}

func writeEntries(w io.Writer, heading string, entries []*domain.RsvpEntry) {
	fmt.Fprintln(w, renderHeading(heading))
	if len(entries) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "- %s: %s (Updated: %s)\n",
			e.Player.Name, renderStatus(e.Status), formatUpdated(e.UpdatedAt))
	}
}

// writeReport prints attendees, counts and every entry. prefix is prepended
// to each heading, e.g. "Updated ".
func writeReport(ctx context.Context, w io.Writer, svc service.RsvpService, prefix string) {
	writeAttendees(w, prefix+"Confirmed Attendees:", svc.GetConfirmedAttendees(ctx))
	fmt.Fprintln(w)
	writeCounts(w, prefix+"RSVP Counts:", svc.GetRsvpCounts(ctx))
	fmt.Fprintln(w)
	writeEntries(w, prefix+"All RSVPs:", svc.GetAllRsvps(ctx))
}

func formatUpdated(t time.Time) string {
	return t.Local().Format(timestampLayout)
}
