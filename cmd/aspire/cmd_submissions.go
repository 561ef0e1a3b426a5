package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/aspire/contact"
)

var (
	submissionsLimit int
	submissionsDB    string
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List stored contact submissions",
	RunE:  runSubmissions,
}

func init() {
	submissionsCmd.Flags().IntVarP(&submissionsLimit, "limit", "n", 20, "Rows to show, newest first (0 for all)")
	submissionsCmd.Flags().StringVar(&submissionsDB, "db", "", "SQLite database path (overrides config)")
}

// column renders one field of a record
type column struct {
	title string
	width int
	value func(contact.Record) string
}

var submissionColumns = []column{
	{"received", 16, func(r contact.Record) string { return r.CreatedAt.Local().Format("2006-01-02 15:04") }},
	{"name", 22, func(r contact.Record) string {
		return strings.TrimSpace(r.FirstName.String + " " + r.LastName.String)
	}},
	{"email", 26, func(r contact.Record) string { return r.Email.String }},
	{"type", 14, func(r contact.Record) string { return r.ConsultationType.String }},
	{"slot", 18, func(r contact.Record) string {
		return strings.TrimSpace(r.Date.String + " " + r.Time.String)
	}},
	{"mode", 10, func(r contact.Record) string { return r.Mode.String }},
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func renderRow(style lipgloss.Style, cells []string) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := submissionColumns[i].width
		parts[i] = style.Width(w + 2).Render(truncate(c, w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func formatSubmissions(records []contact.Record, total int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Contact submissions (%d stored)", total)))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString(mutedStyle.Render("No submissions yet."))
		b.WriteString("\n")
		return b.String()
	}

	titles := make([]string, len(submissionColumns))
	for i, c := range submissionColumns {
		titles[i] = c.title
	}
	b.WriteString(renderRow(headerStyle, titles))
	b.WriteString("\n")

	for _, rec := range records {
		cells := make([]string, len(submissionColumns))
		for i, c := range submissionColumns {
			cells[i] = c.value(rec)
		}
		b.WriteString(renderRow(cellStyle, cells))
		b.WriteString("\n")
		if rec.Message.Valid && rec.Message.String != "" {
			b.WriteString(mutedStyle.Render("  " + truncate(rec.Message.String, 100)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func runSubmissions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	dbPath := cfg.Database.Path
	if submissionsDB != "" {
		dbPath = submissionsDB
	}

	store, err := contact.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureTable(ctx); err != nil {
		return err
	}
	total, err := store.Count(ctx)
	if err != nil {
		return err
	}
	records, err := store.List(ctx, submissionsLimit)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatSubmissions(records, total))
	return nil
}
