package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dan13ram/mint-queue/models"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeStatus(w io.Writer, format string, view *models.StatusView) error {
	if format == "json" {
		return writeJSON(w, view)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "request_id:\t%s\n", view.RequestID)
	fmt.Fprintf(tw, "external_ref:\t%s\n", view.ExternalRef)
	fmt.Fprintf(tw, "status:\t%s\n", view.Status)
	fmt.Fprintf(tw, "tx_hash:\t%s\n", orDash(view.TxHash))
	fmt.Fprintf(tw, "processed_at:\t%s\n", formatTime(view.ProcessedAt))
	if view.ErrorMessage != "" {
		fmt.Fprintf(tw, "error:\t%s\n", view.ErrorMessage)
	}
	if view.SupersededBy != "" {
		fmt.Fprintf(tw, "superseded_by:\t%s\n", view.SupersededBy)
	}
	return tw.Flush()
}

func writeList(w io.Writer, format string, mints []models.MintRequest) error {
	if format == "json" {
		if mints == nil {
			mints = []models.MintRequest{}
		}
		return writeJSON(w, mints)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"ID", "STATUS", "RECIPIENT", "TX HASH", "CREATED", "ERROR"}, "\t"))
	for _, m := range mints {
		created := m.CreatedAt
		fmt.Fprintln(tw, strings.Join([]string{
			m.RequestID(),
			string(m.Status),
			m.RecipientAddress,
			orDash(m.TxHash),
			formatTime(&created),
			orDash(m.ErrorMessage),
		}, "\t"))
	}
	return tw.Flush()
}
