package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/galho/internal/config"
	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/services"
)

// Renderer writes command results in one output format
type Renderer struct {
	color  bool
	format string
	now    func() time.Time
	out    io.Writer
}

// New creates a renderer. Colour is enabled only when out is a terminal
// and NO_COLOR is unset.
func New(out io.Writer, format string) (*Renderer, error) {
	switch format {
	case "", config.FormatTable:
		format = config.FormatTable
	case config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
	return &Renderer{
		color:  IsTerminal(out) && os.Getenv("NO_COLOR") == "",
		format: format,
		now:    time.Now,
		out:    out,
	}, nil
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Format returns the output format in use
func (r *Renderer) Format() string {
	return r.format
}

// List writes a worktree listing
func (r *Renderer) List(result *services.ListResult) error {
	if r.format != config.FormatTable {
		return r.encode(NewListDocument(result))
	}
	return r.listTable(result)
}

// Removal writes the results of a removal run
func (r *Renderer) Removal(report *services.RemovalReport) error {
	if r.format != config.FormatTable {
		return r.encode(NewRemovalDocument(report))
	}
	return r.removalTable(report)
}

// History writes journal entries
func (r *Renderer) History(entries []domain.JournalEntry) error {
	if r.format != config.FormatTable {
		records := make([]HistoryRecord, len(entries))
		for i, e := range entries {
			records[i] = NewHistoryRecord(e)
		}
		return r.encode(records)
	}
	return r.historyTable(entries)
}

// Value writes an arbitrary document, used by `config show`
func (r *Renderer) Value(v any) error {
	return r.encode(v)
}

func (r *Renderer) encode(v any) error {
	if r.format == config.FormatYAML {
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

// paint applies style only when colour is enabled
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color || s == "" {
		return s
	}
	return style.Render(s)
}
