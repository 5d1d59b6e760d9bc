package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
	"github.com/Al69m/top10-streaming-fr/internal/config"
	"github.com/Al69m/top10-streaming-fr/internal/pipeline"
)

// ListCmd builds a single catalog and prints it.
type ListCmd struct {
	SourceFlags `embed:""`

	ID     string `arg:"" name:"catalog" help:"Catalog ID, e.g. netflix-movies or apple-series"`
	Format string `short:"f" help:"Output format" enum:"table,json,yaml" default:"table"`
}

type listRow struct {
	Rank        int      `json:"rank" yaml:"rank"`
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Year        string   `json:"year,omitempty" yaml:"year,omitempty"`
	IMDb        *float64 `json:"imdb,omitempty" yaml:"imdb,omitempty"`
	Tomato      *int     `json:"tomato,omitempty" yaml:"tomato,omitempty"`
	Meta        *int     `json:"meta,omitempty" yaml:"meta,omitempty"`
	Poster      string   `json:"poster,omitempty" yaml:"poster,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

func (l *ListCmd) Run(ctx context.Context, cfg *config.Config) error {
	id, err := catalog.ParseID(l.ID)
	if err != nil {
		return err
	}
	if err := l.SourceFlags.apply(cfg); err != nil {
		return err
	}

	entries := newBuilder(cfg).Entries(ctx, id)
	return renderList(stdout, l.Format, id, entries)
}

func renderList(w io.Writer, format string, id catalog.ID, entries []pipeline.Entry) error {
	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		row := listRow{
			Rank:        e.Title.Rank,
			ID:          e.Item.ID,
			Name:        e.Item.Name,
			Year:        e.Item.ReleaseInfo,
			Poster:      e.Item.Poster,
			Description: e.Item.Description,
		}
		if r, ok := e.Rating.Get(); ok {
			row.IMDb, row.Tomato, row.Meta = r.IMDb, r.RottenTomatoes, r.Metacritic
		}
		rows = append(rows, row)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderTable(w, id, rows)
	}
}

func renderTable(w io.Writer, id catalog.ID, rows []listRow) error {
	heading := fmt.Sprintf("%s (%s)", id.Name(), id)
	if shouldColorize(w) {
		heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render(heading)
	}
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No titles.")
		return err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Year", "IMDb", "RT", "Meta", "ID"})
	for _, r := range rows {
		tw.AppendRow(table.Row{
			r.Rank,
			r.Name,
			r.Year,
			formatFloat(r.IMDb),
			formatPercent(r.Tomato),
			formatInt(r.Meta),
			r.ID,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func formatPercent(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v) + "%"
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
