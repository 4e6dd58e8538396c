package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"moviedb/src/internal/schema"
)

// renderMovieTable writes a movie listing as a rounded table.
func renderMovieTable(w io.Writer, movies []schema.Movie) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Year", "Rating", "Note"})
	for _, m := range movies {
		tw.AppendRow(table.Row{m.Title, m.Year, strconv.FormatFloat(m.Rating, 'f', 1, 64), m.Note})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	tw.Render()
}

func (a *App) successf(format string, args ...any) {
	fmt.Fprintln(a.out, text.FgGreen.Sprintf(format, args...))
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintln(a.out, text.FgRed.Sprintf(format, args...))
}

func (a *App) noticef(format string, args ...any) {
	fmt.Fprintln(a.out, text.FgYellow.Sprintf(format, args...))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
