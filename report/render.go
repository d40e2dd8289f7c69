package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format is an output format name as given on the command line.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat accepts table, csv, json and xlsx.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown format %q (supported: table, csv, json, xlsx)", s)
}

// Write renders g to w. XLSX is a file format; use WriteXLSX for it.
func Write(w io.Writer, f Format, g Grid) error {
	switch f {
	case FormatTable:
		return WriteTable(w, g)
	case FormatCSV:
		return WriteCSV(w, g)
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatXLSX:
		return fmt.Errorf("xlsx output needs a file path")
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteTable draws g as a rounded terminal table followed by its notes.
func WriteTable(w io.Writer, g Grid) error {
	t := table.NewWriter()
	t.SetTitle("%s", g.Title)
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(g.Header))
	for i, h := range g.Header {
		header[i] = h
	}
	t.AppendHeader(header)
	for _, r := range g.Rows {
		t.AppendRow(prettyRow(r))
	}
	for _, r := range g.Footer {
		t.AppendFooter(prettyRow(r))
	}

	configs := make([]table.ColumnConfig, len(g.Header))
	for i := range g.Header {
		align := text.AlignRight
		if i == 0 {
			align = text.AlignLeft
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignFooter: align}
	}
	t.SetColumnConfigs(configs)

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	for _, n := range g.Notes {
		b.WriteString(n)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func prettyRow(cells []Cell) table.Row {
	r := make(table.Row, len(cells))
	for i, c := range cells {
		r[i] = c.String()
	}
	return r
}

// WriteCSV writes the header, rows and footer with raw values. Notes are
// left out.
func WriteCSV(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(g.Header); err != nil {
		return err
	}
	for _, rows := range [][][]Cell{g.Rows, g.Footer} {
		for _, r := range rows {
			if err := cw.Write(rawRow(r)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func rawRow(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Raw()
	}
	return out
}

type jsonGrid struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
	Footer [][]string `json:"footer,omitempty"`
	Notes  []string   `json:"notes,omitempty"`
}

// JSON encodes g with raw values.
func JSON(g Grid) ([]byte, error) {
	jg := jsonGrid{
		Title:  g.Title,
		Header: g.Header,
		Rows:   make([][]string, 0, len(g.Rows)),
		Notes:  g.Notes,
	}
	for _, r := range g.Rows {
		jg.Rows = append(jg.Rows, rawRow(r))
	}
	for _, r := range g.Footer {
		jg.Footer = append(jg.Footer, rawRow(r))
	}
	return json.MarshalIndent(jg, "", "  ")
}

func WriteJSON(w io.Writer, g Grid) error {
	data, err := JSON(g)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
