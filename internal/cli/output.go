package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"petnames/internal/domain"
	"petnames/internal/namegen"
)

type animalTypeRow struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

func animalTypeRows() []animalTypeRow {
	title := cases.Title(language.English)
	tokens := namegen.Categories()
	rows := make([]animalTypeRow, 0, len(tokens))
	for _, token := range tokens {
		rows = append(rows, animalTypeRow{Token: token, Label: title.String(token)})
	}
	return rows
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult writes one name per line, or the full envelope in JSON mode.
func printResult(w io.Writer, res namegen.Result, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, res)
	}
	for _, name := range res.Names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func renderRecent(names []domain.GeneratedName) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Name", "Animal Type", "Count", "Created"})
	for _, n := range names {
		animal := "-"
		if n.AnimalType != nil {
			animal = *n.AnimalType
		}
		t.AppendRow(table.Row{n.Name, animal, n.Count, n.CreatedAt.UTC().Format(time.RFC3339)})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d shown", len(names))})
	return t.Render()
}

func renderTypes(rows []animalTypeRow) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Token", "Label"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Token, r.Label})
	}
	return t.Render()
}
