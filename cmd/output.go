package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/pkg/docquery"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgYellow)
)

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, json, yaml", format)
	}
}

type translation struct {
	Where   string              `json:"where" yaml:"where"`
	Queries [][]docquery.Filter `json:"queries" yaml:"queries"`
}

func renderTranslation(w io.Writer, format, expr string, qs docquery.QuerySet) error {
	switch format {
	case outputJSON:
		return writeJSON(w, translation{Where: expr, Queries: docquery.FilterSets(qs)})
	case outputYAML:
		return writeYAML(w, translation{Where: expr, Queries: docquery.FilterSets(qs)})
	}

	headerColor.Fprintf(w, "WHERE %s\n", expr)
	for i, q := range qs {
		labelColor.Fprintf(w, "  query %d: ", i+1)
		fmt.Fprintln(w, q)
	}
	return nil
}

func renderResult(w io.Writer, format string, result *models.QueryResult) error {
	switch format {
	case outputJSON:
		return writeJSON(w, result)
	case outputYAML:
		docs := make([]map[string]any, 0, len(result.Documents))
		for _, d := range result.Documents {
			var data map[string]any
			if err := json.Unmarshal(d.Data, &data); err != nil {
				return err
			}
			docs = append(docs, data)
		}
		return writeYAML(w, map[string]any{
			"collection": result.Collection,
			"where":      result.Where,
			"queries":    result.Queries,
			"documents":  docs,
		})
	}

	headerColor.Fprintf(w, "%s: %d documents from %d queries\n", result.Collection, len(result.Documents), len(result.Queries))
	for i, q := range result.Queries {
		labelColor.Fprintf(w, "  query %d: ", i+1)
		fmt.Fprintln(w, q)
	}
	for _, d := range result.Documents {
		fmt.Fprintln(w, string(d.Data))
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
