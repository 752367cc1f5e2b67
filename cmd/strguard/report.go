package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"strguard/internal/textutil"
)

type guardResult struct {
	Operation string
	Unit      string
	Outcome   textutil.Outcome
}

type pairReport struct {
	a, b    textutil.Text
	results []guardResult
}

func newPairReport(a, b textutil.Text, results ...guardResult) pairReport {
	return pairReport{a: a, b: b, results: results}
}

type inputJSON struct {
	State         string  `json:"state"`
	Value         *string `json:"value,omitempty"`
	EmptyOrAbsent bool    `json:"empty_or_absent"`
}

type resultJSON struct {
	Operation string   `json:"operation"`
	Kind      string   `json:"kind"`
	Value     *float64 `json:"value,omitempty"`
	Unit      string   `json:"unit,omitempty"`
}

type reportJSON struct {
	A       inputJSON    `json:"a"`
	B       inputJSON    `json:"b"`
	Results []resultJSON `json:"results"`
}

func inputState(t textutil.Text) string {
	s, ok := t.Get()
	switch {
	case !ok:
		return "absent"
	case s == "":
		return "empty"
	default:
		return "content"
	}
}

func newInputJSON(t textutil.Text) inputJSON {
	view := inputJSON{State: inputState(t), EmptyOrAbsent: textutil.IsEmptyOrAbsent(t)}
	if s, ok := t.Get(); ok {
		view.Value = &s
	}
	return view
}

func (r pairReport) toJSON() reportJSON {
	out := reportJSON{A: newInputJSON(r.a), B: newInputJSON(r.b), Results: make([]resultJSON, 0, len(r.results))}
	for _, res := range r.results {
		item := resultJSON{Operation: res.Operation, Kind: res.Outcome.Kind().String(), Unit: res.Unit}
		if v, ok := res.Outcome.Value(); ok {
			item.Value = &v
		}
		out.Results = append(out.Results, item)
	}
	return out
}

func (r pairReport) tableRows() [][]string {
	rows := [][]string{
		{"a", r.a.String(), inputState(r.a), yesNo(textutil.IsEmptyOrAbsent(r.a))},
		{"b", r.b.String(), inputState(r.b), yesNo(textutil.IsEmptyOrAbsent(r.b))},
	}
	for _, res := range r.results {
		label := res.Operation
		if res.Unit != "" {
			label += " (" + res.Unit + ")"
		}
		rows = append(rows, []string{label, res.Outcome.String(), res.Outcome.Kind().String(), ""})
	}
	return rows
}

// writePlain prints just the value for a single result, or "op value" lines
// for several.
func (r pairReport) writePlain(w io.Writer) error {
	if len(r.results) == 1 {
		_, err := fmt.Fprintln(w, r.results[0].Outcome.String())
		return err
	}
	for _, res := range r.results {
		if _, err := fmt.Fprintf(w, "%s %s\n", res.Operation, res.Outcome.String()); err != nil {
			return err
		}
	}
	return nil
}

// emit renders the report in the resolved output format and logs each
// guard outcome at debug level.
func (c *commandContext) emit(cmd *cobra.Command, report pairReport) error {
	logger := c.log().With("command", cmd.Name())
	for _, res := range report.results {
		logger.Debug("guard evaluated",
			"operation", res.Operation,
			"kind", res.Outcome.Kind().String(),
			"result", res.Outcome.String(),
			"a", inputState(report.a),
			"b", inputState(report.b),
		)
	}

	out := cmd.OutOrStdout()
	format, explicit := c.outputFormat()
	if format == "table" && !explicit && !isTerminal(out) {
		format = "plain"
	}

	switch format {
	case "json":
		return writeJSON(out, report.toJSON())
	case "plain":
		return report.writePlain(out)
	case "table":
		rendered := renderTable(cmd.Name(), []string{"Check", "Value", "Result", "Empty/Absent"}, report.tableRows(), []columnAlignment{alignLeft, alignRight})
		_, err := fmt.Fprintln(out, rendered)
		return err
	default:
		return fmt.Errorf("unsupported output format %q (want table, json, or plain)", format)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
