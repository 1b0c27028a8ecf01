package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"custview/internal/customer"
	"custview/internal/gateway"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes command results in the chosen format.
type Printer struct {
	Out    io.Writer
	Format OutputFormat
	Quiet  bool
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat, quiet bool) *Printer {
	if format == "" {
		format = OutputFormatTable
	}
	return &Printer{Out: out, Format: format, Quiet: quiet}
}

// PrintCustomers prints customer summaries, one row each.
func (p *Printer) PrintCustomers(customers []customer.Summary) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.outputJSON(customers)
	case OutputFormatYAML:
		return p.outputYAML(customers)
	}

	if len(customers) == 0 {
		if !p.Quiet {
			fmt.Fprintln(p.Out, text.FgYellow.Sprint("No customers found"))
		}
		return nil
	}

	t := p.newTable()
	t.AppendHeader(table.Row{header("ID"), header("Name"), header("Color")})
	for _, c := range customers {
		t.AppendRow(table.Row{c.ID, c.Name, formatColor(c.Color)})
	}
	t.Render()

	if !p.Quiet {
		fmt.Fprintf(p.Out, "\n%s %s customers\n",
			text.FgHiBlue.Sprint("Total:"),
			text.FgHiWhite.Sprint(len(customers)))
	}
	return nil
}

// PrintDetail prints a detail record. The table form keeps the server's
// field order.
func (p *Printer) PrintDetail(d customer.Detail) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.outputJSON(d)
	case OutputFormatYAML:
		return p.outputYAML(detailMap(d))
	}

	t := p.newTable()
	t.AppendHeader(table.Row{header("Property"), header("Value")})
	for _, f := range d.Fields {
		t.AppendRow(table.Row{text.FgYellow.Sprint(f.Key), f.Value})
	}
	t.Render()
	return nil
}

// PrintSummary prints a single customer record.
func (p *Printer) PrintSummary(s customer.Summary) error {
	return p.PrintCustomers([]customer.Summary{s})
}

// PrintAck prints the backend's reply to an email submission.
func (p *Printer) PrintAck(ack gateway.EmailAck) error {
	switch p.Format {
	case OutputFormatJSON:
		return p.outputJSON(ack)
	case OutputFormatYAML:
		return p.outputYAML(map[string]any(ack))
	}

	keys := make([]string, 0, len(ack))
	for k := range ack {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := p.newTable()
	t.AppendHeader(table.Row{header("Property"), header("Value")})
	for _, k := range keys {
		t.AppendRow(table.Row{text.FgYellow.Sprint(k), formatValue(ack[k])})
	}
	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) outputJSON(v interface{}) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (p *Printer) outputYAML(v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = p.Out.Write(out)
	return err
}

func header(s string) string {
	return text.FgHiCyan.Sprint(s)
}

// formatColor tints the label the way the list rows are tinted in the TUI.
func formatColor(c customer.Color) string {
	switch c {
	case customer.ColorRed:
		return text.FgRed.Sprint(string(c))
	case customer.ColorYellow:
		return text.FgYellow.Sprint(string(c))
	case customer.ColorBlue:
		return text.FgHiBlue.Sprint(string(c))
	case customer.ColorGreen:
		return text.FgGreen.Sprint(string(c))
	default:
		return text.FgHiBlack.Sprint("-")
	}
}

func formatValue(v interface{}) string {
	if v == nil {
		return text.FgHiBlack.Sprint("-")
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// detailMap builds a yaml node that keeps the field order.
func detailMap(d customer.Detail) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range d.Fields {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node
}
