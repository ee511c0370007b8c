package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/data-donation/internal"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	tableTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// CLIBridge is a line-oriented terminal host: it renders donation pages to
// out and reads user responses from in. Donations are handed to the sink.
type CLIBridge struct {
	in   *bufio.Reader
	out  io.Writer
	sink Sink
	lang string
}

// NewCLIBridge builds a bridge reading from in and writing to out.
func NewCLIBridge(in io.Reader, out io.Writer, sink Sink) *CLIBridge {
	return &CLIBridge{
		in:   bufio.NewReader(in),
		out:  out,
		sink: sink,
		lang: "en",
	}
}

// NewTerminalBridge builds a bridge on stdin/stdout.
func NewTerminalBridge(sink Sink) *CLIBridge {
	return NewCLIBridge(os.Stdin, os.Stdout, sink)
}

// Render shows a page and blocks until the user answers.
func (b *CLIBridge) Render(ctx context.Context, cmd *internal.RenderCommand) (internal.Response, error) {
	page := cmd.Page
	if page.End {
		fmt.Fprintln(b.out, headerStyle.Render("Thank you"))
		fmt.Fprintln(b.out, "Your participation in this study is complete.")
		return internal.SkipResponse{}, nil
	}

	fmt.Fprintln(b.out, headerStyle.Render(page.Header.Text(b.lang)))

	switch body := page.Body.(type) {
	case *internal.FileInputPrompt:
		return b.promptFile(ctx, body)
	case *internal.ConfirmPrompt:
		return b.promptConfirm(ctx, body)
	case *internal.ConsentPrompt:
		return b.promptConsent(ctx, body)
	case *internal.ProgressPrompt:
		fmt.Fprintf(b.out, "%s %s (%d%%)\n", body.Description.Text(b.lang), body.Message, body.Percentage)
		return internal.SkipResponse{}, nil
	default:
		return internal.SkipResponse{}, fmt.Errorf("unsupported page body %T", page.Body)
	}
}

// Donate hands the payload to the sink.
func (b *CLIBridge) Donate(ctx context.Context, cmd *internal.DonateCommand) error {
	return b.sink.Store(ctx, cmd.Key, cmd.Payload)
}

func (b *CLIBridge) promptFile(ctx context.Context, prompt *internal.FileInputPrompt) (internal.Response, error) {
	fmt.Fprintln(b.out, prompt.Description.Text(b.lang))
	if prompt.MimeTypes != "" {
		fmt.Fprintln(b.out, dimStyle.Render("Accepted type: "+prompt.MimeTypes))
	}

	for {
		line, err := b.readLine(ctx, promptStyle.Render("File path")+" (enter to skip): ")
		if err != nil {
			return nil, err
		}
		if line == "" {
			return internal.SkipResponse{}, nil
		}
		data, err := os.ReadFile(line)
		if err != nil {
			fmt.Fprintln(b.out, errorStyle.Render(fmt.Sprintf("Cannot read %s: %v", line, err)))
			continue
		}
		return internal.StringResponse{Value: string(data)}, nil
	}
}

func (b *CLIBridge) promptConfirm(ctx context.Context, prompt *internal.ConfirmPrompt) (internal.Response, error) {
	fmt.Fprintln(b.out, prompt.Text.Text(b.lang))
	question := fmt.Sprintf("[y] %s  [n] %s: ", prompt.OK.Text(b.lang), prompt.Cancel.Text(b.lang))
	line, err := b.readLine(ctx, promptStyle.Render(question))
	if err != nil {
		return nil, err
	}
	return internal.BoolResponse{Value: isYes(line)}, nil
}

func (b *CLIBridge) promptConsent(ctx context.Context, prompt *internal.ConsentPrompt) (internal.Response, error) {
	tables := append(append([]internal.Table{}, prompt.Tables...), prompt.MetaTables...)
	for _, table := range tables {
		b.renderTable(table)
	}

	line, err := b.readLine(ctx, promptStyle.Render("Donate this data? [y/N]: "))
	if err != nil {
		return nil, err
	}
	if !isYes(line) {
		return internal.SkipResponse{}, nil
	}

	// The approved payload is the set of tables as shown. A richer host
	// could let the user drop rows here before approving.
	payload, err := json.Marshal(tables)
	if err != nil {
		return nil, err
	}
	return internal.JSONResponse{Value: payload}, nil
}

func (b *CLIBridge) renderTable(table internal.Table) {
	fmt.Fprintln(b.out)
	fmt.Fprintln(b.out, tableTitleStyle.Render(table.Title.Text(b.lang)))
	if len(table.Rows) == 0 {
		fmt.Fprintln(b.out, dimStyle.Render("(no rows)"))
		return
	}

	columns := tableColumns(table)
	w := tabwriter.NewWriter(b.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, fmt.Sprintf("%v", row[col]))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}

func (b *CLIBridge) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(b.out, prompt)
	line, err := b.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true
	default:
		return false
	}
}

// tableColumns returns the union of row keys in sorted order so output is
// stable across runs.
func tableColumns(table internal.Table) []string {
	seen := map[string]bool{}
	var columns []string
	for _, row := range table.Rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
