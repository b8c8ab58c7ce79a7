package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/cardinput/pkg/cardnumber"
)

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// render executes a text template into the console
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return nil
}

// resultView is the template data for a single card number
type resultView struct {
	Labels   labels
	Title    string
	Input    string
	Display  string
	Network  string
	Status   string
	Error    string
	Rejected string
}

type labels struct {
	Number  string
	Network string
	Status  string
	Error   string
}

func (c *Cli) labels() labels {
	return labels{
		Number:  c.tr.T("label.number"),
		Network: c.tr.T("label.network"),
		Status:  c.tr.T("label.status"),
		Error:   c.tr.T("label.error"),
	}
}

func (c *Cli) resultView(title string, res cardnumber.Result) resultView {
	return resultView{
		Labels:  c.labels(),
		Title:   title,
		Display: c.styles.Field(res.Rendering),
		Network: styled(c.styles.Network, c.tr.Network(res.Network)),
		Status:  c.tr.State(res.State),
		Error:   styled(c.styles.Error, c.tr.Error(res.Err)),
	}
}

func (c *Cli) rejectedView(title, input string, reason error) resultView {
	return resultView{
		Labels:   c.labels(),
		Title:    title,
		Input:    input,
		Status:   c.tr.T("check.rejected"),
		Rejected: reason.Error(),
	}
}

// styled renders s with style, keeping empty strings empty
func styled(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return style.Render(s)
}
