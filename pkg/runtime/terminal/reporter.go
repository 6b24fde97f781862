package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
)

// Reporter renders a derived dashboard to the console in a formatted text
// form.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(d domain.Dashboard) error {
	funcMap := template.FuncMap{
		"dot": func(color domain.DotColor) string {
			switch color {
			case domain.DotRed:
				return "[RED]"
			case domain.DotYellow:
				return "[YELLOW]"
			default:
				return "[GREEN]"
			}
		},
		"bar": func(score int) string {
			filled := score / 10
			return strings.Repeat("#", filled) + strings.Repeat("-", 10-filled)
		},
	}

	tmpl := `
Overall Status: {{.Status.Overall}}
  Cost {{dot .Status.CostDot}}  Logs {{dot .Status.LogDot}}

Health: {{.Health.Label}} ({{.Health.Score}}/100) {{bar .Health.Score}}
  {{.Health.Reason}}

Cost: ${{printf "%.2f" .TotalCost}} ({{.Trend.Formatted}} {{.Trend.Direction}})

Log Levels: critical={{.Counts.Critical}} error={{.Counts.Error}} warning={{.Counts.Warning}} info={{.Counts.Info}}
{{if .TopErrors.AllClear}}
No errors detected.
{{else}}
Top Errors:
{{range .TopErrors.Groups}}  {{printf "%3d" .Count}}x {{.Type}}: {{.Sample}}
{{end}}{{end}}
{{- if .Recommendations.AllOptimal}}
All systems optimal.
{{else}}
Recommendations:
{{range .Recommendations.Items}}  {{.Rank}}. {{.Text}}
{{end}}{{end}}`

	t, err := template.New("dashboard").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, d)
}
