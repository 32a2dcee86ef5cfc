package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/mpgo/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report: headline metrics and
// the per-year table for every scenario, plus the modeling assumptions.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.ProjectionSet) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ProjectionSet
		Assumptions []string
	}{results, DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
