package drafting

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"text/template"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type field struct {
	Key   string
	Value string
}

type eventData struct {
	Name        string
	Type        string
	Description string
	Department  string
	Dates       string
	Fields      []field
}

// EventPrompt renders the report prompt of an event.
func EventPrompt(e domain.Event) (string, error) {
	return render("event.md.tmpl", eventData{
		Name:        e.Name,
		Type:        e.Type,
		Description: e.Description,
		Department:  e.Department,
		Dates:       eventDates(e),
		Fields:      fields(e.DynamicFields),
	})
}

type annualData struct {
	Year                string
	Events              []domain.Event
	Achievements        []domain.Achievement
	Performance         []domain.DepartmentPerformance
	Placement           domain.PlacementInfo
	PlacementPercentage float64
}

// AnnualPrompt renders the prompt of an annual report.
func AnnualPrompt(in domain.AnnualReportInput) (string, error) {
	return render("annual.md.tmpl", annualData{
		Year:                in.Year.String(),
		Events:              in.Events,
		Achievements:        in.Achievements,
		Performance:         in.Performance,
		Placement:           in.Placement,
		PlacementPercentage: in.Placement.Percentage(),
	})
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("prompt %s: %w", name, err)
	}
	return buf.String(), nil
}

func eventDates(e domain.Event) string {
	const layout = "2 January 2006"
	if e.StartDate.IsZero() {
		return ""
	}
	if e.EndDate == nil || e.EndDate.Equal(e.StartDate) {
		return "on " + e.StartDate.Format(layout)
	}
	return fmt.Sprintf("from %s to %s", e.StartDate.Format(layout), e.EndDate.Format(layout))
}

// fields flattens dynamic fields into sorted key/value lines. Nested values
// are kept as compact JSON.
func fields(m map[string]any) []field {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]field, 0, len(keys))
	for _, k := range keys {
		var v string
		switch x := m[k].(type) {
		case string:
			v = x
		case nil:
			continue
		case time.Time:
			v = x.Format(domain.DateLayout)
		default:
			b, err := json.Marshal(x)
			if err != nil {
				v = fmt.Sprint(x)
			} else {
				v = string(b)
			}
		}
		if v == "" {
			continue
		}
		out = append(out, field{Key: k, Value: v})
	}
	return out
}
