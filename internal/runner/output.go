package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/donaldgifford/memberfmt/internal/lint"
)

// printer writes diagnostics to the output stream.
type printer struct {
	w        io.Writer
	location *color.Color
	severity map[lint.Severity]*color.Color
	ruleID   *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:        w,
		location: color.New(color.Bold),
		severity: map[lint.Severity]*color.Color{
			lint.SeverityError:   color.New(color.FgRed, color.Bold),
			lint.SeverityWarning: color.New(color.FgYellow, color.Bold),
			lint.SeverityInfo:    color.New(color.FgCyan),
			lint.SeverityHint:    color.New(color.FgHiBlack),
		},
		ruleID: color.New(color.Faint),
	}
	if noColor {
		p.location.DisableColor()
		p.ruleID.DisableColor()
		for _, c := range p.severity {
			c.DisableColor()
		}
	}
	return p
}

// printText prints one line per diagnostic: path:line:col: severity: message [ID].
func (p *printer) printText(diags []lint.Diagnostic) {
	for _, d := range diags {
		loc := fmt.Sprintf("%s:%d:%d:", d.Path, d.Pos.Line, d.Pos.Column)
		sev := d.Severity.String()
		if c, ok := p.severity[d.Severity]; ok {
			sev = c.Sprint(sev)
		}
		fmt.Fprintf(p.w, "%s %s: %s %s\n",
			p.location.Sprint(loc), sev, d.Message, p.ruleID.Sprint("["+d.RuleID+"]"))
	}
}

// printJSON prints the diagnostics as one JSON array.
func (p *printer) printJSON(diags []lint.Diagnostic) error {
	if diags == nil {
		diags = []lint.Diagnostic{}
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
