package extract

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Severity distinguishes diagnostic entries parsed from tool output.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one parsed error or warning from an extraction backend.
// File and Line are zero-valued when the tool did not report a location.
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Message  string
}

func (d Diagnostic) String() string {
	if d.File == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s: %s", d.File, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Severity, d.Message)
}

// located matches "file:line:" and "file:line:column:" prefixes emitted by
// the gettext tools.
var located = regexp.MustCompile(`^(.+?):(\d+)(?::\d+)?:\s*(.+)$`)

// ParseToolStderr parses gettext-style stderr into diagnostics. Recognized
// line forms:
//
//	file:line: message
//	file:line:column: message
//	xgettext: message
//	file: message
//
// Continuation lines (indented) are appended to the previous diagnostic.
// Messages starting with "warning:" are warnings, everything else is an
// error, matching how the gettext tools report.
func ParseToolStderr(stderr []byte) []Diagnostic {
	var diags []Diagnostic

	scanner := bufio.NewScanner(bytes.NewReader(stderr))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Indented continuation of the previous message.
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && len(diags) > 0 {
			diags[len(diags)-1].Message += " " + strings.TrimSpace(line)
			continue
		}

		var d Diagnostic
		if m := located.FindStringSubmatch(line); m != nil {
			d.File = m[1]
			d.Line, _ = strconv.Atoi(m[2])
			d.Message = m[3]
		} else if file, msg, ok := strings.Cut(line, ": "); ok {
			// Tool name prefixes ("xgettext: ...", "msgcat: ...") carry no
			// useful location, plain file prefixes do.
			if file != "xgettext" && file != "msgcat" {
				d.File = file
			}
			d.Message = msg
		} else {
			d.Message = line
		}

		d.Severity = SeverityError
		if rest, ok := strings.CutPrefix(d.Message, "warning:"); ok {
			d.Severity = SeverityWarning
			d.Message = strings.TrimSpace(rest)
		} else if rest, ok := strings.CutPrefix(d.Message, "error:"); ok {
			d.Message = strings.TrimSpace(rest)
		}

		diags = append(diags, d)
	}

	return diags
}
