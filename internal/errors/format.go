// Package errors provides error formatting for genelection CLI output.
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose prints every detail key, including those outside the default whitelist.
	Verbose bool
}

// Context keys printed in default mode, in order.
var defaultContextKeys = []string{
	"op",
	"variant",
	"start",
	"end",
	"now",
}

// Context keys printed in verbose mode, in order.
var verboseContextKeys = []string{
	"op",
	"variant",
	"wrapper",
	"encoding",
	"start",
	"end",
	"now",
	"candidates",
	"hint",
}

const (
	maxValueLen      = 256
	maxExtraValueLen = 128
)

// Format formats an error for display without I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	fe, ok := AsFixtureError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(fe.Code))
	sb.WriteString("\n")
	sb.WriteString(fe.Msg)
	sb.WriteString("\n")

	if opts.Verbose && fe.Cause != nil {
		sb.WriteString("cause: ")
		sb.WriteString(sanitizeValue(fe.Cause.Error(), maxValueLen))
		sb.WriteString("\n")
	}

	contextKeys := defaultContextKeys
	if opts.Verbose {
		contextKeys = verboseContextKeys
	}

	printed := make(map[string]bool)
	var context strings.Builder
	for _, key := range contextKeys {
		val, ok := fe.Details[key]
		if !ok || val == "" || key == "hint" {
			continue
		}
		printed[key] = true
		context.WriteString(key)
		context.WriteString(": ")
		context.WriteString(sanitizeValue(val, maxValueLen))
		context.WriteString("\n")
	}
	if context.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(context.String())
	}

	if opts.Verbose {
		var extraKeys []string
		for key := range fe.Details {
			if !printed[key] && key != "hint" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				val := fe.Details[key]
				if val == "" {
					continue
				}
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(val, maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if hint := fe.Details["hint"]; hint != "" {
		sb.WriteString("\nhint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	for _, try := range deriveTryLines(fe) {
		sb.WriteString("try: ")
		sb.WriteString(try)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue flattens a value onto one line and truncates it to maxLen bytes.
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}

// deriveTryLines returns actionable suggestions based on error code.
func deriveTryLines(fe *FixtureError) []string {
	if fe == nil {
		return nil
	}

	var lines []string
	switch fe.Code {
	case EUnknownVariant:
		if known := fe.Details["known"]; known != "" {
			for _, name := range strings.Split(known, ",") {
				lines = append(lines, fmt.Sprintf("genelection --variant %s", name))
			}
		}
	case EUsage:
		lines = append(lines, "genelection --help")
	}
	return lines
}

// GetHint extracts the hint from an error's details, if present.
func GetHint(err error) string {
	fe, ok := AsFixtureError(err)
	if !ok {
		return ""
	}
	return fe.Details["hint"]
}
