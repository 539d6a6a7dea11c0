// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package cliflags is the small, shared flag-registration layer the three
// CLI programs (net2beh, net2cl, chksim) build their option parsing on top
// of. It stays on the standard library's flag package rather than reaching
// for a third-party flag framework — none of the retrieved pack repos carry
// one, so this is the one ambient concern this module deliberately keeps on
// stdlib (see DESIGN.md) — but wraps it the way the teacher wraps its own
// small scanners: one purpose-built type per recurring option shape, used
// identically across every CLI entry point.
package cliflags

import (
	"flag"
	"fmt"
)

// Format is the output-format flag shared by net2beh and net2cl (§6,
// "-f/--format ∈ {text, dot}").
type Format string

const (
	FormatText Format = "text"
	FormatDOT  Format = "dot"
)

func (f *Format) String() string {
	if f == nil || *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

func (f *Format) Set(s string) error {
	switch Format(s) {
	case FormatText, FormatDOT:
		*f = Format(s)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want %q or %q)", s, FormatText, FormatDOT)
	}
}

// RegisterFormat registers both spellings of the -f/--format flag on fs,
// defaulting dst to FormatText.
func RegisterFormat(fs *flag.FlagSet, dst *Format) {
	*dst = FormatText
	const usage = "output format: text or dot"
	fs.Var(dst, "f", usage)
	fs.Var(dst, "format", usage)
}

// RegisterBool registers both the short and long spelling of one boolean
// flag (e.g. net2beh's -b/--showBoundViolations) against the same
// destination.
func RegisterBool(fs *flag.FlagSet, short, long, usage string, dst *bool) {
	fs.BoolVar(dst, short, false, usage)
	fs.BoolVar(dst, long, false, usage)
}
