// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

const results = `go-cmdlineparse: Advanced Sample

Parse result:
`

func TestProgram(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"defaults", []string{"advanced-sample"}, 0, results + `  string option = "foo"
  string option 2 = "bar"
  flag = false
  flag 2 = false
Unnamed arguments:
`, ""},
		{"everything", []string{"advanced-sample", "-fsX", "-t", "file", "--flag-a", "-Hh", "--callback=cb", "-a", "false", "in", "--", "-out"}, 0,
			`This is handler "h"
callback function "cb"
This is abort handler
  Continue parsing
` + results + `  string option = "X"
  string option 2 = "file"
  flag = true
  flag 2 = true
Unnamed arguments:
  unnamed arg = "in"
  unnamed arg = "-out"
`, ""},
		{"abort", []string{"advanced-sample", "-a", "true", "-f"}, 0, `This is abort handler
  Abort parsing
Abort reason is option_handler -- abort
`, ""},
		{"unknown abort value", []string{"advanced-sample", "--abort", "maybe"}, 0, `This is abort handler
Unknown optarg "maybe"
  Continue...
` + results + `  string option = "foo"
  string option 2 = "bar"
  flag = false
  flag 2 = false
Unnamed arguments:
`, ""},
		{"version", []string{"advanced-sample", "--vers"}, 0, `go-cmdlineparse: Advanced Sample
Abort reason is option_handler -- version
`, ""},
		{"help", []string{"advanced-sample", "-h"}, 0, `go-cmdlineparse: Advanced Sample

Usage: advanced-sample [options] FILES

  -h, --help
    Print help and exit
  -V, --version
    Print version and exit
  -s, --string=STRING
    Specify string option.
  -f, --flag
    This is a flag.
    Second line.
    This parser doesn't wrap text automatically.
  -H, --handler[=OPTION]
    This is option handler
Description only
  description only

Group1:
  -t FILENAME
    Specify string option 2.
      --flag-another
    This is a flag 2.
  -F, --callback-func=OPTARG   (OPTARG is required)
    This is callback handler
Description 2
    description only 2 - first line
    description only 2 - second line

Group2:
  -a, --abort=FLAG   (possible value=true, false)
    This option aborts parsing
    If FLAG=true, abort parsing
Abort reason is option_handler -- help
`, ""},
		{"ambiguous", []string{"advanced-sample", "--fl"}, 1, "Abort reason is error_ambiguous_option -- --fl\n",
			"ERROR: option '--fl' is ambiguous; possibilities: '--flag' '--flag-another'\n"},
		{"extra arg", []string{"advanced-sample", "--flag=yes"}, 1, "Abort reason is error_extra_arg -- --flag=yes\n",
			"ERROR: option '--flag=yes' doesn't allow an argument\n"},
		{"no arg short", []string{"advanced-sample", "-F"}, 1, "Abort reason is error_no_arg_short -- F\n",
			"ERROR: option requires an argument -- 'F'\n"},
		{"short only string is not long", []string{"advanced-sample", "--t", "x"}, 1, "Abort reason is error_unknown_option -- --t\n",
			"ERROR: unrecognized option '--t'\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			code := program(tt.args, stdout, stderr)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d", code, tt.code)
			}
			if diff := cmp.Diff(tt.stdout, stdout.String()); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.stderr, stderr.String()); diff != "" {
				t.Errorf("stderr mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
