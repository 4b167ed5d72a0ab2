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

func TestProgram(t *testing.T) {
	color.NoColor = true
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"defaults", []string{"simple-sample"}, 0, "string option = \"foobar\"\nflag = false\n", ""},
		{"options", []string{"simple-sample", "-f", "--str=hello"}, 0, "string option = \"hello\"\nflag = true\n", ""},
		{"version", []string{"simple-sample", "-V", "-f"}, 0, "go-cmdlineparse: Simple Sample\n", ""},
		{"help", []string{"./bin/simple-sample", "--help"}, 0, `go-cmdlineparse: Simple Sample

Usage: simple-sample [options]

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
`, ""},
		{"unknown", []string{"simple-sample", "-x"}, 1, "",
			"ERROR: invalid option -- 'x'\nTry 'simple-sample --help' for more information.\n"},
		{"missing argument", []string{"simple-sample", "--string"}, 1, "",
			"ERROR: option '--string' requires an argument\nTry 'simple-sample --help' for more information.\n"},
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
