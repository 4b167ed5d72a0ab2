// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// simple-sample demonstrates the minimal use of go-cmdlineparse: the default
// help and version options, one string option and one flag.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	cmdlineparse "github.com/DavidGamba/go-cmdlineparse"
)

func main() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

func program(args []string, stdout, stderr io.Writer) int {
	cmd := cmdlineparse.New()
	cmd.Writer = stdout
	cmd.SetVersionString("go-cmdlineparse: Simple Sample\n")

	var str string
	var flag bool
	for _, err := range []error{
		cmd.AddDefault(),
		cmd.AddString('s', "string", &str, "foobar",
			cmdlineparse.DIndent+"Specify string option."),
		cmd.AddFlag('f', "flag", &flag,
			cmdlineparse.DIndent+"This is a flag.\n"+
				cmdlineparse.DIndent+"Second line.\n"+
				cmdlineparse.DIndent+"This parser doesn't wrap text automatically."),
	} {
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return 1
		}
	}

	if !cmd.Parse(args) {
		if cmd.AbortReason() == cmdlineparse.OptionHandler {
			return 0
		}
		color.New(color.FgRed).Fprintf(stderr, "ERROR: %s\n", cmd.Err())
		fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", cmd.ProgramName())
		return 1
	}

	fmt.Fprintf(stdout, "string option = %q\n", str)
	fmt.Fprintf(stdout, "flag = %t\n", flag)
	return 0
}
