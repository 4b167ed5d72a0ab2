// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// advanced-sample demonstrates every registration form of go-cmdlineparse
// and reports how parsing ended.
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
	cmd.SetVersionString("go-cmdlineparse: Advanced Sample\n")
	cmd.SetUsageUnnamedOpts("FILES")

	var str, str2 string
	var flag, flag2 bool

	callback := func(optarg string) bool {
		fmt.Fprintf(stdout, "callback function %q\n", optarg)
		return true
	}

	for _, err := range []error{
		cmd.AddDefault(),
		cmd.AddString('s', "string", &str, "foo",
			cmdlineparse.DIndent+"Specify string option."),
		// No long name.
		cmd.AddString('t', "", &str2, "bar",
			cmdlineparse.DIndent+"Specify string option 2.",
			cmd.TypeStr("FILENAME"), cmd.Group("Group1")),
		cmd.AddFlag('f', "flag", &flag,
			cmdlineparse.DIndent+"This is a flag.\n"+
				cmdlineparse.DIndent+"Second line.\n"+
				cmdlineparse.DIndent+"This parser doesn't wrap text automatically."),
		// No short name.
		cmd.AddFlag(cmdlineparse.NoShort, "flag-another", &flag2,
			cmdlineparse.DIndent+"This is a flag 2.",
			cmd.Group("Group1")),
		cmd.AddHandler('H', "handler", cmdlineparse.OptionalArgument,
			func(optarg string) bool {
				fmt.Fprintf(stdout, "This is handler %q\n", optarg)
				return true
			},
			cmdlineparse.DIndent+"This is option handler",
			cmd.TypeStr("OPTION")),
		cmd.AddHandler('F', "callback-func", cmdlineparse.RequiredArgument,
			callback,
			cmdlineparse.DIndent+"This is callback handler",
			cmd.TypeStr("OPTARG"),
			cmd.Header(cmdlineparse.HSpace+"(OPTARG is required)"),
			cmd.Group("Group1")),
	} {
		if err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return 1
		}
	}

	cmd.AddDescription(cmdlineparse.NoShort, "", cmdlineparse.NoArgument,
		"Description only\n"+
			cmdlineparse.HIndent+"description only")
	cmd.AddDescription(cmdlineparse.NoShort, "", cmdlineparse.NoArgument,
		cmdlineparse.DIndent+"description only 2 - first line\n"+
			cmdlineparse.DIndent+"description only 2 - second line",
		cmd.Header("Description 2"),
		cmd.Group("Group1"))

	err := cmd.AddHandler('a', "abort", cmdlineparse.RequiredArgument,
		func(optarg string) bool {
			fmt.Fprintln(stdout, "This is abort handler")
			switch optarg {
			case "true":
				fmt.Fprintln(stdout, "  Abort parsing")
				return false
			case "false":
				fmt.Fprintln(stdout, "  Continue parsing")
				return true
			}
			fmt.Fprintf(stdout, "Unknown optarg %q\n  Continue...\n", optarg)
			return true
		},
		cmdlineparse.DIndent+"This option aborts parsing\n"+
			cmdlineparse.DIndent+"If FLAG=true, abort parsing",
		cmd.TypeStr("FLAG"),
		cmd.Header(cmdlineparse.HSpace+"(possible value=true, false)"),
		cmd.Group("Group2"))
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}

	if !cmd.Parse(args) {
		fmt.Fprintf(stdout, "Abort reason is %s -- %s\n", cmd.AbortReason(), cmd.AbortOption())
		if !cmd.AbortReason().IsError() {
			return 0
		}
		color.New(color.FgRed).Fprintf(stderr, "ERROR: %s\n", cmd.Err())
		return 1
	}

	fmt.Fprintln(stdout, cmd.VersionString())
	fmt.Fprintln(stdout, "Parse result:")
	fmt.Fprintf(stdout, "  string option = %q\n", str)
	fmt.Fprintf(stdout, "  string option 2 = %q\n", str2)
	fmt.Fprintf(stdout, "  flag = %t\n", flag)
	fmt.Fprintf(stdout, "  flag 2 = %t\n", flag2)
	fmt.Fprintln(stdout, "Unnamed arguments:")
	for _, arg := range cmd.UnnamedArgs() {
		fmt.Fprintf(stdout, "  unnamed arg = %q\n", arg)
	}
	return 0
}
