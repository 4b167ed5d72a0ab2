// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package cmdlineparse - Go option parser in the tradition of getopt_long.

Options are registered once on a Parser and then the full argument vector
(os.Args, including the program name) is parsed in a single call.

# Usage

	cmd := cmdlineparse.New()
	cmd.SetVersionString("mytool 1.0\n")
	cmd.SetUsageUnnamedOpts("FILES")
	_ = cmd.AddDefault() // -h/--help and -V/--version

	var str string
	var flag bool
	_ = cmd.AddString('s', "string", &str, "foo", cmdlineparse.DIndent+"Specify string option.")
	_ = cmd.AddFlag('f', "flag", &flag, cmdlineparse.DIndent+"This is a flag.")
	_ = cmd.AddHandler('a', "abort", cmdlineparse.RequiredArgument,
		func(optarg string) bool { return optarg != "true" },
		cmdlineparse.DIndent+"Stop parsing when FLAG is true",
		cmd.TypeStr("FLAG"), cmd.Group("Group2"))

	if !cmd.Parse(os.Args) {
		if cmd.AbortReason() == cmdlineparse.OptionHandler {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", cmd.Err())
		os.Exit(1)
	}
	files := cmd.UnnamedArgs()

# Features

• Short options `-x`, bundled `-xyz`, `-xVALUE` and `-x VALUE`.

• Long options `--name`, `--name=VALUE`, `--name VALUE` and any
unambiguous prefix of a registered long name.

• `--` stops option parsing, everything after it is a positional argument.

• Options can store into a string, set a bool or call a handler that takes
no argument, a required argument or an optional argument.
Optional arguments are only taken from the same token (`-xVALUE` or
`--name=VALUE`).

• A handler returning false stops parsing, the stop is reported with the
OptionHandler abort reason so it can be told apart from parsing errors.

• Help text grouped by option group, reproduced verbatim (no wrapping).

# Errors

Parsing never panics and never prints diagnostics.
Parse returns false and AbortReason/AbortOption describe what happened.
Err returns an error wrapping ErrorParsing with a user facing message.

Registration errors (duplicate names, options without names, nil receivers,
registration after parsing started) are returned by the Add methods.
AddDescription has no error to return, it ignores calls made after Parse.
*/
package cmdlineparse
