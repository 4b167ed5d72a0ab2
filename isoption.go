// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdlineparse

import (
	"strings"
)

type tokenKind int

const (
	textToken       tokenKind = iota // positional argument, including the lonesome dash
	terminatorToken                  // --
	longToken                        // --name or --name=arg
	shortToken                       // -x or -xyz
)

func (k tokenKind) String() string {
	switch k {
	case terminatorToken:
		return "terminator"
	case longToken:
		return "long"
	case shortToken:
		return "short"
	default:
		return "text"
	}
}

type token struct {
	Kind tokenKind
	// Option name without the leading dashes.
	// For short tokens it holds every bundled character plus any inline argument.
	Option string
	Arg    string // =arg of long tokens
	HasArg bool   // Indicates that the long token had an =arg, possibly empty
}

/*
isOption - Classifies a command line token.

	"--"          terminator
	"--name"      long option
	"--name=arg"  long option with argument, split at the first '='
	"-xyz"        short option group, the Matcher decides where options end
	              and an inline argument starts
	"-" and text  positional argument
*/
func isOption(s string) token {
	switch {
	case s == "--":
		return token{Kind: terminatorToken}
	case strings.HasPrefix(s, "--"):
		name, arg, found := strings.Cut(s[2:], "=")
		return token{Kind: longToken, Option: name, Arg: arg, HasArg: found}
	case strings.HasPrefix(s, "-") && len(s) > 1:
		return token{Kind: shortToken, Option: s[1:]}
	default:
		return token{Kind: textToken, Option: s}
	}
}
