// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// The variables can be overridden to customize the messages.
package text

// ErrorExtraArg holds the text for an argument given to an option that doesn't take one.
// It has a string placeholder '%s' for the option token.
var ErrorExtraArg = "option '%s' doesn't allow an argument"

// ErrorNoArg holds the text for a long option missing its required argument.
// It has a string placeholder '%s' for the option token.
var ErrorNoArg = "option '%s' requires an argument"

// ErrorAmbiguousOption holds the text for an abbreviated long option matching more than one option.
// It has a string placeholder '%s' for the option token and '%s' for the possible matches.
var ErrorAmbiguousOption = "option '%s' is ambiguous; possibilities: %s"

// ErrorUnknownOption holds the text for an unrecognized long option.
// It has a string placeholder '%s' for the option token.
var ErrorUnknownOption = "unrecognized option '%s'"

// ErrorNoArgShort holds the text for a short option missing its required argument.
// It has a string placeholder '%s' for the option character.
var ErrorNoArgShort = "option requires an argument -- '%s'"

// ErrorUnknownOptionShort holds the text for an unrecognized short option.
// It has a string placeholder '%s' for the option character.
var ErrorUnknownOptionShort = "invalid option -- '%s'"

// HelpDescription is the help text of the default help option.
var HelpDescription = "Print help and exit"

// VersionDescription is the help text of the default version option.
var VersionDescription = "Print version and exit"
