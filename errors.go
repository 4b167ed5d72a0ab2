// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdlineparse

import (
	"errors"
	"fmt"
)

// ErrorParsing - Indicates that there was an error with cli args parsing
var ErrorParsing = errors.New("")

// Registration errors.
var (
	// ErrorDuplicateShort - The short name is already used by another option.
	ErrorDuplicateShort = errors.New("short option already defined")

	// ErrorDuplicateLong - The long name is already used by another option.
	ErrorDuplicateLong = errors.New("long option already defined")

	// ErrorNoName - The option has neither a short nor a long name.
	ErrorNoName = errors.New("option requires a short or long name")

	// ErrorInvalidName - The name can't be matched on the command line, for
	// example a '-' short name or a long name containing '='.
	ErrorInvalidName = errors.New("invalid option name")

	// ErrorNilReceiver - A string or flag option was given a nil pointer.
	ErrorNilReceiver = errors.New("option receiver is nil")

	// ErrorParseStarted - Options can't be registered once parsing started.
	ErrorParseStarted = errors.New("option registered after parsing started")
)

// AbortReason - Indicates why parsing stopped before reaching the end of the arguments.
type AbortReason int

// Abort reasons
const (
	NoAbort                 AbortReason = iota // Parsing reached the end of the arguments
	OptionHandler                              // A handler returned false
	ErrorExtraArg                              // An argument was given to an option that takes none
	ErrorNoArg                                 // A long option is missing its required argument
	ErrorAmbiguousOption                       // An abbreviated long option matches more than one option
	ErrorUnknownOption                         // Unrecognized long option
	ErrorNoArgShort                            // A short option is missing its required argument
	ErrorUnknownOptionShort                    // Unrecognized short option
)

func (r AbortReason) String() string {
	switch r {
	case NoAbort:
		return "no_abort"
	case OptionHandler:
		return "option_handler"
	case ErrorExtraArg:
		return "error_extra_arg"
	case ErrorNoArg:
		return "error_no_arg"
	case ErrorAmbiguousOption:
		return "error_ambiguous_option"
	case ErrorUnknownOption:
		return "error_unknown_option"
	case ErrorNoArgShort:
		return "error_no_arg_short"
	case ErrorUnknownOptionShort:
		return "error_unknown_option_short"
	default:
		return fmt.Sprintf("AbortReason(%d)", int(r))
	}
}

// IsError - Indicates if the reason is a parsing error as opposed to a
// successful parse or a handler requested stop.
func (r AbortReason) IsError() bool {
	return r != NoAbort && r != OptionHandler
}
