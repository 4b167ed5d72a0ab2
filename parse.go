// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdlineparse

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/DavidGamba/go-cmdlineparse/internal/argv"
	"github.com/DavidGamba/go-cmdlineparse/internal/option"
	"github.com/DavidGamba/go-cmdlineparse/text"
)

// Parse - Parses the given argument vector, usually os.Args.
// args[0] is the program name and is skipped.
//
// It returns true when every argument was processed, that is when
// AbortReason is NoAbort.
// A handler returning false stops parsing and makes Parse return false with
// the OptionHandler abort reason, use AbortReason to tell it apart from errors.
//
// Every call starts from a clean state: positional arguments are cleared and
// string and flag receivers are reset to their defaults.
func (p *Parser) Parse(args []string) bool {
	p.reset()
	iterator := argv.New(args)
	if !p.nameSet && iterator.ProgramName() != "" {
		p.programName = filepath.Base(iterator.ProgramName())
	}

	for iterator.Next() {
		tok := isOption(iterator.Value())
		Logger.Printf("token %d: %q, kind: %s", iterator.Index(), iterator.Value(), tok.Kind)

		switch tok.Kind {
		case terminatorToken:
			p.unnamedArgs = append(p.unnamedArgs, iterator.Rest()...)
			return true
		case longToken:
			if !p.parseLong(iterator, tok) {
				return false
			}
		case shortToken:
			if !p.parseShort(iterator, tok) {
				return false
			}
		default:
			p.unnamedArgs = append(p.unnamedArgs, iterator.Value())
		}
	}
	return true
}

func (p *Parser) reset() {
	p.started = true
	p.unnamedArgs = []string{}
	p.abortReason = NoAbort
	p.abortOption = ""
	p.candidates = nil
	for _, opt := range p.options {
		if opt.Matchable() {
			opt.Reset()
		}
	}
}

// abort records the reason and always returns false so callers can return it directly.
func (p *Parser) abort(reason AbortReason, opt string) bool {
	Logger.Printf("abort: %s -- %s", reason, opt)
	p.abortReason = reason
	p.abortOption = opt
	return false
}

// dispatch applies a matched option and reports whether parsing continues.
func (p *Parser) dispatch(opt *option.Option, usedAlias string, args ...string) bool {
	opt.SetCalled(usedAlias)
	if !opt.Save(args...) {
		return p.abort(OptionHandler, opt.Name())
	}
	return true
}

func (p *Parser) parseLong(iterator *argv.Iterator, tok token) bool {
	verbatim := iterator.Value()
	opt, matches := p.matchLong(tok.Option)
	switch {
	case len(matches) > 1:
		p.candidates = matches
		return p.abort(ErrorAmbiguousOption, verbatim)
	case opt == nil:
		return p.abort(ErrorUnknownOption, verbatim)
	}
	usedAlias := "--" + opt.Long

	switch opt.ArgMode {
	case option.NoArgument:
		if tok.HasArg {
			return p.abort(ErrorExtraArg, verbatim)
		}
		return p.dispatch(opt, usedAlias)
	case option.RequiredArgument:
		if tok.HasArg {
			return p.dispatch(opt, usedAlias, tok.Arg)
		}
		arg, ok := iterator.TakeNext()
		if !ok {
			return p.abort(ErrorNoArg, verbatim)
		}
		return p.dispatch(opt, usedAlias, arg)
	default: // option.OptionalArgument
		if tok.HasArg {
			return p.dispatch(opt, usedAlias, tok.Arg)
		}
		return p.dispatch(opt, usedAlias)
	}
}

// matchLong - Resolves a long option name.
// An exact match wins, otherwise the name must be a prefix of exactly one
// registered long name.
// The returned slice holds every prefix match when there was no exact match.
func (p *Parser) matchLong(name string) (*option.Option, []string) {
	if name == "" {
		return nil, nil
	}
	if opt, ok := p.longMap[name]; ok {
		return opt, []string{opt.Long}
	}
	var found *option.Option
	matches := []string{}
	for _, opt := range p.options {
		if !opt.Matchable() || !opt.HasLong() {
			continue
		}
		if strings.HasPrefix(opt.Long, name) {
			found = opt
			matches = append(matches, opt.Long)
		}
	}
	if len(matches) != 1 {
		return nil, matches
	}
	return found, matches
}

func (p *Parser) parseShort(iterator *argv.Iterator, tok token) bool {
	s := tok.Option
	for off := 0; off < len(s); {
		c, size := utf8.DecodeRuneInString(s[off:])
		name := s[off : off+size]
		// Inline arguments are taken from the original bytes.
		rest := s[off+size:]
		off += size

		opt, ok := p.lookupShort(c, name)
		if !ok {
			return p.abort(ErrorUnknownOptionShort, name)
		}
		usedAlias := "-" + name

		switch opt.ArgMode {
		case option.NoArgument:
			if !p.dispatch(opt, usedAlias) {
				return false
			}
		case option.RequiredArgument:
			if rest != "" {
				return p.dispatch(opt, usedAlias, rest)
			}
			arg, ok := iterator.TakeNext()
			if !ok {
				return p.abort(ErrorNoArgShort, name)
			}
			return p.dispatch(opt, usedAlias, arg)
		default: // option.OptionalArgument
			if rest != "" {
				return p.dispatch(opt, usedAlias, rest)
			}
			return p.dispatch(opt, usedAlias)
		}
	}
	return true
}

// lookupShort finds the option for one character of a short group.
// Bytes that are not valid UTF-8 never match a registered name.
func (p *Parser) lookupShort(c rune, name string) (*option.Option, bool) {
	if c == utf8.RuneError && len(name) == 1 {
		return nil, false
	}
	opt, ok := p.shortMap[c]
	return opt, ok
}

// Err - Returns the error of the last parse, or nil when it succeeded or a
// handler requested the stop.
// The error wraps ErrorParsing.
func (p *Parser) Err() error {
	var msg string
	switch p.abortReason {
	case NoAbort, OptionHandler:
		return nil
	case ErrorExtraArg:
		msg = fmt.Sprintf(text.ErrorExtraArg, p.abortOption)
	case ErrorNoArg:
		msg = fmt.Sprintf(text.ErrorNoArg, p.abortOption)
	case ErrorAmbiguousOption:
		possibilities := []string{}
		for _, m := range p.candidates {
			possibilities = append(possibilities, "'--"+m+"'")
		}
		msg = fmt.Sprintf(text.ErrorAmbiguousOption, p.abortOption, strings.Join(possibilities, " "))
	case ErrorUnknownOption:
		msg = fmt.Sprintf(text.ErrorUnknownOption, p.abortOption)
	case ErrorNoArgShort:
		msg = fmt.Sprintf(text.ErrorNoArgShort, p.abortOption)
	case ErrorUnknownOptionShort:
		msg = fmt.Sprintf(text.ErrorUnknownOptionShort, p.abortOption)
	default:
		msg = p.abortReason.String()
	}
	return fmt.Errorf("%s%w", msg, ErrorParsing)
}
