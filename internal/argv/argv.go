// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argv - iterator over a process argument vector that allows peeking
// at and consuming the following token.
package argv

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds an Iterator over args.
// args[0] is the program name and is never returned by Next.
func New(args []string) *Iterator {
	return &Iterator{data: args, idx: 0}
}

// ProgramName - returns args[0] or an empty string when args is empty.
func (a *Iterator) ProgramName() string {
	if len(a.data) == 0 {
		return ""
	}
	return a.data[0]
}

// Index - return current index into the original args.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns value at current index or an empty string if you are trying to read the value after having fully read the list.
func (a *Iterator) Value() string {
	if a.idx >= len(a.data) || a.idx < 1 {
		return ""
	}
	return a.data[a.idx]
}

// TakeNext - consumes the following token whole and returns it.
// The bool is false when there is no following token, in which case the index doesn't move.
func (a *Iterator) TakeNext() (string, bool) {
	if !a.ExistsNext() {
		return "", false
	}
	a.idx++
	return a.data[a.idx], true
}

// Rest - consumes and returns every token after the current one.
func (a *Iterator) Rest() []string {
	if !a.ExistsNext() {
		a.idx = len(a.data)
		return []string{}
	}
	rest := make([]string, len(a.data)-a.idx-1)
	copy(rest, a.data[a.idx+1:])
	a.idx = len(a.data)
	return rest
}
