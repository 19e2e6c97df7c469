/*
 * errors.go, part of gobonds.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chem

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownElement is returned, wrapped, when an element symbol is not one of
// the 118 recognized IUPAC symbols.
var ErrUnknownElement = errors.New("unknown element symbol")

// ErrAtomicNumber is returned, wrapped, when an atomic number is outside [1,118].
var ErrAtomicNumber = errors.New("atomic number out of range")

// CError is the error type of the package. It carries a message, the list of
// functions it went through (the decoration) and, optionally, the error
// that caused it, so errors.Is and errors.As see through it.
type CError struct {
	msg  string
	deco []string
	err  error
}

func newCError(cause error, caller, format string, args ...any) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), deco: []string{caller}, err: cause}
}

// Error returns a string with an error message.
func (err *CError) Error() string {
	if err.err == nil {
		return err.msg
	}
	return err.msg + ": " + err.err.Error()
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. An empty dec just returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Trace returns the decoration as a single "inner <- outer" string.
func (err *CError) Trace() string {
	return strings.Join(err.deco, " <- ")
}

// Unwrap returns the cause of the error, if any.
func (err *CError) Unwrap() error { return err.err }

// errDecorate decorates err with the caller's name if err implements Error,
// and wraps it in a CError otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return &CError{msg: caller, deco: []string{caller}, err: err}
}
