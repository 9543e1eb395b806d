/*
 * errors.go, part of biomesh.
 *
 * Copyright 2024 The biomesh developers
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
 */

package biomesh

import "fmt"

//Error is the interface for errors that this library produces. The
//Decorate method allows adding information when passing an error up
//the call stack without changing its type or wrapping it in something
//else. Each call returns the resulting decoration slice; passing an
//empty string just returns the current value.
type Error interface {
	error
	Decorate(string) []string
}

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. A nil err is passed through.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//deco is the common decoration slice embedded by the concrete error
//types.
type deco struct {
	d []string
}

func (e *deco) Decorate(dec string) []string {
	if dec != "" {
		e.d = append(e.d, dec)
	}
	return e.d
}

//TooShortError reports an ATOM/HETATM line too short to hold the
//mandatory fields through the Z coordinate. It is distinct from
//FieldError: the record is structurally truncated rather than
//malformed in one field.
type TooShortError struct {
	deco
	Line   int //1-based line number in the parsed content
	Length int //actual length of the offending line
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("line %d: record too short for coordinate extraction (%d chars, %d required)", e.Line, e.Length, minAtomRecord)
}

//FieldError reports a mandatory field that is empty or fails
//full-string numeric conversion.
type FieldError struct {
	deco
	Line  int
	Field string //e.g. "serial number", "X coordinate"
	Value string //raw field content, empty when the field was blank
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: empty %s field", e.Line, e.Field)
	}
	return fmt.Sprintf("line %d: invalid %s: %q", e.Line, e.Field, e.Value)
}

//UnknownElementError reports that enrichment resolved an element
//symbol the spec table has no entry for. It is only produced under
//the strict-elements policy; the lenient path leaves radius and mass
//unset instead.
type UnknownElementError struct {
	deco
	Line   int
	Symbol string //the resolved element symbol
	Name   string //the atom name it was resolved from
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("line %d: no atomic spec for element %q (atom name %q)", e.Line, e.Symbol, e.Name)
}

//ScanError reports that line iteration failed mid-content, most often
//a line exceeding the parser's line-length cap. Everything from the
//offending line on is unread, so the accumulated result may be
//truncated.
type ScanError struct {
	deco
	Line int //1-based number of the line that could not be read
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d: cannot read line: %v", e.Line, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

//FileError reports that a source could not be read at all. It aborts
//the whole parse.
type FileError struct {
	deco
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

//NoAtomsError reports that the parsed content held no usable
//ATOM/HETATM record. It is only returned when the parser is
//configured to fail on empty results; the default policy records a
//warning instead.
type NoAtomsError struct {
	deco
	Lines int //lines that were processed
}

func (e *NoAtomsError) Error() string {
	return fmt.Sprintf("no ATOM/HETATM records parsed (%d lines processed)", e.Lines)
}

//Warning is a non-fatal diagnostic accumulated during a parse. Line
//is 0 for warnings about the content as a whole.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line == 0 {
		return w.Message
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
