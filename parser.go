/*
 * parser.go, part of biomesh.
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

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//Parser turns PDB text content into a Structure. A Parser is not safe
//for concurrent Parse calls: each call fully replaces the accumulated
//atoms, warnings and errors of the previous one. Concurrent callers
//must use independent Parser instances.
type Parser struct {
	opts      *Options
	structure *Structure
	errs      []error
	warns     []Warning
	lines     int
}

//maxLineSize is the longest line Parse will read. PDB lines are 80
//columns, so the slack only matters for damaged files: a bloated line
//under the cap is consumed and ignored like any non-record line, and
//one over it becomes a ScanError instead of ending the scan silently.
const maxLineSize = 1 << 20

//NewParser returns a parser with the given options, or with
//DefaultOptions if opts is nil.
func NewParser(opts *Options) *Parser {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Parser{opts: opts}
}

//ValidAtomLine reports whether line can be parsed as an ATOM record:
//it must start with "ATOM" and be long enough to hold the mandatory
//fields through the Z coordinate. Any line shorter than that is
//invalid regardless of its prefix.
func ValidAtomLine(line string) bool {
	return len(line) >= minAtomRecord && strings.HasPrefix(line, "ATOM")
}

//ValidatePDB cheaply checks whether content looks like a PDB file by
//scanning its first 100 lines for any ATOM or HETATM record.
func ValidatePDB(content string) bool {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for n := 0; scanner.Scan() && n < 100; n++ {
		rec := field(scanner.Text(), 0, 6)
		if rec == "ATOM" || rec == "HETATM" {
			return true
		}
	}
	return false
}

//Parse reads the PDB content and returns the resulting Structure.
//ATOM lines (and HETATM lines, per policy) are decoded; HEADER and
//TITLE are captured as metadata; END, ENDMDL and any MODEL past the
//first stop processing; everything else is ignored.
//
//A malformed ATOM/HETATM line never aborts the parse: the failure is
//recorded against its 1-based line number, retrievable through
//Errors, and parsing continues with the next line. Parse only returns
//a non-nil error for policy-fatal conditions: zero atoms under
//FailOnEmpty, or an unknown element under StrictElements. The
//returned Structure is valid (possibly partial) in either case.
func (P *Parser) Parse(content string) (*Structure, error) {
	P.structure = NewStructure()
	P.errs = nil
	P.warns = nil
	P.lines = 0
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
loop:
	for scanner.Scan() {
		P.lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) < 6 {
			continue
		}
		switch field(line, 0, 6) {
		case "HEADER":
			P.structure.Header = strings.TrimSpace(line[6:])
		case "TITLE":
			//continuation lines are joined with a single space
			if P.structure.Title != "" {
				P.structure.Title += " "
			}
			P.structure.Title += strings.TrimSpace(line[6:])
		case "MODEL":
			if P.structure.Len() > 0 {
				P.warn(P.lines, "multiple models present, only the first one was processed")
				break loop
			}
		case "ENDMDL", "END":
			break loop
		case "HETATM":
			if !P.opts.ParseHetatm() {
				P.warn(P.lines, "HETATM record not parsed (current limitation)")
				continue
			}
			if err := P.parseAtom(line, true); err != nil {
				return P.structure, err
			}
		case "ATOM":
			if err := P.parseAtom(line, false); err != nil {
				return P.structure, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		//the failed line was never counted, and nothing after it
		//was read
		P.lines++
		P.fail(&ScanError{Line: P.lines, Err: err})
	}
	if P.structure.Empty() {
		if P.opts.FailOnEmpty() {
			return P.structure, errDecorate(&NoAtomsError{Lines: P.lines}, "Parse")
		}
		P.warn(0, "no ATOM/HETATM records parsed")
	}
	P.opts.Logger().Debug("parse complete",
		zap.Int("atoms", P.structure.Len()),
		zap.Int("lines", P.lines),
		zap.Int("errors", len(P.errs)),
		zap.Int("warnings", len(P.warns)))
	return P.structure, nil
}

//parseAtom decodes one ATOM/HETATM line into the structure.
//Recoverable per-line failures are recorded and nil is returned; only
//policy-fatal errors propagate.
func (P *Parser) parseAtom(line string, het bool) error {
	lineno := P.lines
	if len(line) < minAtomRecord {
		P.fail(&TooShortError{Line: lineno, Length: len(line)})
		return nil
	}
	//accumulate field errors and check once at the end of the
	//mandatory section, so the first offending field is reported
	errs := make([]error, 5)
	at := new(Atom)
	at.Het = het
	at.Serial, errs[0] = parseIntField(line, lineno, 6, 5, "serial number")
	at.Name = field(line, 12, 4)
	at.AltLoc = field(line, 16, 1)
	at.ResName = field(line, 17, 3)
	at.Chain = field(line, 21, 1)
	at.ResSeq, errs[1] = parseIntField(line, lineno, 22, 4, "residue number")
	at.ICode = field(line, 26, 1)
	at.X, errs[2] = parseFloatField(line, lineno, 30, 8, "X coordinate")
	at.Y, errs[3] = parseFloatField(line, lineno, 38, 8, "Y coordinate")
	at.Z, errs[4] = parseFloatField(line, lineno, 46, 8, "Z coordinate")
	for _, err := range errs {
		if err != nil {
			P.fail(err)
			return nil
		}
	}
	at.Occupancy = P.optionalFloat(line, 54, 6, "occupancy", 1.0)
	at.Bfactor = P.optionalFloat(line, 60, 6, "temperature factor", 0.0)
	at.Symbol = field(line, 76, 2)
	at.Charge = field(line, 78, 2)
	if at.Symbol == "" {
		at.Symbol = ElementFromName(at.Name)
	}
	if at.Symbol != "" {
		if !applySpec(at, P.opts.Table()) && P.opts.StrictElements() {
			//fatal, not a skipped record: returned, not accumulated
			return errDecorate(&UnknownElementError{Line: lineno, Symbol: at.Symbol, Name: at.Name}, "Parse")
		}
	}
	P.structure.AddAtom(at)
	P.opts.Logger().Debug("atom parsed",
		zap.Int("line", lineno),
		zap.Int("serial", at.Serial),
		zap.String("name", at.Name),
		zap.String("chain", at.Chain))
	return nil
}

//optionalFloat reads one of the optional trailing fields. An absent
//or blank field silently yields def; a present but unparseable one
//keeps def and records a warning, since garbage in the file shouldn't
//be hidden by a silent default.
func (P *Parser) optionalFloat(line string, start, length int, name string, def float64) float64 {
	raw := field(line, start, length)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		P.warn(P.lines, fmt.Sprintf("unparseable %s %q, default %v kept", name, raw, def))
		return def
	}
	return v
}

func (P *Parser) fail(err error) {
	P.errs = append(P.errs, err)
	P.opts.Logger().Warn("record skipped", zap.Int("line", P.lines), zap.Error(err))
}

func (P *Parser) warn(line int, msg string) {
	P.warns = append(P.warns, Warning{Line: line, Message: msg})
	P.opts.Logger().Warn(msg, zap.Int("line", line))
}

//Structure returns the result of the last Parse, or nil before the
//first one.
func (P *Parser) Structure() *Structure {
	return P.structure
}

//Errors returns the per-line errors recorded by the last Parse. The
//parse can still have succeeded: a bad line is skipped, not fatal.
func (P *Parser) Errors() []error {
	return P.errs
}

//Warnings returns the non-fatal diagnostics recorded by the last
//Parse.
func (P *Parser) Warnings() []Warning {
	return P.warns
}

//LinesProcessed returns how many lines the last Parse consumed,
//including the non-record ones.
func (P *Parser) LinesProcessed() int {
	return P.lines
}
