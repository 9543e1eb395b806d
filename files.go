/*
 * files.go, part of biomesh.
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
	"fmt"
	"io"
	"os"
)

//ParseFile reads the named PDB file and parses its contents. A
//failure to read the file is returned as a *FileError; parse errors
//follow the same rules as Parse.
func (P *Parser) ParseFile(name string) (*Structure, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, &FileError{Name: name, Err: err}
	}
	return P.Parse(string(data))
}

//ReadPDBFile parses the named PDB file with the given options (nil
//means DefaultOptions). It is a convenience wrapper for callers that
//don't need the parser's diagnostics afterwards.
func ReadPDBFile(name string, opts *Options) (*Structure, error) {
	return NewParser(opts).ParseFile(name)
}

//WritePDB writes S to out in PDB format. Chains are separated with
//TER records and the output is closed with END. Atom names longer
//than 4 characters can't be placed in the fixed columns and make the
//write fail.
func WritePDB(out io.Writer, S *Structure) error {
	if S == nil {
		return fmt.Errorf("WritePDB: nil structure")
	}
	if _, err := fmt.Fprint(out, "REMARK     WRITTEN WITH BIOMESH\n"); err != nil {
		return err
	}
	chainprev := ""
	if S.Len() > 0 {
		chainprev = S.Atom(0).Chain
	}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		if at.Chain != chainprev {
			if _, err := fmt.Fprintln(out, "TER"); err != nil {
				return err
			}
			chainprev = at.Chain
		}
		first := "ATOM"
		if at.Het {
			first = "HETATM"
		}
		chain := at.Chain
		if chain == "" {
			chain = " "
		}
		var err error
		//shorter names get an extra leading blank in the name columns
		if len(at.Name) < 4 {
			_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
				first, at.Serial, at.Name, at.ResName, chain, at.ResSeq,
				at.X, at.Y, at.Z, at.Occupancy, at.Bfactor, at.Symbol)
		} else if len(at.Name) == 4 {
			_, err = fmt.Fprintf(out, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
				first, at.Serial, at.Name, at.ResName, chain, at.ResSeq,
				at.X, at.Y, at.Z, at.Occupancy, at.Bfactor, at.Symbol)
		} else {
			err = fmt.Errorf("WritePDB: atom %d name %q too long for PDB format", at.Serial, at.Name)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(out, "END\n")
	return err
}

//WritePDBFile writes S in PDB format to the named file, which is
//created or truncated.
func WritePDBFile(name string, S *Structure) error {
	f, err := os.Create(name)
	if err != nil {
		return &FileError{Name: name, Err: err}
	}
	defer f.Close()
	return WritePDB(f, S)
}
