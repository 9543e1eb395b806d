/*
 * report.go, part of biomesh.
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
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/biomesh-dev/biomesh/geo"
)

//Report summarizes the outcome of a parse: what was read, how it is
//laid out in space, and what went wrong along the way.
type Report struct {
	Atoms       int
	Lines       int
	ChainCounts map[string]int
	Bounds      geo.Box
	MeanBfactor float64
	Warnings    []Warning
	Errors      []error
}

//Report builds a summary from the last Parse. Calling it before any
//Parse yields an empty report.
func (P *Parser) Report() *Report {
	S := P.structure
	if S == nil {
		S = NewStructure()
	}
	counts := make(map[string]int)
	bfacs := make([]float64, 0, S.Len())
	for _, at := range S.Atoms() {
		counts[at.Chain]++
		bfacs = append(bfacs, at.Bfactor)
	}
	mean := 0.0
	if len(bfacs) > 0 {
		mean = floats.Sum(bfacs) / float64(len(bfacs))
	}
	return &Report{
		Atoms:       S.Len(),
		Lines:       P.lines,
		ChainCounts: counts,
		Bounds:      S.BoundingBox(),
		MeanBfactor: mean,
		Warnings:    P.warns,
		Errors:      P.errs,
	}
}

//String renders the report as a short human-readable summary.
func (R *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Atoms parsed: %d (from %d lines)\n", R.Atoms, R.Lines)
	if len(R.ChainCounts) > 0 {
		ids := make([]string, 0, len(R.ChainCounts))
		for id := range R.ChainCounts {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		fmt.Fprintf(&b, "Chains: %d\n", len(ids))
		for _, id := range ids {
			label := id
			if label == "" {
				label = "(blank)"
			}
			fmt.Fprintf(&b, "  %s: %d atoms\n", label, R.ChainCounts[id])
		}
	}
	if !R.Bounds.IsEmpty() {
		min, max := R.Bounds.Min(), R.Bounds.Max()
		c := R.Bounds.Center()
		fmt.Fprintf(&b, "Bounding box:\n")
		fmt.Fprintf(&b, "  X: [%.3f, %.3f]  Y: [%.3f, %.3f]  Z: [%.3f, %.3f]\n",
			min.X, max.X, min.Y, max.Y, min.Z, max.Z)
		fmt.Fprintf(&b, "  center: (%.3f, %.3f, %.3f)  volume: %.3f\n", c.X, c.Y, c.Z, R.Bounds.Volume())
	}
	if R.Atoms > 0 {
		fmt.Fprintf(&b, "Mean temperature factor: %.2f\n", R.MeanBfactor)
	}
	if len(R.Errors) > 0 {
		fmt.Fprintf(&b, "Skipped records: %d\n", len(R.Errors))
	}
	if len(R.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings: %d\n", len(R.Warnings))
	}
	return b.String()
}
