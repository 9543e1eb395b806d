/*
 * main.go, part of biomesh.
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

//pdbinfo parses a PDB file and prints a summary of its contents:
//atom and chain counts, the bounding box, and any records that could
//not be parsed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/biomesh-dev/biomesh"
)

type options struct {
	skipHetatm  bool
	strict      bool
	failOnEmpty bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "pdbinfo FILE",
		Short:         "Summarize the contents of a PDB structure file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.skipHetatm, "skip-hetatm", false, "skip HETATM records instead of parsing them as atoms")
	f.BoolVar(&opts.strict, "strict", false, "fail on elements missing from the atomic data table")
	f.BoolVar(&opts.failOnEmpty, "fail-on-empty", false, "treat a file with no atoms as an error")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-record diagnostics to stderr")
	return cmd
}

func run(cmd *cobra.Command, name string, opts *options) error {
	popts := biomesh.DefaultOptions()
	popts.ParseHetatm(!opts.skipHetatm)
	popts.StrictElements(opts.strict)
	popts.FailOnEmpty(opts.failOnEmpty)
	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		popts.Logger(logger)
	}

	parser := biomesh.NewParser(popts)
	mol, err := parser.ParseFile(name)
	if err != nil {
		return err
	}
	if mol.Header != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Header: %s\n", mol.Header)
	}
	if mol.Title != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Title: %s\n", mol.Title)
	}
	fmt.Fprint(cmd.OutOrStdout(), parser.Report())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pdbinfo: %v\n", err)
		os.Exit(1)
	}
}
