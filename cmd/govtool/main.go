// Copyright 2025 The govcore Authors
// This file is part of the govcore library.
//
// The govcore library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The govcore library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the govcore library. If not, see <http://www.gnu.org/licenses/>.

// govtool is an operator utility for the govcore governance engine. It
// answers the questions that come up while preparing or triaging proposals:
// which selectors the guard refuses, and how many votes a quorum needs.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/govchain-labs/govcore/governance"
)

func main() {
	app := &cli.App{
		Name:  "govtool",
		Usage: "operator utilities for the govcore governance engine",
		Commands: []*cli.Command{
			{
				Name:   "selectors",
				Usage:  "print the protected self-administration function selectors",
				Action: printSelectors,
			},
			{
				Name:  "quorum",
				Usage: "compute the required vote count for a quorum configuration",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "voters", Usage: "total eligible voters", Required: true},
					&cli.Uint64Flag{Name: "percent", Usage: "quorum percentage (0-100)", Required: true},
				},
				Action: printQuorum,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSelectors(_ *cli.Context) error {
	for _, fn := range governance.ProtectedFunctions() {
		fmt.Printf("0x%s  %s\n", hex.EncodeToString(fn.Selector[:]), fn.Signature)
	}
	return nil
}

func printQuorum(ctx *cli.Context) error {
	voters := ctx.Uint64("voters")
	percent := ctx.Uint64("percent")
	if percent > 100 {
		return fmt.Errorf("percent must not exceed 100, got %d", percent)
	}
	required := governance.RequiredQuorumVotes(voters, percent)
	fmt.Printf("required combined votes: %d (of %d voters at %d%%)\n", required, voters, percent)
	return nil
}
