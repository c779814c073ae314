// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

// Command robdd is a small demonstration CLI driving the robdd, cnf and
// satsolver packages end to end: it builds a diagram for a canned
// pseudo-Boolean scenario, encodes it to CNF, hands the result to a SAT
// backend, and reports the outcome in the style of a standalone solver
// (exit code 10 for satisfiable, 20 for unsatisfiable).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/cnf"
	"github.com/dalzilio/robdd/satsolver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "robdd",
		Short: "Build, encode and solve pseudo-Boolean constraints over ROBDDs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "logrus level: trace, debug, info, warn, error")

	root.AddCommand(newPBCCmd())
	root.AddCommand(newSolveCmd())
	return root
}

// newPBCCmd wires robdd -> cnf -> satsolver for a canned pseudo-Boolean
// scenario, "pick at most k of n", demonstrating the whole pipeline without
// requiring the
// external expression DSL this CLI stands in for.
func newPBCCmd() *cobra.Command {
	var n, k int
	var backend string

	cmd := &cobra.Command{
		Use:   "pbc",
		Short: "Compile an at-most-k-of-n constraint and solve it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 || k < 0 || k > n {
				return fmt.Errorf("invalid n=%d k=%d: require 0 <= k <= n and n > 0", n, k)
			}

			b := robdd.New(robdd.WithLogger(logrus.NewEntry(logrus.StandardLogger())))
			terms := make([]robdd.Term, n)
			for i := 0; i < n; i++ {
				terms[i] = robdd.Term{Coefficient: 1, Value: b.Variable(i)}
			}
			diagram := b.PseudoBooleanConstraint(terms, 0, k)
			if b.Errored() {
				return b.Err()
			}

			mapper := cnf.NewMapper(b)
			mapper.Assert(diagram)

			bk, err := resolveBackend(backend)
			if err != nil {
				return err
			}
			res, err := bk.Solve(cmd.Context(), mapper.Clauses(), mapper.NumVars())
			if err != nil {
				return err
			}
			printSourceResult(cmd, res, mapper, n)
			if !res.Satisfiable {
				os.Exit(20)
			}
			os.Exit(10)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 4, "number of Boolean variables")
	cmd.Flags().IntVar(&k, "k", 2, "maximum number of variables allowed to be true")
	cmd.Flags().StringVar(&backend, "backend", "gini", "SAT backend: gini or a path to a DIMACS-file solver executable")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "solve <dimacs-file>",
		Short: "Solve a DIMACS CNF file with the selected backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clauses, numVars, err := readDIMACS(args[0])
			if err != nil {
				return err
			}
			bk, err := resolveBackend(backend)
			if err != nil {
				return err
			}
			res, err := bk.Solve(cmd.Context(), clauses, numVars)
			if err != nil {
				return err
			}
			printDimacsResult(cmd, res, numVars)
			if !res.Satisfiable {
				os.Exit(20)
			}
			os.Exit(10)
			return nil
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "gini", "SAT backend: gini or a path to a DIMACS-file solver executable")
	return cmd
}

func resolveBackend(name string) (satsolver.Backend, error) {
	if name == "gini" {
		return &satsolver.GiniBackend{Logger: logrus.NewEntry(logrus.StandardLogger())}, nil
	}
	if name == "" {
		return nil, fmt.Errorf("empty --backend")
	}
	return &satsolver.ExecBackend{Path: name, Logger: logrus.NewEntry(logrus.StandardLogger())}, nil
}

// printSourceResult prints a pbc result in terms of the n original source
// variables, projecting the DIMACS model back through mapper rather than
// printing raw gate-variable indices.
func printSourceResult(cmd *cobra.Command, res *satsolver.Result, mapper *cnf.Mapper, n int) {
	if !res.Satisfiable {
		color.New(color.FgRed, color.Bold).Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "SATISFIABLE")
	source := mapper.ProjectModel(res.Model)
	for i := 0; i < n; i++ {
		fmt.Fprintf(cmd.OutOrStdout(), "  x%d = %v\n", i, source[i])
	}
}

// printDimacsResult prints a solve result in terms of raw DIMACS variables,
// iterating up to numVars rather than len(res.Model) since a don't-care
// variable an ExecBackend never mentions is absent from the model map.
func printDimacsResult(cmd *cobra.Command, res *satsolver.Result, numVars int) {
	if !res.Satisfiable {
		color.New(color.FgRed, color.Bold).Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "SATISFIABLE")
	for v := 1; v <= numVars; v++ {
		fmt.Fprintf(cmd.OutOrStdout(), "  %d = %v\n", v, res.Model[v])
	}
}

func readDIMACS(path string) ([][]int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var clauses [][]int
	var numVars int
	var cur []int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			continue
		case 'p':
			fmt.Sscanf(line, "p cnf %d", &numVars)
			continue
		}
		for _, field := range strings.Fields(line) {
			lit, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, fmt.Errorf("parsing DIMACS literal %q: %w", field, err)
			}
			if lit == 0 {
				clauses = append(clauses, cur)
				cur = nil
				continue
			}
			cur = append(cur, lit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if len(cur) > 0 {
		clauses = append(clauses, cur)
	}
	return clauses, numVars, nil
}
