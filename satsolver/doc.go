// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

// Package satsolver runs a DIMACS-numbered CNF formula, such as one
// produced by package cnf, through a SAT solver and reports the result.
// Two Backend implementations are provided: ExecBackend shells out to any
// solver executable speaking the standard DIMACS-file and exit-code
// convention (10 = satisfiable, 20 = unsatisfiable), and GiniBackend links
// an embedded solver in-process via github.com/go-air/gini.
package satsolver
