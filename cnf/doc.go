// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

// Package cnf maps a robdd.Node onto an equisatisfiable propositional
// formula in conjunctive normal form, using the Tseitin transformation: one
// fresh variable per visited diagram node, four clauses encoding that
// variable's if-then-else relation to its children, and one more source
// variable per distinct choice the diagram tests. A node whose children are
// the two constants gets no variable of its own: it is represented by its
// source variable's literal, positive or negated. The result can be handed
// to any SAT solver operating on DIMACS-numbered literals; see package
// satsolver for two such solvers.
package cnf
