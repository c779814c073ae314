// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), a data structure used to represent Boolean functions over a
fixed set of variables and to compile pseudo-Boolean (weighted cardinality)
constraints down to the same representation.

Basics

A Builder owns a hash-consed table of nodes. Every node is either a terminal
(the Boolean constants True and False) or an internal triple (choice, high,
low), where choice is a variable index and high/low are the subdiagrams
reached when that variable is true or false. Two structurally identical
triples are always the same Node inside one Builder: this is what makes
identity comparison, rather than deep structural comparison, a valid way to
test Boolean equivalence.

Operations

Variable returns the elementary diagram for a single variable. Not, And, Or,
Xor and Ite build new diagrams out of existing ones, by construction already
reduced and hash-consed. Restrict substitutes a concrete value for one
variable, eliminating it from the support of the result.
PseudoBooleanConstraint compiles a two-sided linear inequality over weighted
Boolean terms into an equivalent diagram.

A Builder is not safe for concurrent use: any call that may allocate a node
must be externally serialized by the caller. Nodes, once returned, are
immutable and may be freely read from any goroutine.

CNF and SAT dispatch

This package is deliberately silent about Boolean satisfiability: solving a
diagram is a separate concern, handled by sibling packages. Package cnf
Tseitin-encodes any diagram produced here into a clause set; package satsolver
dispatches that clause set to a SAT backend, either an external process
speaking the traditional exit-code-10/20 DIMACS convention or the embedded
solver gini.
*/
package robdd
