// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDIMACS writes clauses in the DIMACS CNF format used by essentially
// every SAT solver's file-based interface: a "p cnf <vars> <clauses>"
// header followed by one line per clause, each a space-separated list of
// signed literals terminated by a 0.
func WriteDIMACS(w io.Writer, clauses [][]int, numVars int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, lit := range clause {
			if _, err := bw.WriteString(strconv.Itoa(lit)); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('0'); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
