package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type SATSolution []int64

type SAT struct {
	Comment   string // Written as the first line of the DIMACS output
	Variables uint64
	Clauses   [][]int64
}

// WriteDIMACS writes the instance in DIMACS-CNF format:
//
//	c <comment>
//	p cnf <variables> <clauses>
//	<literal> <literal> ... 0
func (s SAT) WriteDIMACS(w io.Writer) error {
	writer := bufio.NewWriter(w)

	// A line break inside the comment would end the comment line
	comment := strings.NewReplacer("\r", " ", "\n", " ").Replace(s.Comment)
	fmt.Fprintf(writer, "c %s\n", comment)
	fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses))

	buffer := make([]byte, 0, 24)
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			buffer = strconv.AppendInt(buffer[:0], literal, 10)
			buffer = append(buffer, ' ')
			writer.Write(buffer)
		}
		writer.WriteString("0\n")
	}

	// Write errors are sticky, Flush reports the first one
	return writer.Flush()
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder) // Writing into a strings.Builder never fails
	return builder.String()
}

// Positives returns the literals of the solution asserted true
func Positives(solution SATSolution) []int64 {
	positives := make([]int64, 0, len(solution)/2)
	for _, literal := range solution {
		if literal > 0 {
			positives = append(positives, literal)
		}
	}
	return positives
}

// WriteSolution writes a solver result in the SAT-competition output format: an "s" status line followed, when
// satisfiable, by a single "v" line terminated by 0. A nil solution stands for an unsatisfiable instance
func WriteSolution(w io.Writer, solution SATSolution) error {
	writer := bufio.NewWriter(w)
	if solution == nil {
		writer.WriteString("s UNSATISFIABLE\n")
		return writer.Flush()
	}

	writer.WriteString("s SATISFIABLE\nv")
	buffer := make([]byte, 0, 24)
	for _, literal := range solution {
		buffer = strconv.AppendInt(append(buffer[:0], ' '), literal, 10)
		writer.Write(buffer)
	}
	writer.WriteString(" 0\n")
	return writer.Flush()
}
