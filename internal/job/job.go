// SPDX-License-Identifier: MIT

// Package job decodes YAML job documents (a matrix, an optional vector and
// the operation to run on them) and evaluates them, one at a time or as a
// concurrent batch.
package job

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

var (
	// ErrUnknownOperation is returned for an operation name outside Operations.
	ErrUnknownOperation = errors.New("job: unknown operation")

	// ErrUnknownOrder is returned for an order other than row-major / column-major.
	ErrUnknownOrder = errors.New("job: unknown order")

	// ErrMissingVector is returned when a solve job has no vector.
	ErrMissingVector = errors.New("job: solve requires a vector")

	// ErrMissingMatrix is returned when a job has no matrix rows.
	ErrMissingMatrix = errors.New("job: matrix is empty")
)

// Operation names a computation a job can request.
type Operation string

const (
	OpDeterminant   Operation = "det"
	OpInverse       Operation = "inverse"
	OpSolve         Operation = "solve"
	OpTriangularize Operation = "triangularize"
	OpTranspose     Operation = "transpose"
)

// Operations lists the accepted operation names.
var Operations = []Operation{OpDeterminant, OpInverse, OpSolve, OpTriangularize, OpTranspose}

// Job is one YAML document.
type Job struct {
	Name      string      `yaml:"name"`
	Operation Operation   `yaml:"operation"`
	Order     string      `yaml:"order,omitempty"` // row-major (default) | column-major
	Matrix    [][]float64 `yaml:"matrix"`
	Vector    []float64   `yaml:"vector,omitempty"`
}

// ParseOrder maps "row-major" / "column-major" (or empty) onto matrix.Order.
func ParseOrder(s string) (matrix.Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", matrix.RowMajor.String():
		return matrix.RowMajor, nil
	case matrix.ColumnMajor.String():
		return matrix.ColumnMajor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// Validate checks the operation, order and required operands.
// Shape problems inside the matrix are reported later by Build.
func (j *Job) Validate() error {
	known := false
	for _, op := range Operations {
		if j.Operation == op {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("job %q: %w: %q (valid: %v)", j.Name, ErrUnknownOperation, j.Operation, Operations)
	}
	if _, err := ParseOrder(j.Order); err != nil {
		return fmt.Errorf("job %q: %w", j.Name, err)
	}
	if len(j.Matrix) == 0 {
		return fmt.Errorf("job %q: %w", j.Name, ErrMissingMatrix)
	}
	if j.Operation == OpSolve && len(j.Vector) == 0 {
		return fmt.Errorf("job %q: %w", j.Name, ErrMissingVector)
	}

	return nil
}

// Build constructs the operands. In row-major order every inner list is a
// row; in column-major order every inner list is a column.
func (j *Job) Build() (*matrix.Dense, *vector.Vector, error) {
	order, err := ParseOrder(j.Order)
	if err != nil {
		return nil, nil, fmt.Errorf("job %q: %w", j.Name, err)
	}
	if len(j.Matrix) == 0 {
		return nil, nil, fmt.Errorf("job %q: %w", j.Name, ErrMissingMatrix)
	}
	major, minor := len(j.Matrix), len(j.Matrix[0])
	rows, cols := major, minor
	if order == matrix.ColumnMajor {
		rows, cols = minor, major
	}
	m, err := matrix.NewFromNested(rows, cols, j.Matrix, order)
	if err != nil {
		return nil, nil, fmt.Errorf("job %q: %w", j.Name, err)
	}
	if len(j.Vector) == 0 {
		return m, nil, nil
	}
	v, err := vector.Of(j.Vector...)
	if err != nil {
		return nil, nil, fmt.Errorf("job %q: %w", j.Name, err)
	}

	return m, v, nil
}

// Decode reads every YAML document in r as a Job. Unknown fields are errors.
// Unnamed jobs are named "job-<index>"; documents without an operation get
// defaultOp (pass "" to require one in every document).
func Decode(r io.Reader, defaultOp Operation) ([]*Job, error) {
	return decode(r, defaultOp, func(i int) string { return fmt.Sprintf("job-%d", i) })
}

// LoadFile decodes all job documents in path. Unnamed jobs are named after
// the file: "solve.yaml" gives "solve", then "solve#1", "solve#2", ...
// defaultOp is applied as in Decode.
func LoadFile(path string, defaultOp Operation) ([]*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	jobs, err := decode(bytes.NewReader(data), defaultOp, func(i int) string {
		if i == 0 {
			return base
		}
		return fmt.Sprintf("%s#%d", base, i)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return jobs, nil
}

// decode runs the strict multi-document loop; nameOf supplies missing names.
func decode(r io.Reader, defaultOp Operation, nameOf func(int) string) ([]*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var jobs []*Job
	for {
		j := new(Job)
		err := dec.Decode(j)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse job document %d: %w", len(jobs), err)
		}
		if j.Name == "" {
			j.Name = nameOf(len(jobs))
		}
		if j.Operation == "" {
			j.Operation = defaultOp
		}
		if err := j.Validate(); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}
