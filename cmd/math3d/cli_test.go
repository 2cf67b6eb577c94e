package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJob(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the command tree with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&app{logger: zap.NewNop()})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const threeByThree = `
matrix:
  - [2, 1, 3]
  - [-3, -1, 2]
  - [1, 2, 4]
`

func TestDetCommand(t *testing.T) {
	path := writeJob(t, "m.yaml", threeByThree)
	out, err := execute(t, "det", path)
	require.NoError(t, err)
	require.Equal(t, "-17\n", out)
}

func TestDetCommand_Singular(t *testing.T) {
	path := writeJob(t, "s.yaml", "matrix: [[1, 2], [2, 4]]\n")
	out, err := execute(t, "det", path)
	require.EqualError(t, err, "1 of 1 jobs failed")
	require.Contains(t, out, "matrix: singular matrix")
}

func TestInverseCommand_Formatting(t *testing.T) {
	path := writeJob(t, "i.yaml", "matrix: [[4, 7], [2, 6]]\n")
	out, err := execute(t, "inverse", "--width", "6", "--precision", "2", path)
	require.NoError(t, err)
	require.Equal(t, "  0.60  -0.70\n -0.20   0.40\n", out)
}

func TestSolveCommand(t *testing.T) {
	path := writeJob(t, "sys.yaml", "matrix: [[2, 1], [1, 3]]\nvector: [5, 5]\n")
	out, err := execute(t, "solve", path)
	require.NoError(t, err)
	require.Equal(t, "[2, 1]\n", out)
}

func TestTransposeCommand_MultiDocument(t *testing.T) {
	path := writeJob(t, "t.yaml",
		"name: a\nmatrix: [[1, 2], [3, 4]]\n---\nname: b\norder: column-major\nmatrix: [[1, 2], [3, 4]]\n")
	out, err := execute(t, "transpose", "--width", "1", "--precision", "0", path)
	require.NoError(t, err)
	require.Equal(t, "== a ==\n1 3\n2 4\n== b ==\n1 2\n3 4\n", out)
}

func TestTriangularizeCommand(t *testing.T) {
	path := writeJob(t, "u.yaml", "matrix: [[1, 2], [3, 4]]\n")
	out, err := execute(t, "triangularize", "--width", "4", "--precision", "1", path)
	require.NoError(t, err)
	require.Equal(t, " 3.0  4.0\n 0.0  0.7\nswaps: 1\n", out)
}

func TestRunCommand(t *testing.T) {
	first := writeJob(t, "batch.yaml", `
name: det
operation: det
matrix: [[1, 2], [3, 4]]
---
name: solve
operation: solve
matrix: [[2, 1], [1, 3]]
vector: [5, 5]
`)
	second := writeJob(t, "bad.yaml", "operation: inverse\nmatrix: [[1, 2], [2, 4]]\n")

	out, err := execute(t, "run", "--jobs", "2", first, second)
	require.EqualError(t, err, "1 of 3 jobs failed")
	require.Contains(t, out, "== det (det) ==\n-2\n")
	require.Contains(t, out, "== solve (solve) ==\n[2, 1]\n")
	require.Contains(t, out, "== bad (inverse) ==\nerror: job \"bad\": matrix: matrix not invertible")
}

func TestRunCommand_RequiresOperation(t *testing.T) {
	path := writeJob(t, "noop.yaml", "matrix: [[1, 0], [0, 1]]\n")
	_, err := execute(t, "run", path)
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeJob(t, "math3d.yaml", "output:\n  width: 3\n  precision: 0\n")
	path := writeJob(t, "id.yaml", "matrix: [[1, 0], [0, 1]]\n")
	out, err := execute(t, "--config", cfg, "transpose", path)
	require.NoError(t, err)
	require.Equal(t, "  1   0\n  0   1\n", out)

	bad := writeJob(t, "bad.yaml", "output:\n  width: 0\n")
	_, err = execute(t, "--config", bad, "transpose", path)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "det", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "failed to read job file")
}
