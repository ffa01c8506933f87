package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/giftflow/builder"
	"github.com/katalvlaran/giftflow/flow"
)

var (
	fourPresents = filepath.Join("..", "..", "problem", "testdata", "four_presents.yaml")
	fivePresents = filepath.Join("..", "..", "problem", "testdata", "five_presents.yaml")
)

const single = `
items: [{name: p1, quantity: 1}]
recipients: [{name: c1, wishlist: [p1], max_allotment: 1}]
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func decodeReport(t *testing.T, s string) report {
	t.Helper()
	var rep report
	require.NoError(t, json.Unmarshal([]byte(s), &rep))

	return rep
}

func TestSolveTextFromStdin(t *testing.T) {
	out, _, err := execute(t, single, "solve", "-")
	require.NoError(t, err)
	require.Equal(t, `value: 1
cost: 0
edges:
  Source -> p1 with 1/1
  p1 -> c1 with 1/1
  c1 -> Sink with 1/1
paths:
  Source -> p1 -> c1 -> Sink with 1
`, out)
}

func TestSolveFilePairCapacityModes(t *testing.T) {
	out, _, err := execute(t, "", "solve", fourPresents, "--format", "json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	require.Equal(t, int64(5), rep.Value)
	require.Equal(t, modeMaxFlow, rep.Mode)
	require.NotEmpty(t, rep.RunID)

	out, _, err = execute(t, "", "solve", fourPresents, "--format", "json", "--allotment-pairs")
	require.NoError(t, err)
	require.Equal(t, int64(6), decodeReport(t, out).Value)
}

func TestSolveMinCostFromEnv(t *testing.T) {
	t.Setenv("GIFTFLOW_MODE", modeMinCost)
	t.Setenv("GIFTFLOW_RANK_COST", "linear")
	t.Setenv("GIFTFLOW_ALLOTMENT_PAIRS", "true")

	out, _, err := execute(t, "", "solve", "--input", fivePresents, "-f", "json")
	require.NoError(t, err)
	rep := decodeReport(t, out)
	require.Equal(t, modeMinCost, rep.Mode)
	require.Equal(t, int64(9), rep.Value)

	var sum int64
	for _, p := range rep.Paths {
		require.Equal(t, "Source", p.Nodes[0])
		require.Equal(t, "Sink", p.Nodes[len(p.Nodes)-1])
		sum += p.Amount
	}
	require.Equal(t, rep.Value, sum)

	var cost int64
	for _, e := range rep.Edges {
		cost += e.Flow * e.Cost
	}
	require.Equal(t, rep.Cost, cost)
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv("GIFTFLOW_FORMAT", "json")
	out, _, err := execute(t, single, "solve", "-", "--format", "text")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "value: 1\n"))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "giftflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nallotment-pairs: true\nmode: mincost\n"), 0o600))

	out, _, err := execute(t, "", "solve", fivePresents, "--config", path)
	require.NoError(t, err)
	rep := decodeReport(t, out)
	require.Equal(t, modeMinCost, rep.Mode)
	require.Equal(t, int64(9), rep.Value)
}

func TestEnvFile(t *testing.T) {
	t.Setenv("GIFTFLOW_FORMAT", "")
	require.NoError(t, os.Unsetenv("GIFTFLOW_FORMAT"))

	path := filepath.Join(t.TempDir(), "giftflow.env")
	require.NoError(t, os.WriteFile(path, []byte("GIFTFLOW_FORMAT=json\n"), 0o600))

	out, _, err := execute(t, single, "solve", "-", "--env-file", path)
	require.NoError(t, err)
	require.Equal(t, int64(1), decodeReport(t, out).Value)

	_, _, err = execute(t, single, "solve", "-", "--env-file", filepath.Join(t.TempDir(), "none.env"))
	require.ErrorContains(t, err, "env file")
}

func TestSolveErrors(t *testing.T) {
	_, _, err := execute(t, "", "solve")
	require.ErrorContains(t, err, "invalid configuration")

	_, _, err = execute(t, single, "solve", "-", "--mode", "simplex")
	require.ErrorContains(t, err, "invalid configuration")

	_, _, err = execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	unknown := "items: [{name: p1, quantity: 1}]\nrecipients: [{name: c1, wishlist: [p9], max_allotment: 1}]\n"
	_, _, err = execute(t, unknown, "solve", "-")
	require.True(t, errors.Is(err, builder.ErrUnknownReference), "got %v", err)

	out, _, err := execute(t, unknown, "solve", "-", "--ignore-unknown")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "value: 0\n"))

	_, _, err = execute(t, "", "solve", fivePresents, "--max-augmentations", "1")
	require.True(t, errors.Is(err, flow.ErrResourceExhausted), "got %v", err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, runID, err := newLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, runID, rec["run_id"])

	_, _, err = newLogger(&buf, "loud", "text")
	require.Error(t, err)
	_, _, err = newLogger(&buf, "info", "xml")
	require.Error(t, err)
}
