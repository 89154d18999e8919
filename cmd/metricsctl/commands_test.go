package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (map[string]any, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	var res map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &res), out.String())
	return res, nil
}

func TestProgressCommand(t *testing.T) {
	res, err := run(t, "", "progress", "--start", "2025-01-01", "--end", "2025-01-11", "--now", "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, 50.0, res["percent"])

	_, err = run(t, "", "progress", "--start", "2025-01-01", "--end", "later", "--now", "2025-01-06")
	assert.Error(t, err)

	_, err = run(t, "", "progress", "--start", "2025-01-01")
	assert.Error(t, err)
}

func TestLabelCommand(t *testing.T) {
	res, err := run(t, "", "label", "applicationStatus", "pending")
	require.NoError(t, err)
	assert.Equal(t, "En attente", res["label"])

	res, err = run(t, "", "label", "applicationStatus", "bogus")
	require.NoError(t, err)
	assert.Equal(t, "Inconnu", res["label"])
	assert.Equal(t, "default", res["color"])
}

func TestCourseCommandFromStdin(t *testing.T) {
	res, err := run(t, `{"status":"finished","hours":[{"hours_completed":2},{"hours_completed":"x"},{"hours_completed":3}]}`, "course")
	require.NoError(t, err)
	assert.Equal(t, 5.0, res["hours"].(map[string]any)["cumulative"])
	assert.Equal(t, "Terminé", res["status"].(map[string]any)["label"])
}

func TestDashboardCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"year": {"name": "2024-2025", "status": "progress", "start_date": "2025-01-01", "end_date": "2025-01-11"},
		"enrollment": {"status": "disabled", "enrollment_fees": "unpaid"}
	}`), 0o600))

	res, err := run(t, "", "dashboard", "--file", path, "--now", "2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, 50.0, res["year"].(map[string]any)["progress"])
	assert.Equal(t, "Désactivé", res["enrollment"].(map[string]any)["label"])
}

func TestCourseCommandBadJSON(t *testing.T) {
	_, err := run(t, `{"status":`, "course")
	assert.Error(t, err)
}

func TestBadNowFlag(t *testing.T) {
	_, err := run(t, "", "label", "feeStatus", "paid", "--now", "tomorrow")
	assert.Error(t, err)
}
