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

const prenatalJSON = `{
	"patient": {"first_name": "Maria", "last_name": "Cruz"},
	"form_date": "2025-06-01"
}`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestFormgen_PrenatalPDF(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(input, []byte(prenatalJSON), 0o644))

	path, err := execute(t, "", "prenatal", "--input", input, "--out", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Prenatal_Form_Maria_Cruz_2025-06-01.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestFormgen_PayloadFromStdin(t *testing.T) {
	out, err := execute(t, prenatalJSON, "prenatal", "--format", "payload")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "prenatal_form", payload["document_type"])
	assert.Equal(t, "Prenatal_Form_Maria_Cruz_2025-06-01", payload["title"])
}

func TestFormgen_LaborCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := execute(t, `{"patient": {"first_name": "Maria", "last_name": "Cruz"}, "entries": [{"pulse": 88}]}`,
		"labor", "--format", "csv", "--out", dir)
	require.NoError(t, err)

	assert.Equal(t, ".csv", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ",,,88,,,\n")
}

func TestFormgen_MissingSubject(t *testing.T) {
	_, err := execute(t, `{}`, "referral", "--out", t.TempDir())
	assert.ErrorIs(t, err, errMissingSubject)
}

func TestFormgen_DeliverWithoutEndpoint(t *testing.T) {
	_, err := execute(t, prenatalJSON, "prenatal", "--deliver")
	assert.Error(t, err)
}
