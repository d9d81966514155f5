// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package selfcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSheet = `
cases:
  - name: all tens
    op: pairsum
    args: [10, 10, 10]
    want: true
  - name: one to six
    op: sum
    args: [1, 2, 3, 4, 5, 6]
    want: 21
  - name: absent list
    op: sum
    want: 0
  - name: null name
    op: person
    person:
      name: null
      age: 1
    want: {name: Unknown, age: 1}
  - name: tab name
    op: person
    person:
      name: "\t"
      age: 0
    want:
      name: Unknown
      age: 0
`

func TestParseSheet(t *testing.T) {
	cases, err := ParseSheet([]byte(sampleSheet))
	require.NoError(t, err)
	require.Len(t, cases, 5)

	assert.Equal(t, OpPairSum, cases[0].Op)
	assert.Equal(t, []int{10, 10, 10}, cases[0].Args)
	assert.Equal(t, "true", cases[0].Want.String())

	assert.Equal(t, "21", cases[1].Want.Scalar)
	assert.Nil(t, cases[2].Args)

	require.NotNil(t, cases[3].Person)
	assert.Nil(t, cases[3].Person.Name)
	require.NotNil(t, cases[3].Want.Person)
	assert.Equal(t, "Unknown", cases[3].Want.Person.Name)

	require.NotNil(t, cases[4].Person.Name)
	assert.Equal(t, "\t", *cases[4].Person.Name)

	report := Run(cases)
	assert.True(t, report.OK())
}

func TestParseSheet_Errors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantErr     error
		errContains string
	}{
		{
			name:    "no cases",
			data:    "cases: []\n",
			wantErr: ErrEmptySheet,
		},
		{
			name:    "empty document",
			data:    "",
			wantErr: ErrEmptySheet,
		},
		{
			name:        "invalid yaml",
			data:        "cases: [\n",
			errContains: "failed to parse case sheet",
		},
		{
			name: "want is a list",
			data: `
cases:
  - name: bad
    op: add
    args: [1, 2]
    want: [3]
`,
			errContains: "want must be a scalar or a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSheet([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestParseSheet_ScalarWantIsAValue(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args string
		want string
	}{
		{"hex int", "sum", "[1, 2, 3, 4, 5, 6]", "0x15"},
		{"signed int", "sum", "[1, 2, 3, 4, 5, 6]", "+21"},
		{"capitalised bool", "pairsum", "[10, 10, 10]", "True"},
		{"upper-case bool", "pairsum", "[15, 15, 15]", "FALSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := fmt.Sprintf("cases:\n  - name: %s\n    op: %s\n    args: %s\n    want: %s\n",
				tt.name, tt.op, tt.args, tt.want)

			cases, err := ParseSheet([]byte(data))
			require.NoError(t, err)

			report := Run(cases)
			require.Len(t, report.Results, 1)
			res := report.Results[0]
			assert.True(t, res.Pass, "got %s, want %s", res.Got, res.Case.Want)
		})
	}
}

func TestParseSheet_NonValueScalarWant(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"quoted number", `"21"`},
		{"word", "twenty-one"},
		{"float", "21.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "cases:\n  - name: bad\n    op: sum\n    args: [21]\n    want: " + tt.want + "\n"

			_, err := ParseSheet([]byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadArgs)
		})
	}
}

func TestLoadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSheet), 0644))

	cases, err := LoadSheet(path)
	require.NoError(t, err)
	assert.Len(t, cases, 5)

	_, err = LoadSheet(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read case sheet")
}
