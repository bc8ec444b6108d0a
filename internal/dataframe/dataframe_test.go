package dataframe

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInfersColumnTypes(t *testing.T) {
	frame, err := Read(strings.NewReader("team,rank,pts\nLAL,3,24.333\nBOS,1,10.667\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"team", "rank", "pts"}, frame.Columns)
	assert.Equal(t, TypeString, frame.Types["team"])
	assert.Equal(t, TypeInt, frame.Types["rank"])
	assert.Equal(t, TypeFloat, frame.Types["pts"])
	require.Len(t, frame.Rows, 2)

	num, ok := frame.Rows[0]["pts"].Float()
	assert.True(t, ok)
	assert.InDelta(t, 24.333, num, 1e-9)

	_, ok = frame.Rows[0]["team"].Float()
	assert.False(t, ok)
}

func TestReadSkipsEmptyValuesDuringInference(t *testing.T) {
	frame, err := Read(strings.NewReader("team,pts\nLAL,\nBOS,10.5\n"))
	require.NoError(t, err)

	assert.Equal(t, TypeFloat, frame.Types["pts"])
}

func TestReadAllEmptyColumnIsString(t *testing.T) {
	frame, err := Read(strings.NewReader("team,pts\nLAL,\nBOS,\n"))
	require.NoError(t, err)

	assert.Equal(t, TypeString, frame.Types["pts"])
}

func TestReadRaggedRecord(t *testing.T) {
	_, err := Read(strings.NewReader("a,b,c\n1,2\n"))
	assert.Error(t, err)
}

func TestReadEmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func TestHasColumnAndColumn(t *testing.T) {
	frame, err := Read(strings.NewReader("team,pts\nLAL,24.3\nBOS,10.7\n"))
	require.NoError(t, err)

	assert.True(t, frame.HasColumn("pts"))
	assert.False(t, frame.HasColumn("reb"))

	cells := frame.Column("team")
	require.Len(t, cells, 2)
	assert.Equal(t, "LAL", cells[0].String())
	assert.Equal(t, "BOS", cells[1].String())
}

func TestCellMarshalJSON(t *testing.T) {
	row := Row{
		"team": Cell{Raw: "LAL", Type: TypeString},
		"pts":  Cell{Raw: "24.3", Num: 24.3, Type: TypeFloat},
		"rank": Cell{Raw: "3", Num: 3, Type: TypeInt},
	}

	out, err := json.Marshal(row)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "LAL", decoded["team"])
	assert.Equal(t, 24.3, decoded["pts"])
	assert.Equal(t, float64(3), decoded["rank"])
}
