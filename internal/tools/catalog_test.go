package tools

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDefinitions(t *testing.T) {
	c := NewCatalog()
	defs := c.Definitions()

	require.Len(t, defs, 2)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "get_current_datetime", defs[0].Name)
	assert.Equal(t, "calculator", defs[1].Name)

	// schema names are unique and match the dispatch set
	seen := map[string]bool{}
	for _, d := range defs {
		assert.False(t, seen[d.Name], "duplicate tool name %q", d.Name)
		seen[d.Name] = true

		_, err := c.Execute(d.Name, map[string]any{"expression": "1"})
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestCatalogSchemaWireShape(t *testing.T) {
	defs := NewCatalog().Definitions()

	// the datetime schema must serialize with empty (not null)
	// properties and required, as the downstream server expects
	raw, err := json.Marshal(defs[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "get_current_datetime",
		"description": "Returns the current date and time in ISO 8601 format",
		"parameters": {"type": "object", "properties": {}, "required": []}
	}`, string(raw))

	raw, err = json.Marshal(defs[1])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"required":["expression"]`)
}

func TestExecuteUnknownTool(t *testing.T) {
	c := NewCatalog()
	_, err := c.Execute("nonexistent", map[string]any{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecuteDatetime(t *testing.T) {
	c := NewCatalog()
	res, err := c.Execute("get_current_datetime", map[string]any{})
	require.NoError(t, err)

	s, ok := res["datetime"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339Nano, s)
	assert.NoError(t, err)
}

func TestDatetimeMonotonic(t *testing.T) {
	c := NewCatalog()

	first, err := c.Execute("get_current_datetime", nil)
	require.NoError(t, err)
	second, err := c.Execute("get_current_datetime", nil)
	require.NoError(t, err)

	t1, err := time.Parse(time.RFC3339Nano, first["datetime"].(string))
	require.NoError(t, err)
	t2, err := time.Parse(time.RFC3339Nano, second["datetime"].(string))
	require.NoError(t, err)
	assert.False(t, t2.Before(t1))
}

func TestExecuteCalculator(t *testing.T) {
	c := NewCatalog()

	res, err := c.Execute("calculator", map[string]any{"expression": "2+2"})
	require.NoError(t, err)
	assert.Equal(t, Result{"result": float64(4)}, res)

	res, err = c.Execute("calculator", map[string]any{"expression": "10/0"})
	require.NoError(t, err)
	assert.Equal(t, Result{"error": "division by zero"}, res)
}

func TestCalculatorRejectsForeignCharacters(t *testing.T) {
	c := NewCatalog()

	for _, expr := range []string{"import os", "2+2; rm -rf /", "1^2", "abs(1)", "0x10"} {
		res, err := c.Execute("calculator", map[string]any{"expression": expr})
		require.NoError(t, err, expr)
		assert.Equal(t, Result{"error": "Invalid expression"}, res, expr)
	}
}

func TestCalculatorInvalidParams(t *testing.T) {
	c := NewCatalog()

	_, err := c.Execute("calculator", map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = c.Execute("calculator", map[string]any{"expression": 42})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = c.Execute("calculator", nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
}
