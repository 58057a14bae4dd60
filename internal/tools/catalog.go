// Package tools holds the static tool catalog advertised to the downstream
// LLM server, plus local implementations for direct invocation. The catalog
// is built once at startup and never mutated; the downstream server runs its
// own tool-calling loop against the advertised schemas.
package tools

import (
	"errors"
	"fmt"

	"github.com/davral/llmrelay/internal/llm"
)

var (
	// ErrNotFound is returned when a tool name is not in the catalog.
	ErrNotFound = errors.New("tool not found")

	// ErrInvalidParams is returned when invocation parameters are missing
	// or have the wrong type.
	ErrInvalidParams = errors.New("invalid tool parameters")
)

// Result is a tool invocation result. Its shape is determined by the tool:
// failures inside a tool are reported as data (an "error" key), keeping
// every tool's contract total.
type Result map[string]any

// Tool is one entry in the closed catalog: a schema for the downstream
// server and a local implementation for direct invocation.
type Tool interface {
	// Definition returns the schema advertised to the downstream server.
	Definition() llm.ToolDefinition

	// Invoke runs the tool locally. An error return means the parameters
	// were unusable; runtime failures are encoded in the Result instead.
	Invoke(params map[string]any) (Result, error)
}

// Catalog is the fixed set of tools, keyed by unique name. Read-only after
// construction.
type Catalog struct {
	order  []Tool
	byName map[string]Tool
}

// NewCatalog builds the static catalog. Tool names are unique and exactly
// match the dispatch set used by Execute.
func NewCatalog() *Catalog {
	c := &Catalog{byName: make(map[string]Tool)}
	c.register(datetimeTool{})
	c.register(calculatorTool{})
	return c
}

func (c *Catalog) register(t Tool) {
	name := t.Definition().Name
	if _, exists := c.byName[name]; exists {
		panic(fmt.Sprintf("tools: duplicate tool name %q", name))
	}
	c.order = append(c.order, t)
	c.byName[name] = t
}

// Definitions returns all tool schemas in registration order.
func (c *Catalog) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(c.order))
	for _, t := range c.order {
		defs = append(defs, t.Definition())
	}
	return defs
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Execute looks up a tool by name and invokes it with the given parameters.
// Unknown names fail with ErrNotFound before any execution; parameter
// problems surface as ErrInvalidParams.
func (c *Catalog) Execute(name string, params map[string]any) (Result, error) {
	t, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	res, err := t.Invoke(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return res, nil
}
