// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are declared once in AllTools and bound to typed cms.Client methods
// by the HandlerRegistry.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a cms.Client MCP method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "cms_get_item")
	Name string

	// Method is the client method name without the MCP suffix (e.g., "GetItem")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Summary is the one-line entry shown in the server instructions
	Summary string

	// Category groups tools logically (read, discovery, batch)
	Category string

	// ReadOnly indicates the tool doesn't modify content
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
