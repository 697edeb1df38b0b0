package tools

import (
	"fmt"
	"strings"
)

// AllTools contains all tool specifications for the Notion CMS MCP server.
// Tool descriptions follow a structured format for LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// DISCOVERY TOOLS
	// ==========================================================================
	{
		Name:     "cms_get_index",
		Method:   "GetIndex",
		Title:    "Get Content Index",
		Summary:  "Slugs, titles and URLs of every item (start here)",
		Category: "discovery",
		Description: `Get a lightweight index of every item in the collection: slug, title and URL only.

USE WHEN: User asks "what posts are there", "list the pages", "which slugs exist", or you need a slug before fetching an item.

NOT FOR: Reading item content (use cms_get_item or cms_batch_get_items).

PARAMETERS:
- format: "array" (default) for an ordered list, "object" for a map keyed by slug

RETURNS: The index in the format the server returned, plus an entry count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "cms_get_schema",
		Method:   "GetSchema",
		Title:    "Get Collection Schema",
		Summary:  "Field names and types of the collection",
		Category: "discovery",
		Description: `Get the field schema of the collection: each field name and its type descriptor.

USE WHEN: User asks "what fields does a post have", "what is the type of X", or before filtering list results by field.

NOT FOR: Reading field values (use cms_list_items or cms_get_item).

PARAMETERS: none

RETURNS: Field names mapped to server-defined type descriptors, plus a field count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "cms_list_items",
		Method:   "ListItems",
		Title:    "List Items",
		Summary:  "Every item with its fields",
		Category: "read",
		Description: `List every item in the collection with its fields, in server order.

USE WHEN: User asks "show all posts with their dates", "summarize every page", or needs field values across the whole collection.

NOT FOR: Only slugs and titles (use cms_get_index, it is much smaller). One known item (use cms_get_item).

PARAMETERS:
- fields: Only return these fields per item; slug and title are always kept (optional)

RETURNS: Items and a count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "cms_get_item",
		Method:   "GetItem",
		Title:    "Get Item",
		Summary:  "One item by slug",
		Category: "read",
		Description: `Get one item of the collection by its slug, with all fields.

USE WHEN: User asks "show the hello-world post", "what does the pricing page say", or you have a slug from cms_get_index.

NOT FOR: Several items at once (use cms_batch_get_items).

PARAMETERS:
- slug: Item slug (required)

RETURNS: The item with all its fields. Unknown slugs fail with status 404.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// BATCH TOOLS
	// ==========================================================================
	{
		Name:     "cms_batch_get_items",
		Method:   "BatchGetItems",
		Title:    "Batch Get Items",
		Summary:  "Several items by slug, fetched in parallel",
		Category: "batch",
		Description: `Get several items by slug in one call; the requests run in parallel.

USE WHEN: User asks to compare or summarize a handful of specific items, e.g. "compare post A and post B".

NOT FOR: The whole collection (use cms_list_items). A single item (use cms_get_item).

PARAMETERS:
- slugs: Item slugs (required, at least one)

RETURNS: Items in the same order as the slugs. If any slug fails, the whole call fails with that error.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// Categories lists tool categories in the order they are presented.
var Categories = []string{"discovery", "read", "batch"}

// ToolsByCategory returns the tools in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// Catalog renders one "- name: summary" line per tool, grouped by category.
func Catalog() string {
	var b strings.Builder
	for _, category := range Categories {
		for _, spec := range ToolsByCategory(category) {
			fmt.Fprintf(&b, "- %s: %s\n", spec.Name, spec.Summary)
		}
	}
	return b.String()
}
