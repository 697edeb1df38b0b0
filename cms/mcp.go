package cms

import (
	"context"

	apierrors "github.com/olgasafonova/notion-cms-mcp-server/internal/errors"
)

// ListItemsMCP wraps List for MCP tool handlers
func (c *Client) ListItemsMCP(ctx context.Context, args ListItemsArgs) (ListItemsResult, error) {
	items, err := c.List(ctx)
	if err != nil {
		return ListItemsResult{}, err
	}

	if len(args.Fields) > 0 {
		items = projectItems(items, args.Fields)
	}

	return ListItemsResult{Items: items, Count: len(items)}, nil
}

// GetItemMCP wraps GetBySlug for MCP tool handlers
func (c *Client) GetItemMCP(ctx context.Context, args GetItemArgs) (GetItemResult, error) {
	item, err := c.GetBySlug(ctx, args.Slug)
	if err != nil {
		return GetItemResult{}, err
	}
	return GetItemResult{Item: item}, nil
}

// GetIndexMCP wraps Index for MCP tool handlers
func (c *Client) GetIndexMCP(ctx context.Context, args GetIndexArgs) (GetIndexResult, error) {
	format, err := ParseIndexFormat(args.Format)
	if err != nil {
		return GetIndexResult{}, err
	}

	idx, err := c.Index(ctx, format)
	if err != nil {
		return GetIndexResult{}, err
	}
	return GetIndexResult{
		Format:  idx.Format,
		Entries: idx.Entries,
		BySlug:  idx.BySlug,
		Count:   idx.Len(),
	}, nil
}

// GetSchemaMCP wraps GetSchema for MCP tool handlers
func (c *Client) GetSchemaMCP(ctx context.Context, _ GetSchemaArgs) (GetSchemaResult, error) {
	schema, err := c.GetSchema(ctx)
	if err != nil {
		return GetSchemaResult{}, err
	}
	return GetSchemaResult{Fields: schema, FieldCount: len(schema)}, nil
}

// BatchGetItemsMCP wraps Batch for MCP tool handlers
func (c *Client) BatchGetItemsMCP(ctx context.Context, args BatchGetItemsArgs) (BatchGetItemsResult, error) {
	if len(args.Slugs) == 0 {
		return BatchGetItemsResult{}, apierrors.NewValidationError("slugs", "", "at least one slug is required")
	}

	items, err := c.Batch(ctx, args.Slugs)
	if err != nil {
		return BatchGetItemsResult{}, err
	}
	return BatchGetItemsResult{Items: items, Count: len(items)}, nil
}

// projectItems keeps only the requested fields, plus slug and title.
func projectItems(items []Item, fields []string) []Item {
	keep := map[string]bool{"slug": true, "title": true}
	for _, f := range fields {
		keep[f] = true
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		projected := make(Item, len(keep))
		for k, v := range item {
			if keep[k] {
				projected[k] = v
			}
		}
		out = append(out, projected)
	}
	return out
}
