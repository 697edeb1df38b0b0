package cms

// ListItemsArgs contains parameters for listing the collection
type ListItemsArgs struct {
	Fields []string `json:"fields,omitempty" jsonschema:"Only return these fields of each item (slug and title are always kept)"`
}

// ListItemsResult is the result of listing the collection
type ListItemsResult struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}

// GetItemArgs contains parameters for fetching one item
type GetItemArgs struct {
	Slug string `json:"slug" jsonschema:"Item slug, e.g. hello-world"`
}

// GetItemResult is the result of fetching one item
type GetItemResult struct {
	Item Item `json:"item"`
}

// GetIndexArgs contains parameters for fetching the index
type GetIndexArgs struct {
	Format string `json:"format,omitempty" jsonschema:"array (default) for an ordered list, object for a slug-keyed map"`
}

// GetIndexResult is the result of fetching the index
type GetIndexResult struct {
	Format  IndexFormat           `json:"format"`
	Entries []IndexEntry          `json:"entries,omitempty"`
	BySlug  map[string]IndexValue `json:"by_slug,omitempty"`
	Count   int                   `json:"count"`
}

// GetSchemaArgs has no parameters; the schema belongs to the configured collection
type GetSchemaArgs struct{}

// GetSchemaResult is the result of fetching the schema
type GetSchemaResult struct {
	Fields     Schema `json:"fields"`
	FieldCount int    `json:"field_count"`
}

// BatchGetItemsArgs contains parameters for fetching several items at once
type BatchGetItemsArgs struct {
	Slugs []string `json:"slugs" jsonschema:"Item slugs to fetch; results keep this order"`
}

// BatchGetItemsResult is the result of a batch fetch
type BatchGetItemsResult struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}
