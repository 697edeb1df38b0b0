package cms

import "encoding/json"

// Item is one entry of a content collection. Besides the mandatory
// "slug" and "title" fields it carries whatever fields the collection
// defines; those are passed through untouched.
type Item map[string]any

// Slug returns the item's slug, or "" if absent or not a string.
func (i Item) Slug() string {
	s, _ := i["slug"].(string)
	return s
}

// Title returns the item's title, or "" if absent or not a string.
func (i Item) Title() string {
	s, _ := i["title"].(string)
	return s
}

// IndexEntry is the reduced projection of an Item used for enumeration.
type IndexEntry struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// IndexValue is an index entry keyed by slug, so it carries no slug itself.
type IndexValue struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// IndexFormat selects the shape of the index response.
type IndexFormat string

const (
	// IndexFormatArray returns an ordered list of entries (the default)
	IndexFormatArray IndexFormat = "array"

	// IndexFormatObject returns a mapping from slug to {title, url}
	IndexFormatObject IndexFormat = "object"
)

// Index is the result of an index fetch. Exactly one of Entries or BySlug
// is populated, as indicated by Format, which reflects the shape the
// server actually returned.
type Index struct {
	Format  IndexFormat           `json:"format"`
	Entries []IndexEntry          `json:"entries,omitempty"`
	BySlug  map[string]IndexValue `json:"by_slug,omitempty"`
}

// Slugs returns the slugs in the index. Array indexes keep server order;
// object indexes are returned in map order.
func (x *Index) Slugs() []string {
	if x == nil {
		return nil
	}
	if x.Format == IndexFormatObject {
		slugs := make([]string, 0, len(x.BySlug))
		for slug := range x.BySlug {
			slugs = append(slugs, slug)
		}
		return slugs
	}
	slugs := make([]string, 0, len(x.Entries))
	for _, e := range x.Entries {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}

// Lookup finds the entry for slug in either index shape.
func (x *Index) Lookup(slug string) (IndexValue, bool) {
	if x == nil {
		return IndexValue{}, false
	}
	if x.Format == IndexFormatObject {
		v, ok := x.BySlug[slug]
		return v, ok
	}
	for _, e := range x.Entries {
		if e.Slug == slug {
			return IndexValue{Title: e.Title, URL: e.URL}, true
		}
	}
	return IndexValue{}, false
}

// Len returns the number of entries in the index.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	if x.Format == IndexFormatObject {
		return len(x.BySlug)
	}
	return len(x.Entries)
}

// Schema maps field names to server-defined type descriptors. The
// descriptors are opaque to the client.
type Schema map[string]any

// Field returns the raw JSON of a field's type descriptor.
func (s Schema) Field(name string) (json.RawMessage, bool) {
	v, ok := s[name]
	if !ok {
		return nil, false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return raw, true
}
