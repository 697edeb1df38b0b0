package cms

import (
	"sort"
	"testing"
)

func TestItemAccessors(t *testing.T) {
	tests := []struct {
		name      string
		item      Item
		wantSlug  string
		wantTitle string
	}{
		{"both set", Item{"slug": "a", "title": "A"}, "a", "A"},
		{"missing", Item{}, "", ""},
		{"nil item", nil, "", ""},
		{"wrong types", Item{"slug": 1, "title": []any{"x"}}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Slug(); got != tt.wantSlug {
				t.Errorf("Slug() = %q, want %q", got, tt.wantSlug)
			}
			if got := tt.item.Title(); got != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestIndexHelpers_Array(t *testing.T) {
	idx := &Index{
		Format: IndexFormatArray,
		Entries: []IndexEntry{
			{Slug: "b", Title: "B", URL: "/b"},
			{Slug: "a", Title: "A", URL: "/a"},
		},
	}

	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	slugs := idx.Slugs()
	if len(slugs) != 2 || slugs[0] != "b" || slugs[1] != "a" {
		t.Errorf("Slugs() = %v, want server order [b a]", slugs)
	}
	if v, ok := idx.Lookup("a"); !ok || v.URL != "/a" {
		t.Errorf("Lookup(a) = %+v, %v", v, ok)
	}
	if _, ok := idx.Lookup("zzz"); ok {
		t.Error("Lookup(zzz) should miss")
	}
}

func TestIndexHelpers_Object(t *testing.T) {
	idx := &Index{
		Format: IndexFormatObject,
		BySlug: map[string]IndexValue{
			"a": {Title: "A", URL: "/a"},
			"b": {Title: "B", URL: "/b"},
		},
	}

	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	slugs := idx.Slugs()
	sort.Strings(slugs)
	if len(slugs) != 2 || slugs[0] != "a" || slugs[1] != "b" {
		t.Errorf("Slugs() = %v", slugs)
	}
	if v, ok := idx.Lookup("b"); !ok || v.Title != "B" {
		t.Errorf("Lookup(b) = %+v, %v", v, ok)
	}
}

func TestIndexHelpers_Nil(t *testing.T) {
	var idx *Index

	if idx.Len() != 0 {
		t.Error("nil Len() should be 0")
	}
	if idx.Slugs() != nil {
		t.Error("nil Slugs() should be nil")
	}
	if _, ok := idx.Lookup("a"); ok {
		t.Error("nil Lookup should miss")
	}
}

func TestRawIndexUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantFormat IndexFormat
		wantLen    int
		wantErr    bool
	}{
		{"array", `[{"slug":"a","title":"A","url":"/a"}]`, IndexFormatArray, 1, false},
		{"empty array", `[]`, IndexFormatArray, 0, false},
		{"object", `{"a":{"title":"A","url":"/a"},"b":{"title":"B","url":"/b"}}`, IndexFormatObject, 2, false},
		{"leading whitespace", "  \n[]", IndexFormatArray, 0, false},
		{"null", `null`, "", 0, true},
		{"number", `42`, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw rawIndex
			err := decodeJSON([]byte(tt.payload), &raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			idx := Index(raw)
			if idx.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", idx.Format, tt.wantFormat)
			}
			if idx.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", idx.Len(), tt.wantLen)
			}
		})
	}
}

func TestSchemaField(t *testing.T) {
	schema := Schema{"title": map[string]any{"type": "title"}, "flag": true}

	raw, ok := schema.Field("title")
	if !ok || string(raw) != `{"type":"title"}` {
		t.Errorf("Field(title) = %s, %v", raw, ok)
	}
	raw, ok = schema.Field("flag")
	if !ok || string(raw) != "true" {
		t.Errorf("Field(flag) = %s, %v", raw, ok)
	}
	if _, ok := schema.Field("missing"); ok {
		t.Error("Field(missing) should miss")
	}
}
