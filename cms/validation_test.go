package cms

import (
	"errors"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug    string
		wantErr bool
	}{
		{"hello-world", false},
		{"a", false},
		{"with space", false},
		{"", true},
		{"   ", true},
		{"\t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlug(%q) error = %v, wantErr %v", tt.slug, err, tt.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != "slug" {
					t.Errorf("error = %v, want ValidationError for slug", err)
				}
			}
		})
	}
}

func TestParseIndexFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    IndexFormat
		wantErr bool
	}{
		{"", IndexFormatArray, false},
		{"array", IndexFormatArray, false},
		{"Array", IndexFormatArray, false},
		{" object ", IndexFormatObject, false},
		{"OBJECT", IndexFormatObject, false},
		{"map", "", true},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIndexFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIndexFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseIndexFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{"valid", Config{Namespace: "johndoe", APIPath: "blog"}, ""},
		{"missing namespace", Config{APIPath: "blog"}, "namespace"},
		{"blank namespace", Config{Namespace: " / ", APIPath: "blog"}, "namespace"},
		{"missing api path", Config{Namespace: "johndoe"}, "api_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}
