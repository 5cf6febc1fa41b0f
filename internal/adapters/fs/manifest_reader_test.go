package fs

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plugforge/plugpack/internal/domain"
)

func TestManifestReaderRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		filename    string
		content     string
		wantName    string
		wantVersion string
	}{
		{
			name:        "json with name and version",
			filename:    "manifest.json",
			content:     `{"name":"chatwork","version":"1.2.0"}`,
			wantName:    "chatwork",
			wantVersion: "1.2.0",
		},
		{
			name:     "json with neither",
			filename: "manifest.json",
			content:  `{"type":"tool"}`,
		},
		{
			name:        "yaml manifest",
			filename:    "manifest.yaml",
			content:     "name: chatwork\nversion: 1.2.0\nruntime: python\n",
			wantName:    "chatwork",
			wantVersion: "1.2.0",
		},
		{
			name:        "non-string name is passed through, not interpreted",
			filename:    "manifest.json",
			content:     `{"name":42,"version":"1.0.0"}`,
			wantVersion: "1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			mustWrite(t, filepath.Join(dir, tt.filename), tt.content)

			m, err := NewManifestReader(tt.filename).Read(ctx, dir)
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if m.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", m.Name, tt.wantName)
			}
			if m.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", m.Version, tt.wantVersion)
			}
		})
	}
}

func TestManifestReaderExtraPassthrough(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "manifest.json"),
		`{"name":"chatwork","version":"1.2.0","type":"tool","runtime":{"language":"python"}}`)

	m, err := NewManifestReader("").Read(context.Background(), dir)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}

	if _, ok := m.Extra["name"]; ok {
		t.Error("interpreted field name should not remain in Extra")
	}
	if got := m.Extra["type"]; got != "tool" {
		t.Errorf("Extra[type] = %v, want tool", got)
	}
	runtime, ok := m.Extra["runtime"].(map[string]any)
	if !ok || runtime["language"] != "python" {
		t.Errorf("Extra[runtime] = %v, want nested map with language=python", m.Extra["runtime"])
	}
}

func TestManifestReaderMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := NewManifestReader("").Read(context.Background(), dir)
	if !errors.Is(err, domain.ErrManifestMissing) {
		t.Fatalf("Read() error = %v, want ErrManifestMissing", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(dir, DefaultManifestName)) {
		t.Errorf("error %q does not name the manifest path", err)
	}
}

func TestManifestReaderParseError(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{name: "broken json", filename: "manifest.json", content: `{"name": "chatwork"`},
		{name: "broken yaml", filename: "manifest.yaml", content: "name: [unclosed\n  version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			mustWrite(t, filepath.Join(dir, tt.filename), tt.content)

			_, err := NewManifestReader(tt.filename).Read(context.Background(), dir)
			if !errors.Is(err, domain.ErrManifestParse) {
				t.Errorf("Read() error = %v, want ErrManifestParse", err)
			}
		})
	}
}
