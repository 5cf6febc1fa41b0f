package domain

import (
	"errors"
	"testing"
)

func TestComposeBaseName(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		dir      string
		want     string
	}{
		{
			name:     "name and version from manifest",
			manifest: Manifest{Name: "chatwork", Version: "1.2.0"},
			dir:      "/proj/src/some-other-dir",
			want:     "chatwork-1.2.0",
		},
		{
			name:     "missing name falls back to directory basename",
			manifest: Manifest{Version: "2.0.0"},
			dir:      "/proj/src/hello_world",
			want:     "hello_world-2.0.0",
		},
		{
			name:     "missing version falls back to 0.0.0",
			manifest: Manifest{Name: "chatwork"},
			dir:      "/proj/src/chatwork",
			want:     "chatwork-0.0.0",
		},
		{
			name:     "empty manifest uses both fallbacks",
			manifest: Manifest{},
			dir:      "/proj/src/chatwork",
			want:     "chatwork-0.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeBaseName(tt.manifest, tt.dir)
			if got != tt.want {
				t.Errorf("ComposeBaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeBaseNameIsDeterministic(t *testing.T) {
	m := Manifest{Name: "chatwork", Version: "1.2.0"}
	first := ComposeBaseName(m, "/proj/src/chatwork")
	for i := 0; i < 10; i++ {
		if got := ComposeBaseName(m, "/proj/src/chatwork"); got != first {
			t.Fatalf("ComposeBaseName() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCheckBaseName(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{name: "plain name", base: "chatwork-1.2.0", wantErr: false},
		{name: "dots allowed inside", base: "plugin.v2-0.0.0", wantErr: false},
		{name: "empty", base: "", wantErr: true},
		{name: "dot", base: ".", wantErr: true},
		{name: "dotdot", base: "..", wantErr: true},
		{name: "slash", base: "../escape-1.0.0", wantErr: true},
		{name: "backslash", base: `evil\name-1.0.0`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBaseName(tt.base)
			if tt.wantErr && !errors.Is(err, ErrUnsafeArchiveName) {
				t.Errorf("CheckBaseName(%q) = %v, want ErrUnsafeArchiveName", tt.base, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckBaseName(%q) unexpected error: %v", tt.base, err)
			}
		})
	}
}
