package source_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g5becks/desk/internal/source"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"-", source.KindStdin},
		{"https://example.com/a.md", source.KindURL},
		{"http://example.com/a.md", source.KindURL},
		{"answers/**/*.md", source.KindGlob},
		{"answer-?.md", source.KindGlob},
		{"answers/{a,b}.md", source.KindGlob},
		{"answers/one.md", source.KindFile},
	}

	for _, tt := range tests {
		if got := source.Kind(tt.ref); got != tt.want {
			t.Errorf("Kind(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.md")
	writeFile(t, path, "\xEF\xBB\xBF1. **Intro**\nHello")

	docs, err := source.NewLoaderWith(nil, nil).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].Name != path {
		t.Errorf("Name = %q, want %q", docs[0].Name, path)
	}
	if docs[0].Content != "1. **Intro**\nHello" {
		t.Errorf("Content = %q, want BOM stripped", docs[0].Content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := source.NewLoaderWith(nil, nil).Load(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestLoadBinaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.bin")
	writeFile(t, path, "1. **Intro**\x00\x01")

	_, err := source.NewLoaderWith(nil, nil).Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "binary") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"), "b")
	writeFile(t, filepath.Join(dir, "nested", "deep", "a.md"), "a")
	writeFile(t, filepath.Join(dir, "skip.txt"), "skip")
	if err := os.MkdirAll(filepath.Join(dir, "dir.md"), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	docs, err := source.NewLoaderWith(nil, nil).Load(context.Background(), filepath.Join(dir, "**", "*.md"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var contents []string
	for _, d := range docs {
		contents = append(contents, d.Content)
	}

	if strings.Join(contents, ",") != "b,a" {
		t.Errorf("contents = %v, want [b a]", contents)
	}
}

func TestLoadGlobWithoutMatches(t *testing.T) {
	_, err := source.NewLoaderWith(nil, nil).Load(context.Background(), filepath.Join(t.TempDir(), "*.md"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "no files match") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestLoadStdin(t *testing.T) {
	loader := source.NewLoaderWith(nil, strings.NewReader("piped answer"))

	docs, err := loader.Load(context.Background(), "-")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(docs) != 1 || docs[0].Name != "stdin" || docs[0].Content != "piped answer" {
		t.Errorf("docs = %+v", docs)
	}
}

func TestLoadURL(t *testing.T) {
	var gotPath string
	client := source.NewMockRestyClient(func(req *http.Request) *http.Response {
		gotPath = req.URL.Path
		return source.NewHTTPResponse(req, http.StatusOK, "1. **Intro**\nfetched")
	})
	loader := source.NewLoaderWith(client, nil)
	defer loader.Close()

	docs, err := loader.Load(context.Background(), "https://answers.example.test/kb/42.md")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if gotPath != "/kb/42.md" {
		t.Errorf("requested path = %q", gotPath)
	}
	if len(docs) != 1 || docs[0].Content != "1. **Intro**\nfetched" {
		t.Errorf("docs = %+v", docs)
	}
}

func TestLoadURLNonSuccess(t *testing.T) {
	client := source.NewMockRestyClient(func(req *http.Request) *http.Response {
		return source.NewHTTPResponse(req, http.StatusNotFound, "missing")
	})
	loader := source.NewLoaderWith(client, nil)
	defer loader.Close()

	_, err := loader.Load(context.Background(), "https://answers.example.test/kb/404.md")
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestIsBinary(t *testing.T) {
	if source.IsBinary([]byte("plain text")) {
		t.Error("plain text reported as binary")
	}
	if !source.IsBinary([]byte{'a', 0, 'b'}) {
		t.Error("NUL byte not reported as binary")
	}

	late := append([]byte(strings.Repeat("a", 600)), 0)
	if source.IsBinary(late) {
		t.Error("NUL past the first 512 bytes should be ignored")
	}
}
