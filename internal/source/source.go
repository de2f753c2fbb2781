// Package source reads raw answer text from files, glob patterns, URLs or
// standard input.
package source

import (
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
	"resty.dev/v3"
)

const (
	KindStdin = "stdin"
	KindURL   = "url"
	KindGlob  = "glob"
	KindFile  = "file"
)

// Document is one answer text ready for parsing.
type Document struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Loader struct {
	client *resty.Client
	stdin  io.Reader
}

func NewLoader() *Loader {
	return &Loader{
		client: resty.New(),
		stdin:  os.Stdin,
	}
}

// NewLoaderWith builds a Loader around a custom HTTP client and stdin reader.
func NewLoaderWith(client *resty.Client, stdin io.Reader) *Loader {
	return &Loader{
		client: client,
		stdin:  stdin,
	}
}

// Close releases the HTTP client.
func (l *Loader) Close() error {
	return l.client.Close()
}

// Kind reports how ref will be read.
func Kind(ref string) string {
	switch {
	case ref == "-":
		return KindStdin
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return KindURL
	case strings.ContainsAny(ref, "*?[{"):
		return KindGlob
	default:
		return KindFile
	}
}

// Load resolves ref into one or more documents. Globs expand to every
// matching regular file in lexical order.
func (l *Loader) Load(ctx context.Context, ref string) ([]Document, error) {
	switch Kind(ref) {
	case KindStdin:
		doc, err := l.loadReader(KindStdin, l.stdin)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil

	case KindURL:
		doc, err := l.loadURL(ctx, ref)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil

	case KindGlob:
		return l.loadGlob(ref)

	default:
		doc, err := loadFile(ref)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil
	}
}

func (l *Loader) loadReader(name string, r io.Reader) (Document, error) {
	if r == nil {
		return Document{}, oops.
			Code("SOURCE_READ_ERROR").
			With("source", name).
			Errorf("no input reader configured")
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return Document{}, oops.
			Code("SOURCE_READ_ERROR").
			With("source", name).
			Wrapf(err, "reading input")
	}

	return newDocument(name, content)
}

func (l *Loader) loadGlob(pattern string) ([]Document, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, oops.
			Code("SOURCE_READ_ERROR").
			With("pattern", pattern).
			Hint("Check the glob syntax, for example answers/**/*.md").
			Wrapf(err, "expanding glob")
	}

	sort.Strings(matches)

	var docs []Document
	for _, match := range matches {
		info, statErr := os.Stat(match)
		if statErr != nil || !info.Mode().IsRegular() {
			continue
		}

		doc, loadErr := loadFile(match)
		if loadErr != nil {
			return nil, loadErr
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, oops.
			Code("SOURCE_NOT_FOUND").
			With("pattern", pattern).
			Errorf("no files match %q", pattern)
	}

	return docs, nil
}

func loadFile(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Document{}, oops.
				Code("SOURCE_NOT_FOUND").
				With("path", path).
				Errorf("answer file %q does not exist", path)
		}

		return Document{}, oops.
			Code("SOURCE_READ_ERROR").
			With("path", path).
			Wrapf(err, "reading answer file")
	}

	return newDocument(path, content)
}

func newDocument(name string, content []byte) (Document, error) {
	if IsBinary(content) {
		return Document{}, oops.
			Code("BINARY_CONTENT").
			With("source", name).
			Hint("Answers must be plain text").
			Errorf("%q looks like a binary file", name)
	}

	return Document{
		Name:    name,
		Content: string(StripBOM(content)),
	}, nil
}
