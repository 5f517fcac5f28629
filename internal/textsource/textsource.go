// Package textsource reads document text from disk, handling encoding
// fallback and HTML stripping so the analysis core only ever sees
// decoded plain text.
package textsource

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/lexstat/zipfian/internal/logger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source reads documents from the filesystem.
type Source struct{}

// New creates a filesystem text source.
func New() *Source {
	return &Source{}
}

// Text returns the decoded content of the named file. Files that are
// not valid UTF-8 are decoded as Windows-1251; a UTF-8 byte order mark
// is stripped. Files named *.html or *.htm have their markup removed.
func (s *Source) Text(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}

	text := decode(name, data)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		text = stripHTML(text)
	}
	return text, nil
}

// decode picks the first encoding that cleanly explains the bytes:
// UTF-8 with optional BOM, then Windows-1251, then lossy UTF-8.
func decode(name string, data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err == nil {
		logger.Debug("decoded %s as windows-1251", name)
		return string(decoded)
	}

	logger.Warn("file %s has encoding problems, decoding lossily", name)
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// stripHTML extracts the visible text of an HTML document, skipping
// script and style subtrees.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// fall back to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// ListDocuments returns the analyzable files (*.txt, *.html, *.htm)
// directly inside dir, sorted by name. A missing directory yields an
// empty list.
func ListDocuments(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".html", ".htm":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files
}
