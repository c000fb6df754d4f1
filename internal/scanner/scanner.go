// Package scanner provides translation-key reference discovery across a
// codebase.
//
// The scanner traverses file systems to find Go sources and HTML templates,
// extracting the string keys passed to translation functions (Go call sites
// parsed with go/ast) and the values of i18n attributes (HTML parsed with
// the x/net/html tokenizer). The validate command checks every discovered
// reference against the derived path vocabulary of the active dictionary,
// so an unknown key fails the build instead of a runtime lookup.
package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// Reference is one translation-key reference found in a source file.
type Reference struct {
	Path string `json:"path"`
	File string `json:"file"`
	Line int    `json:"line"`
}

// ReferenceScanner extracts translation-key references from source trees.
type ReferenceScanner struct {
	functions  map[string]struct{}
	attributes map[string]struct{}
	excludes   []string
	workers    int
}

// NewReferenceScanner creates a scanner recognizing the given translation
// function names in Go code and attribute names in HTML.
func NewReferenceScanner(functions, attributes, excludes []string) *ReferenceScanner {
	fns := make(map[string]struct{}, len(functions))
	for _, name := range functions {
		fns[name] = struct{}{}
	}
	attrs := make(map[string]struct{}, len(attributes))
	for _, name := range attributes {
		attrs[name] = struct{}{}
	}
	return &ReferenceScanner{
		functions:  fns,
		attributes: attrs,
		excludes:   excludes,
		workers:    runtime.NumCPU(),
	}
}

// ScanDirectory walks dir recursively and scans every Go and HTML file not
// matched by an exclude pattern. Files are scanned concurrently; the result
// is sorted by file, line, and path so output stays deterministic.
func (s *ReferenceScanner) ScanDirectory(dir string) ([]Reference, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if s.excluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.excluded(d.Name()) {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".go", ".html", ".htm":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	refs, err := s.scanFiles(files)
	if err != nil {
		return nil, err
	}
	sortReferences(refs)
	return refs, nil
}

// ScanFile scans a single file based on its extension.
func (s *ReferenceScanner) ScanFile(path string) ([]Reference, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return s.scanGoFile(path)
	case ".html", ".htm":
		return s.scanHTMLFile(path)
	default:
		return nil, nil
	}
}

// scanFiles fans the file list out over a bounded worker pool.
func (s *ReferenceScanner) scanFiles(files []string) ([]Reference, error) {
	workers := s.workers
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		return nil, nil
	}

	jobs := make(chan string, len(files))
	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	var (
		mu       sync.Mutex
		refs     []Reference
		firstErr error
		wg       sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				found, err := s.ScanFile(file)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				refs = append(refs, found...)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return refs, nil
}

// scanGoFile parses one Go source file and collects the first-argument
// string literals of calls to the configured translation functions, whether
// called bare (T("k")) or through a receiver (tr.Translate("k")).
func (s *ReferenceScanner) scanGoFile(path string) ([]Reference, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var refs []Reference
	ast.Inspect(file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}

		var name string
		switch fun := call.Fun.(type) {
		case *ast.Ident:
			name = fun.Name
		case *ast.SelectorExpr:
			name = fun.Sel.Name
		default:
			return true
		}
		if _, ok := s.functions[name]; !ok {
			return true
		}

		lit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			return true
		}
		key, err := strconv.Unquote(lit.Value)
		if err != nil {
			return true
		}

		refs = append(refs, Reference{
			Path: key,
			File: path,
			Line: fset.Position(lit.Pos()).Line,
		})
		return true
	})
	return refs, nil
}

// scanHTMLFile tokenizes one HTML file and collects the values of the
// configured i18n attributes. The tokenizer does not track line numbers, so
// HTML references carry line zero.
func (s *ReferenceScanner) scanHTMLFile(path string) ([]Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var refs []Reference
	tokenizer := html.NewTokenizer(f)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF terminates cleanly; real errors surface here too
			// but a broken template is not the scanner's to report.
			return refs, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := tokenizer.Token()
			for _, attr := range tok.Attr {
				if _, ok := s.attributes[attr.Key]; ok && attr.Val != "" {
					refs = append(refs, Reference{Path: attr.Val, File: path})
				}
			}
		}
	}
}

func (s *ReferenceScanner) excluded(name string) bool {
	for _, pattern := range s.excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if name == pattern {
			return true
		}
	}
	return false
}

func sortReferences(refs []Reference) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].File != refs[j].File {
			return refs[i].File < refs[j].File
		}
		if refs[i].Line != refs[j].Line {
			return refs[i].Line < refs[j].Line
		}
		return refs[i].Path < refs[j].Path
	})
}
