package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner() *ReferenceScanner {
	return NewReferenceScanner(
		[]string{"T", "Translate"},
		[]string{"data-i18n"},
		[]string{"node_modules", ".git", "vendor"},
	)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanFile_GoCallSites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.go", `package web

func render(tr Translator) {
	_ = T("menu.open")
	_ = tr.Translate("menu.close")
	_ = tr.Translate(dynamicKey)
	_ = other("not.a.ref")
}
`)

	refs, err := newTestScanner().ScanFile(path)
	require.NoError(t, err)

	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}
	assert.Equal(t, []string{"menu.open", "menu.close"}, paths)
	assert.Equal(t, 4, refs[0].Line)
}

func TestScanFile_HTMLAttributes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", `<html><body>
<span data-i18n="greeting"></span>
<input data-i18n="form.name" type="text"/>
<div class="plain">no key</div>
</body></html>`)

	refs, err := newTestScanner().ScanFile(path)
	require.NoError(t, err)

	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}
	assert.Equal(t, []string{"greeting", "form.name"}, paths)
}

func TestScanFile_UnknownExtensionIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", `T("never.seen")`)

	refs, err := newTestScanner().ScanFile(path)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestScanFile_BrokenGoSourceFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.go", "package web\nfunc {")

	_, err := newTestScanner().ScanFile(path)
	assert.Error(t, err)
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/handlers.go", `package a

func f() { _ = T("alpha.one") }
`)
	writeFile(t, dir, "b/view.html", `<p data-i18n="beta.two"></p>`)
	writeFile(t, dir, "vendor/skipme.go", `package v

func f() { _ = T("vendored.key") }
`)

	refs, err := newTestScanner().ScanDirectory(dir)
	require.NoError(t, err)

	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}
	assert.Equal(t, []string{"alpha.one", "beta.two"}, paths)
}

func TestScanDirectory_Deterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.go", `package p

func f() {
	_ = T("b.key")
	_ = T("a.key")
}
`)
	writeFile(t, dir, "two.go", `package p

func g() { _ = T("c.key") }
`)

	first, err := newTestScanner().ScanDirectory(dir)
	require.NoError(t, err)
	second, err := newTestScanner().ScanDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "b.key", first[0].Path) // line order within a file
	assert.Equal(t, "a.key", first[1].Path)
}
