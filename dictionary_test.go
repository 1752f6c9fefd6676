package decompound

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type sliceWordReader struct {
	words []string
	index int
}

func (r *sliceWordReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	w := r.words[r.index]
	r.index++
	return w, nil
}

func words(w ...string) *sliceWordReader {
	return &sliceWordReader{words: w}
}

func mustDictionary(t *testing.T, w ...string) *Dictionary {
	t.Helper()
	dict, err := NewDictionary("test", nil, words(w...))
	if err != nil {
		t.Fatal(err)
	}
	return dict
}

func TestCompileEntries(t *testing.T) {
	keys, err := CompileEntries(words("Sünde", "ecke", "sünde"), words("ecke", "a<b", "  "))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ecke>", "ednüs<", "ekce<", "sünde>"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("expected keys %v, have %v", want, keys)
	}
}

func TestCompileEntriesEmpty(t *testing.T) {
	if _, err := CompileEntries(words("", "x>y")); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}

func TestCompileEntriesReaderError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := CompileEntries(failingReader{boom}); !errors.Is(err, boom) {
		t.Fatalf("expected reader error to be passed on, got %v", err)
	}
}

type failingReader struct{ err error }

func (r failingReader) Next() (string, error) { return "", r.err }

func TestDictionaryContains(t *testing.T) {
	dict := mustDictionary(t, "fahrrad", "rad", "Straße")
	tests := []struct {
		word string
		want bool
	}{
		{"fahrrad", true},
		{"Fahrrad", true},
		{"rad", true},
		{"straße", true},
		{"dar", false}, // only stored reversed
		{"fahr", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := dict.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestEmptyGlueList(t *testing.T) {
	if _, err := NewDictionary("test", []string{}, words("rad")); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries for empty glue list, got %v", err)
	}
}

func TestSaveAndLoadDictionary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decompound")
	defer teardown()
	dict := mustDictionary(t, "sünde", "sünder", "ecke", "recke")
	var buf bytes.Buffer
	if err := dict.Save(&buf); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "words.dat")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadDictionary(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer loaded.Close()
	read, err := ReadDictionary("memory", bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := dict.search("sünderecke")
	for _, d := range []*Dictionary{loaded, read} {
		if got := d.search("sünderecke"); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: expected %v, have %v", d.Identifier, want, got)
		}
		if !d.Contains("recke") {
			t.Errorf("%s: expected to contain 'recke'", d.Identifier)
		}
	}
	if err := loaded.Close(); err != nil {
		t.Fatal(err)
	}
	if err := read.Close(); err != nil {
		t.Fatalf("closing an in-memory dictionary should be a no-op, got %v", err)
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "none.dat"), nil); err == nil {
		t.Fatal("expected error for missing dictionary file")
	}
}

func TestClosedDictionaryHasNoEntries(t *testing.T) {
	dict := mustDictionary(t, "haus", "tür")
	path := filepath.Join(t.TempDir(), "words.dat")
	var buf bytes.Buffer
	if err := dict.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadDictionary(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := loaded.Close(); err != nil {
		t.Fatal(err)
	}
	if loaded.Contains("haus") {
		t.Error("closed dictionary should not contain 'haus'")
	}
	if got := loaded.search("haustür"); got != nil {
		t.Errorf("closed dictionary should not split, have %v", got)
	}
	if err := loaded.Save(io.Discard); err == nil {
		t.Error("expected error saving a closed dictionary")
	}
	if err := loaded.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
