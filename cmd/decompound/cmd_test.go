package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("decompound %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCompileSplitLookup(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	content := "# test words\nSünde NN\nSünder NN\nEcke\nRecke\n"
	if err := os.WriteFile(list, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	dictPath := filepath.Join(dir, "words.dat")

	out := execute(t, "", "compile", "-o", dictPath, list)
	if !strings.Contains(out, "8 entries") {
		t.Errorf("expected compile summary with 8 entries, have %q", out)
	}

	out = execute(t, "", "split", "--dictionary", dictPath, "Sünderecke")
	want := "Sünderecke\t0\t10\t1\t2\n" +
		"sünde\t0\t10\t0\t1\n" +
		"sünder\t0\t10\t0\t1\n" +
		"recke\t0\t10\t1\t1\n" +
		"ecke\t0\t10\t0\t1\n"
	if out != want {
		t.Errorf("expected split output\n%s\nhave\n%s", want, out)
	}

	out = execute(t, "die Sünderecke\n", "split", "--dictionary", dictPath, "--only-longest-match")
	if !strings.Contains(out, "die\t0\t3\t1\t1\n") || strings.Contains(out, "sünde\t") {
		t.Errorf("unexpected split output from stdin:\n%s", out)
	}

	out = execute(t, "", "lookup", "--dictionary", dictPath, "Recke", "Sünderecke")
	if want := "Recke\tknown\nSünderecke\tunknown\n"; out != want {
		t.Errorf("expected lookup output %q, have %q", want, out)
	}
}

func TestSplitRejectsNegativeMinWordSize(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(list, []byte("haus\ntür\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dictPath := filepath.Join(dir, "words.dat")
	execute(t, "", "compile", "-o", dictPath, list)

	t.Setenv("DECOMPOUND_MIN_WORD_SIZE", "-2")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"split", "--dictionary", dictPath, "Haustür"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("expected an error for a negative minimum word size, have output %q", out.String())
	}
	if !strings.Contains(err.Error(), "minWordSize") {
		t.Errorf("expected error to mention minWordSize, have %q", err)
	}
}
