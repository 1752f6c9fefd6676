package analysis

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/decompound"
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

var testWords = []string{
	"anwendung", "betreuer",
	"sünde", "sünder", "ecke", "recke",
	"fahrrad", "fahr", "rad",
	"finanz", "grundsatz", "grund", "satz", "angelegenheit", "angelegenheiten",
}

func mustAnalyzer(t *testing.T, config Config) *Analyzer {
	t.Helper()
	dict, err := decompound.NewDictionary("test", nil, &sliceWordReader{words: testWords})
	if err != nil {
		t.Fatal(err)
	}
	splitter, err := decompound.NewSplitter(dict, decompound.WithCache(64))
	if err != nil {
		t.Fatal(err)
	}
	return NewAnalyzer(splitter, config)
}

func mustAnalyze(t *testing.T, a *Analyzer, text string) []decompound.Token {
	t.Helper()
	tokens, err := a.Analyze(text)
	if err != nil {
		t.Fatal(err)
	}
	return tokens
}

type tokenSummary struct {
	terms []string
	incs  []int
	lens  []int
}

func summarize(tokens []decompound.Token) tokenSummary {
	var s tokenSummary
	for _, tok := range tokens {
		s.terms = append(s.terms, tok.Term)
		s.incs = append(s.incs, tok.PosInc)
		s.lens = append(s.lens, tok.PosLen)
	}
	return s
}

func TestWhitespaceTokenizerOffsets(t *testing.T) {
	tokens, err := Collect(NewWhitespaceTokenizer(strings.NewReader("  Größe\tund \n Maß ")))
	if err != nil {
		t.Fatal(err)
	}
	want := []decompound.Token{
		{Term: "Größe", Start: 2, End: 7, PosInc: 1, PosLen: 1},
		{Term: "und", Start: 8, End: 11, PosInc: 1, PosLen: 1},
		{Term: "Maß", Start: 14, End: 17, PosInc: 1, PosLen: 1},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("expected %v, have %v", want, tokens)
	}
}

func TestPassthroughShortWords(t *testing.T) {
	a := mustAnalyzer(t, DefaultConfig())
	tokens := mustAnalyze(t, a, "Bank Tier Rind")
	want := []decompound.Token{
		{Term: "Bank", Start: 0, End: 4, PosInc: 1, PosLen: 1},
		{Term: "Tier", Start: 5, End: 9, PosInc: 1, PosLen: 1},
		{Term: "Rind", Start: 10, End: 14, PosInc: 1, PosLen: 1},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("expected %v, have %v", want, tokens)
	}
}

func TestPreserveOriginal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "decompound.analysis")
	defer teardown()
	tests := []struct {
		preserve bool
		want     tokenSummary
	}{
		{false, tokenSummary{
			terms: []string{"anwendung", "betreuer"},
			incs:  []int{1, 1},
			lens:  []int{1, 1},
		}},
		{true, tokenSummary{
			terms: []string{"Anwendungsbetreuer", "anwendung", "betreuer"},
			incs:  []int{1, 0, 1},
			lens:  []int{2, 1, 1},
		}},
	}
	for _, tt := range tests {
		config := DefaultConfig()
		config.PreserveOriginal = tt.preserve
		a := mustAnalyzer(t, config)
		tokens := mustAnalyze(t, a, "Anwendungsbetreuer")
		if got := summarize(tokens); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("preserve=%v: expected %+v, have %+v", tt.preserve, tt.want, got)
		}
		for _, tok := range tokens {
			if tok.Start != 0 || tok.End != 18 {
				t.Errorf("token %v does not carry the word's offsets", tok)
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		config func(*Config)
		text   string
		want   tokenSummary
	}{
		{
			name: "whole word only",
			text: "Fahrrad",
			want: tokenSummary{terms: []string{"Fahrrad"}, incs: []int{1}, lens: []int{1}},
		},
		{
			name: "pruned alternative",
			text: "Finanzgrundsatzangelegenheiten",
			want: tokenSummary{
				terms: []string{"Finanzgrundsatzangelegenheiten", "finanz", "grundsatz", "angelegenheiten"},
				incs:  []int{1, 0, 1, 1},
				lens:  []int{3, 1, 1, 1},
			},
		},
		{
			name: "two splits",
			text: "Sünderecke",
			want: tokenSummary{
				terms: []string{"Sünderecke", "sünde", "sünder", "recke", "ecke"},
				incs:  []int{1, 0, 0, 1, 0},
				lens:  []int{2, 1, 1, 1, 1},
			},
		},
		{
			name:   "only longest match",
			config: func(c *Config) { c.OnlyLongestMatch = true },
			text:   "Sünderecke",
			want: tokenSummary{
				terms: []string{"Sünderecke", "sünder", "ecke"},
				incs:  []int{1, 0, 1},
				lens:  []int{2, 1, 1},
			},
		},
		{
			name:   "below minimum word size",
			config: func(c *Config) { c.MinWordSize = 11 },
			text:   "Sünderecke",
			want:   tokenSummary{terms: []string{"Sünderecke"}, incs: []int{1}, lens: []int{1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			if tt.config != nil {
				tt.config(&config)
			}
			a := mustAnalyzer(t, config)
			if got := summarize(mustAnalyze(t, a, tt.text)); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %+v, have %+v", tt.want, got)
			}
		})
	}
}

func TestFilterInterleavesWords(t *testing.T) {
	a := mustAnalyzer(t, DefaultConfig())
	tokens := mustAnalyze(t, a, "die Sünderecke am Rad")
	got := summarize(tokens)
	want := tokenSummary{
		terms: []string{"die", "Sünderecke", "sünde", "sünder", "recke", "ecke", "am", "Rad"},
		incs:  []int{1, 1, 0, 0, 1, 0, 1, 1},
		lens:  []int{1, 2, 1, 1, 1, 1, 1, 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, have %+v", want, got)
	}
	if tokens[2].Start != 4 || tokens[2].End != 14 {
		t.Errorf("expected sub-token offsets 4-14, have %d-%d", tokens[2].Start, tokens[2].End)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	a := mustAnalyzer(t, DefaultConfig())
	texts := []string{"Sünderecke", "Fahrrad", "Anwendungsbetreuer", "", "Finanzgrundsatzangelegenheiten"}
	results, err := a.AnalyzeBatch(texts, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(texts) {
		t.Fatalf("expected %d results, have %d", len(texts), len(results))
	}
	for i, text := range texts {
		want := mustAnalyze(t, a, text)
		if !reflect.DeepEqual(results[i], want) {
			t.Errorf("text %q: expected %v, have %v", text, want, results[i])
		}
	}
}
