package analysis

import (
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/npillmayer/decompound"
)

// Analyzer combines a WhitespaceTokenizer with a CompoundFilter. It holds no
// per-stream state and is safe for concurrent use.
type Analyzer struct {
	splitter *decompound.Splitter
	config   Config
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(splitter *decompound.Splitter, config Config) *Analyzer {
	return &Analyzer{splitter: splitter, config: config}
}

// TokenStream returns a fresh token stream over r.
func (a *Analyzer) TokenStream(r io.Reader) TokenStream {
	return NewCompoundFilter(NewWhitespaceTokenizer(r), a.splitter, a.config)
}

// Analyze returns all tokens of text.
func (a *Analyzer) Analyze(text string) ([]decompound.Token, error) {
	return Collect(a.TokenStream(strings.NewReader(text)))
}

// AnalyzeBatch analyzes texts in parallel. Results are in input order. With
// workers <= 0 one worker per CPU is started. The first error encountered
// is returned.
func (a *Analyzer) AnalyzeBatch(texts []string, workers int) ([][]decompound.Token, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([][]decompound.Token, len(texts))
	errs := make([]error, len(texts))
	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j], errs[j] = a.Analyze(texts[j])
			}
		}()
	}
	for j := range texts {
		jobs <- j
	}
	close(jobs)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	tracer().Debugf("analyzed %d texts with %d workers", len(texts), workers)
	return results, nil
}
