package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/decompound"
	"github.com/npillmayer/decompound/analysis"
)

var splitCmd = &cobra.Command{
	Use:   "split [text]...",
	Short: "Split compound words into a token lattice",
	Long: `Split the words of the arguments (or of each line read from stdin) and print
one token per line: term, start and end offset, position increment and
position length.`,
	RunE: runSplit,
}

func init() {
	flags := splitCmd.Flags()
	flags.Int("min-word-size", analysis.DefaultMinWordSize, "minimum length of words to split")
	flags.Bool("only-longest-match", analysis.DefaultOnlyLongestMatch, "keep only the split with the longest parts")
	flags.Bool("preserve-original", analysis.DefaultPreserveOriginal, "emit the original word in front of its parts")
	flags.Int("cache-size", 4096, "number of words whose splits are cached (0 disables the cache)")
	_ = viper.BindPFlag("min_word_size", flags.Lookup("min-word-size"))
	_ = viper.BindPFlag("only_longest_match", flags.Lookup("only-longest-match"))
	_ = viper.BindPFlag("preserve_original", flags.Lookup("preserve-original"))
	_ = viper.BindPFlag("cache_size", flags.Lookup("cache-size"))
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	defer dict.Close()
	var opts []decompound.SplitterOption
	if size := viper.GetInt("cache_size"); size > 0 {
		opts = append(opts, decompound.WithCache(size))
	}
	splitter, err := decompound.NewSplitter(dict, opts...)
	if err != nil {
		return err
	}
	var config analysis.Config
	if err := viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("filter configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("filter configuration: %w", err)
	}
	analyzer := analysis.NewAnalyzer(splitter, config)
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		return printTokens(out, analyzer.TokenStream(strings.NewReader(strings.Join(args, " "))))
	}
	lines := bufio.NewScanner(cmd.InOrStdin())
	for lines.Scan() {
		if err := printTokens(out, analyzer.TokenStream(strings.NewReader(lines.Text()))); err != nil {
			return err
		}
	}
	return lines.Err()
}

func printTokens(w io.Writer, ts analysis.TokenStream) error {
	tokens, err := analysis.Collect(ts)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", tok.Term, tok.Start, tok.End, tok.PosInc, tok.PosLen)
	}
	return nil
}
