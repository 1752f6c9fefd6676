package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npillmayer/decompound"
	"github.com/npillmayer/decompound/dat"
	"github.com/npillmayer/decompound/wordlist"
)

var compileCmd = &cobra.Command{
	Use:   "compile <wordlist>...",
	Short: "Compile word lists into a dictionary file",
	Long: `Compile one or more word lists into a dictionary file.

Word lists hold one word per line; '#' starts a comment line and anything
after the first white space of a line is ignored. Every word is stored in
both reading directions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "words.dat", "dictionary file to write")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	readers, closeAll, err := openWordLists(args)
	if err != nil {
		return err
	}
	defer closeAll()
	keys, err := decompound.CompileEntries(readers...)
	if err != nil {
		return err
	}
	trie, err := dat.Build(keys)
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	n, err := trie.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	stats := trie.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries, %d states (fill %.2f), %d bytes\n",
		output, len(keys), stats.TotalSlots, stats.FillRatio(), n)
	return nil
}

// openWordLists opens word list files. The returned function closes them.
func openWordLists(paths []string) ([]decompound.WordReader, func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	readers := make([]decompound.WordReader, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		files = append(files, f)
		readers = append(readers, wordlist.NewReader(f))
	}
	return readers, closeAll, nil
}
