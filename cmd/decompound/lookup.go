package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Check whether words are dictionary entries",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	defer dict.Close()
	for _, word := range args {
		status := "unknown"
		if dict.Contains(word) {
			status = "known"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", word, status)
	}
	return nil
}
