// Command decompound compiles decomposition dictionaries and splits German
// compound words from the command line.
//
//	decompound compile -o words.dat nouns.txt verbs.txt
//	decompound split --dictionary words.dat Anwendungsbetreuer
//	decompound lookup --dictionary words.dat Betreuer
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
