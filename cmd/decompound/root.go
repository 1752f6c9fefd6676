package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/decompound"
	"github.com/npillmayer/decompound/analysis"
)

var rootCmd = &cobra.Command{
	Use:   "decompound",
	Short: "Split German compound words",
	Long: `decompound splits German compound words into the words they are made of,
using a dictionary compiled from plain word lists. Alternative splits are
printed as a token lattice (term, offsets, position increment and length).`,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
}

// configErr remembers a config file which exists but cannot be read.
var configErr error

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is ./decompound.yaml or $HOME/.config/decompound/decompound.yaml)")
	flags.StringP("dictionary", "d", "", "compiled dictionary file")
	flags.StringSlice("wordlist", nil, "word lists to compile in memory if no dictionary is given")
	flags.StringSlice("glue", nil, "glue morphemes (default: e, es, en, er, n, ens, ns, s)")
	flags.String("trace", "Error", "trace level (Debug, Info, Error)")
	for _, key := range []string{"config", "dictionary", "wordlist", "glue", "trace"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func setDefaults() {
	viper.SetDefault("glue", decompound.DefaultGlueMorphemes)
	viper.SetDefault("trace", "Error")
	viper.SetDefault("min_word_size", analysis.DefaultMinWordSize)
	viper.SetDefault("only_longest_match", analysis.DefaultOnlyLongestMatch)
	viper.SetDefault("preserve_original", analysis.DefaultPreserveOriginal)
	viper.SetDefault("cache_size", 4096)
}

func initConfig() {
	setDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("decompound")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/decompound")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DECOMPOUND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

func setupTracing(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	// the adapter hands out one tracer for all keys
	tracing.Select("decompound").SetTraceLevel(tracing.TraceLevelFromString(viper.GetString("trace")))
	return nil
}

// loadDictionary opens the configured dictionary. Compiled dictionaries are
// memory-mapped; word lists are compiled on the fly.
func loadDictionary() (*decompound.Dictionary, error) {
	glue := viper.GetStringSlice("glue")
	if path := viper.GetString("dictionary"); path != "" {
		return decompound.LoadDictionary(path, glue)
	}
	lists := viper.GetStringSlice("wordlist")
	if len(lists) == 0 {
		return nil, errors.New("no dictionary configured: use --dictionary, --wordlist or DECOMPOUND_DICTIONARY")
	}
	readers, closeAll, err := openWordLists(lists)
	if err != nil {
		return nil, err
	}
	defer closeAll()
	return decompound.NewDictionary(strings.Join(lists, ","), glue, readers...)
}
