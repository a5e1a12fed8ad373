// make_vocab builds a serialized vocabulary index from a text wordlist,
// so first use of a language doesn't pay the build cost.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gridrush/gridrush/config"
	"github.com/gridrush/gridrush/vocabulary"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal().Msg("usage: make_vocab <language>")
	}
	language := flag.Arg(0)

	cfg := &config.Config{}
	if err := cfg.Load(); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	v, err := vocabulary.Load(cfg, language)
	if err != nil {
		log.Fatal().Err(err).Str("language", language).Msg("could not build index")
	}
	log.Info().Str("language", v.Language()).Int("words", v.WordCount()).Msg("index ready")
}
