package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nogo/engine"
	"nogo/experiments"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"
)

func main() {
	black := flag.String("black", "name=black", "Arguments of the black agent")
	white := flag.String("white", "name=white", "Arguments of the white agent")
	experiment := flag.String("experiment", "", "Experiment setup file, runs it instead of a single game")
	results := flag.String("results", "results", "Directory for experiment records")
	dot := flag.String("dot", "", "File receiving the DOT graph of every search")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	if *experiment != "" {
		err = runExperiment(*experiment, *results)
	} else {
		err = playGame(*black, *white, *dot)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}

func runExperiment(path, results string) error {
	setup, err := experiments.LoadSetup(path)
	if err != nil {
		return err
	}
	writer, err := metrics.NewWriter(results, setup.Name)
	if err != nil {
		return err
	}
	if _, err := experiments.Run(setup, writer); err != nil {
		return err
	}
	log.Info().Msgf("records stored in %s", writer.Dir())
	return nil
}

func playGame(blackArgs, whiteArgs, dot string) error {
	var options []searcher.Option
	if dot != "" {
		f, err := os.Create(dot)
		if err != nil {
			return err
		}
		defer f.Close()
		options = append(options, searcher.WithGraphWriter(f))
	}

	black, err := experiments.NewAgent(metrics.AgentConfig{Args: blackArgs}, game.Black, options...)
	if err != nil {
		return err
	}
	white, err := experiments.NewAgent(metrics.AgentConfig{Args: whiteArgs}, game.White, options...)
	if err != nil {
		return err
	}

	e := engine.NewLocalEngine(black, white)
	winner, gameMetric, _ := e.Run()

	fmt.Print(render(e.Board()))
	fmt.Printf("%s wins after %d moves in %s\n", winner, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return nil
}
