package main

import (
	"flag"
	"log"

	"lifepaint/internal/app"
	"lifepaint/internal/core"
	"lifepaint/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.GridSize = 0
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	// One terminal cell per board cell.
	cfg.CellSize = 1

	t, err := term.Open()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GridSize == 0 {
		cfg.GridSize = t.Fit()
	}

	sess, err := app.NewSession(*cfg, t)
	if err != nil {
		t.Close()
		log.Fatal(err)
	}
	err = sess.Run(t, core.NewFixedStep(cfg.TPS))
	t.Close()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("quit after %d generations, %d cells alive", sess.Generation(), sess.Grid().CountAlive())
}
