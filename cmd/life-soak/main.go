// Command life-soak runs a board headlessly through the same session loop the
// interactive frontends use and reports its population.
package main

import (
	"fmt"
	"log"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"lifepaint/internal/app"
	"lifepaint/internal/input"
	"lifepaint/internal/render"
)

type soakOptions struct {
	size        int
	generations int
	every       int
	seed        int64
	soup        bool
	gliders     []string
}

func main() {
	o := soakOptions{size: 80, generations: 200, every: 10, seed: 42}

	flaggy.SetName("life-soak")
	flaggy.SetDescription("Run a Game of Life board without a display")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&o.size, "s", "size", "Cells per side")
	flaggy.Int(&o.generations, "n", "generations", "Generations to simulate")
	flaggy.Int(&o.every, "e", "every", "Report the population every N generations")
	flaggy.Int64(&o.seed, "r", "seed", "Seed for the random soup")
	flaggy.Bool(&o.soup, "", "soup", "Start from a random soup")
	flaggy.StringSlice(&o.gliders, "g", "glider", "Glider anchor as x,y (repeatable)")
	flaggy.Parse()

	if len(o.gliders) == 0 && !o.soup {
		flaggy.ShowHelpAndExit("nothing to simulate: pass --glider or --soup")
	}

	frame, err := setupEvents(o)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	cfg := app.Config{GridSize: o.size, CellSize: 1, TPS: 1, Seed: o.seed}
	sess, err := app.NewSession(cfg, input.NewScript(frame))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s %dx%d, %d generations\n", aurora.Bold("Soaking").String(), o.size, o.size, o.generations)
	sink := render.Discard()
	for sess.Generation() < o.generations {
		sess.Update()
		sess.Draw(sink)
		if err := sink.Present(); err != nil {
			log.Fatal(err)
		}

		gen, alive := sess.Generation(), sess.Grid().CountAlive()
		if alive == 0 {
			fmt.Printf("  %s at generation %d\n", aurora.Red("extinct").String(), gen)
			return
		}
		if o.every > 0 && gen%o.every == 0 {
			fmt.Printf("  generation %v: %v alive\n", aurora.Cyan(gen), aurora.Green(alive))
		}
	}
	fmt.Printf("%s generation %d, %d cells alive\n", aurora.Bold("Finished").String(), sess.Generation(), sess.Grid().CountAlive())
}

// setupEvents builds the first tick: optional soup, the gliders, then play.
func setupEvents(o soakOptions) ([]input.Event, error) {
	var frame []input.Event
	if o.soup {
		frame = append(frame, input.KeyDownEvent(input.KeyR))
	}
	for _, g := range o.gliders {
		p, err := parseAnchor(g)
		if err != nil {
			return nil, err
		}
		frame = append(frame,
			input.PointerDownEvent(input.ButtonSecondary, p),
			input.PointerUpEvent(input.ButtonSecondary),
		)
	}
	return append(frame, input.KeyDownEvent(input.KeySpace)), nil
}
