// Command pickdemo loads a scene file, renders its pick buffer on the CPU and
// answers pick queries read from standard input.
//
// Each input line holds window coordinates "x y". The answer is
// "object/group #code (r,g,b)" for a hit or "none" for a miss:
//
//	$ pickdemo -scene human.toml -width 400 -height 300 -dump pick.png
//	200 80
//	human/head #1 (8,0,0)
//	5 5
//	none
//
// With -watch the scene is reloaded and re-rendered whenever the file
// changes. Codes are assigned afresh on every reload.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogpu/pick"
)

func main() {
	var (
		scene   = flag.String("scene", "", "scene file (.toml, .yaml or .yml)")
		width   = flag.Int("width", 800, "viewport width in physical pixels")
		height  = flag.Int("height", 600, "viewport height in physical pixels")
		scale   = flag.Float64("scale", 1, "physical pixels per logical pixel")
		dump    = flag.String("dump", "", "write the pick buffer to this PNG file")
		watch   = flag.Bool("watch", false, "reload the scene when the file changes")
		logFile = flag.String("log", "", "write logs to this file, rotated by size")
		verbose = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	if *scene == "" {
		fmt.Fprintln(os.Stderr, "pickdemo: -scene is required")
		flag.Usage()
		os.Exit(2)
	}

	logger, closeLog := newLogger(*logFile, *verbose)
	defer closeLog()
	pick.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		path:   *scene,
		width:  *width,
		height: *height,
		scale:  *scale,
		dump:   *dump,
	}
	if err := a.run(ctx, os.Stdin, os.Stdout, *watch); err != nil {
		logger.Error("pickdemo failed", "err", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "pickdemo: %v\n", err)
		os.Exit(1)
	}
}
