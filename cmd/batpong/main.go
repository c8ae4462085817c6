package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/batpong/internal/app"
	"github.com/diegok/batpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  batpong [options]                Play a two-player match in the terminal")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --fps <n>           Frames per second, 30-240 (default: 60)")
	fmt.Fprintln(os.Stderr, "  --volume <v>        Master volume, 0-1 (default: 1)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for ball launches (default: clock)")
	fmt.Fprintln(os.Stderr, "  --log <file>        Append log lines to a file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W / S               Player 1 up / down")
	fmt.Fprintln(os.Stderr, "  Up / Down           Player 2 up / down")
	fmt.Fprintln(os.Stderr, "  Space or Enter      Start")
	fmt.Fprintln(os.Stderr, "  Q or Esc            Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  batpong")
	fmt.Fprintln(os.Stderr, "  batpong --fps 120 --volume 0.5")
	fmt.Fprintln(os.Stderr, "  batpong --mute --log /tmp/batpong.log")
}
