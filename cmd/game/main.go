package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mhorn/skyfall/internal/audio"
	"github.com/mhorn/skyfall/internal/config"
	"github.com/mhorn/skyfall/internal/loop"
	"github.com/mhorn/skyfall/internal/score"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		// No audio device is fine; the game runs silent.
		player = nil
	}
	defer player.Close()

	opts := loop.Options{
		Store:      score.NewStore(),
		Audio:      player,
		PlayerName: config.GetEnv("USER", "anonymous"),
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
