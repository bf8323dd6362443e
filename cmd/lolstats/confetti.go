package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/lolgame/internal/chime"
	"github.com/decker502/lolgame/pkg/confetti"
	"github.com/decker502/lolgame/pkg/render"
)

func newConfettiCmd(d deps, root *rootOptions) *cobra.Command {
	var (
		fps   int
		sound bool
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "confetti",
		Short: "Play the confetti burst in the terminal (q or Esc to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}

			kit, err := root.kit()
			if err != nil {
				return err
			}
			params, err := confetti.NewParams(kit.Confetti)
			if err != nil {
				return err
			}

			screen, err := d.newScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to init screen: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			go watchQuitKeys(screen, cancel)

			if sound {
				player, err := chime.NewPlayer()
				if err != nil {
					log.Printf("[lolstats] Sound disabled: %v", err)
				}
				defer player.Close()
				player.Play()
			}

			if seed == 0 {
				seed = d.now().UnixNano()
			}
			effect := confetti.NewEffect(render.NewTerminalSurface(screen), params, rand.New(rand.NewSource(seed)))

			err = effect.Run(ctx, time.Second/time.Duration(fps))
			if err == context.Canceled {
				return nil
			}
			if err != nil {
				return err
			}
			log.Printf("[lolstats] Confetti finished after %d ticks", effect.Ticks())
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "frames per second")
	cmd.Flags().BoolVar(&sound, "sound", false, "play a celebration chime")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

// watchQuitKeys 监听退出按键；屏幕关闭后 PollEvent 返回 nil，goroutine 随之退出
func watchQuitKeys(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
			cancel()
		}
	}
}
