package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/retroware/chip8/internal/chip8"
	"github.com/retroware/chip8/internal/dasm"
	"github.com/retroware/chip8/internal/hal"
	"github.com/spf13/cobra"
)

func main() {
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("%s PATH_TO_ROM_FILE", filepath.Base(os.Args[0])),
		Short:         "Run emulator",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
	}

	verbose := cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	frameRate := cmd.Flags().Int("frame-rate", chip8.DefaultFrameRate, "frame rate in frames per second")
	ips := cmd.Flags().Int("ips", chip8.DefaultIPS, "instructions per second")

	var quirks chip8.Quirks
	cmd.Flags().BoolVar(&quirks.ShiftSourceVX, "quirk-shift-vx", false, "shift VX in place instead of reading VY")
	cmd.Flags().BoolVar(&quirks.KeepIndex, "quirk-keep-index", false, "leave the index register unchanged after block store/load")
	cmd.Flags().BoolVar(&quirks.JumpOffsetVX, "quirk-jump-vx", false, "jump with offset reads VX instead of V0")
	cmd.Flags().BoolVar(&quirks.WrapSprites, "quirk-wrap-sprites", false, "wrap sprite pixels around the screen edges instead of clipping")

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		setupLogging(*verbose)

		path := args[0]
		rom, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to load file %q: %w", path, err)
		}

		h, err := hal.New(*frameRate)
		if err != nil {
			return fmt.Errorf("unable to initialize hal: %w", err)
		}
		defer h.Shutdown()

		machine := chip8.New(chip8.Config{
			FrameRate: *frameRate,
			IPS:       *ips,
			Quirks:    quirks,
		})
		if err := machine.LoadProgram(rom); err != nil {
			return fmt.Errorf("unable to load program %q: %w", path, err)
		}

		for {
			err = machine.Run(h)

			if errors.Is(err, hal.ErrQuit) {
				return nil
			}

			if errors.Is(err, hal.ErrReboot) {
				slog.Info("reboot")
				machine.Reset()
				continue
			}

			return err
		}
	}

	cmd.AddCommand(dasmCommand(verbose))

	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		slog.Error("fatal error", "err", err)
		os.Exit(1)
	}
}

func dasmCommand(verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dasm PATH_TO_ROM_FILE",
		Short: "Print a disassembly listing of a ROM file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		setupLogging(*verbose)

		path := args[0]
		rom, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to load file %q: %w", path, err)
		}

		return dasm.Disassemble(os.Stdout, rom)
	}

	return cmd
}

func setupLogging(verbose bool) {
	loggerOpts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if verbose {
		loggerOpts.Level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, loggerOpts)))
}
