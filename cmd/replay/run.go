package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/interact"
	"github.com/go-theft-auto/interact/replay"
)

var runCmd = &cobra.Command{
	Use:   "run [scenario.json...]",
	Short: "Run one or more scenario files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interact.SetVerbose(verbose)
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		replay.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		var failed int
		for _, path := range args {
			if err := runFile(cmd, path); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d scenarios failed", failed, len(args))
		}
		return nil
	},
}

func runFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	s, err := replay.Parse(data)
	if err != nil {
		return err
	}

	report, err := replay.Run(s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	name := s.Name
	if name == "" {
		name = path
	}
	if verbose {
		for _, r := range report.Results {
			fmt.Fprintln(out, r)
		}
	}

	if err := report.Err(); err != nil {
		if errors.Is(err, replay.ErrExpectation) {
			fmt.Fprintf(out, "FAIL %s (%d frames, %d/%d checks failed)\n",
				name, report.Frames, len(report.Failures()), len(report.Results))
		}
		return err
	}
	fmt.Fprintf(out, "ok   %s (%d frames, %d checks)\n", name, report.Frames, len(report.Results))
	return nil
}
