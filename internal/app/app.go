// Package app wires CLI parsing, logging, config, and command execution.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dvargas2332/yui/internal/audio"
	"github.com/Dvargas2332/yui/internal/cli"
	"github.com/Dvargas2332/yui/internal/config"
	"github.com/Dvargas2332/yui/internal/doctor"
	"github.com/Dvargas2332/yui/internal/logging"
	"github.com/Dvargas2332/yui/internal/stt"
	"github.com/Dvargas2332/yui/internal/version"
	"github.com/Dvargas2332/yui/internal/wake"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr, Stdin: stdin}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("yui"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("yui"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandListen:
		return r.commandListen(ctx, cfgLoaded.Config, logger)
	case cli.CommandStrip:
		fmt.Fprintln(r.Stdout, wake.Strip(parsed.Text, cfgLoaded.Config.Wake))
		return 0
	case cli.CommandDevices:
		return r.commandDevices(ctx)
	case cli.CommandDoctor:
		report := doctor.Run(cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// commandListen runs one detection attempt and prints the outcome. Exit code
// 0 means the wake word was heard, 1 means it was not.
func (r Runner) commandListen(ctx context.Context, cfg config.Config, logger *slog.Logger) int {
	recognizer, err := stt.New(cfg, stt.Options{TextInput: r.Stdin, Logger: logger})
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("select stt backend failed", "error", err.Error())
		return 1
	}

	detector := wake.NewDetector(cfg, recognizer, logger)
	result := detector.WaitForWake(ctx)

	logger.Info("listen attempt finished",
		"backend", recognizer.Name(),
		"heard", result.Heard,
		"captured", result.Transcript != "",
	)

	if !result.Heard {
		if result.Transcript == "" {
			fmt.Fprintln(r.Stdout, "not heard (no speech captured)")
		} else {
			fmt.Fprintf(r.Stdout, "not heard: %q\n", result.Transcript)
		}
		return 1
	}

	if result.Transcript == "" {
		fmt.Fprintln(r.Stdout, "heard (wake gating disabled)")
		return 0
	}

	fmt.Fprintf(r.Stdout, "heard: %q\n", result.Transcript)
	if command := wake.Strip(result.Transcript, cfg.Wake); command != "" {
		fmt.Fprintf(r.Stdout, "command: %q\n", command)
	}
	return 0
}

func (r Runner) commandDevices(ctx context.Context) int {
	devices, err := audio.ListDevices(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if len(devices) == 0 {
		fmt.Fprintln(r.Stdout, "no audio devices found")
		return 1
	}

	for _, device := range devices {
		defaultMark := " "
		if device.Default {
			defaultMark = "*"
		}
		availability := "yes"
		if !device.Available {
			availability = "no"
		}
		muted := "no"
		if device.Muted {
			muted = "yes"
		}
		fmt.Fprintf(
			r.Stdout,
			"%s [%d] id=%s | description=%q | state=%s | available=%s | muted=%s\n",
			defaultMark,
			device.Index,
			device.ID,
			device.Description,
			device.State,
			availability,
			muted,
		)
	}

	return 0
}
