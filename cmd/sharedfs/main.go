package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/sharedfs/internal/config"
	"github.com/GriffinCanCode/sharedfs/internal/format"
	"github.com/GriffinCanCode/sharedfs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/sharedfs/internal/logging"
	"github.com/GriffinCanCode/sharedfs/internal/providers/filesystem"
	"github.com/GriffinCanCode/sharedfs/internal/shared/paths"
	"github.com/GriffinCanCode/sharedfs/internal/shared/utils"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var errUsage = errors.New("usage: sharedfs [flags] <walk|list|abs|rel|domain> [arg]")

func main() {
	cfg := config.LoadOrDefault()

	logger := logging.NewDefault()
	if err := run(os.Args[1:], os.Stdout, cfg, &logger); err != nil {
		logger.Error("sharedfs failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run parses args and executes one command. The logger pointer is replaced
// once flags decide the log mode.
func run(args []string, stdout io.Writer, cfg *config.Config, logger **logging.Logger) error {
	fs := flag.NewFlagSet("sharedfs", flag.ContinueOnError)
	root := fs.String("root", cfg.Share.Root, "Shared folder (absolute)")
	outFormat := fs.String("format", cfg.Output.Format, "Output format: json, yaml, toml")
	glob := fs.String("glob", "", "Only keep listing entries matching this doublestar pattern")
	metricsFile := fs.String("metrics-file", cfg.Metrics.TextfilePath, "Write prometheus metrics to this textfile")
	dev := fs.Bool("dev", cfg.Logging.Development, "Development logging (console, debug)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logCfg := logging.Config{Level: cfg.Logging.Level, Development: *dev}
	if *dev {
		logCfg = logging.DevelopmentConfig()
	}
	if l, err := logging.New(logCfg); err == nil {
		*logger = l
	}

	if fs.NArg() < 1 {
		return errUsage
	}
	f, err := format.ParseFormat(*outFormat)
	if err != nil {
		return err
	}

	cmd, arg := fs.Arg(0), fs.Arg(1)
	log := (*logger).WithScan(uuid.NewString(), *root)

	reg := prometheus.NewRegistry()
	scanner := &filesystem.Scanner{
		Logger:  log,
		Metrics: monitoring.NewMetrics(reg),
	}

	out, err := execute(cmd, arg, *root, *glob, scanner)
	if err != nil {
		return err
	}
	if err := format.Encode(stdout, out, f); err != nil {
		return err
	}

	if *metricsFile != "" {
		if err := monitoring.WriteTextfile(*metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	log.Debug("command finished", zap.String("command", cmd))
	return nil
}

func execute(cmd, arg, root, glob string, scanner *filesystem.Scanner) (any, error) {
	switch cmd {
	case "walk":
		if err := requireRoot(root); err != nil {
			return nil, err
		}
		listing, err := scanner.Walk(paths.ToAbsolute(arg, root), nil, root)
		if err != nil {
			return nil, err
		}
		return applyGlob(listing, glob)

	case "list":
		if err := requireRoot(root); err != nil {
			return nil, err
		}
		listing, err := scanner.List(paths.ToAbsolute(arg, root), root)
		if err != nil {
			return nil, err
		}
		return applyGlob(listing, glob)

	case "abs":
		if err := requireRoot(root); err != nil {
			return nil, err
		}
		return map[string]string{"path": paths.ToAbsolute(arg, root)}, nil

	case "rel":
		if err := requireRoot(root); err != nil {
			return nil, err
		}
		return map[string]string{"path": paths.ToRelative(arg, root)}, nil

	case "domain":
		domain, ok := utils.ExtractDomain(arg)
		if !ok {
			return nil, utils.ErrNoDomain
		}
		host, _ := utils.ExtractHost(arg)
		out := map[string]string{"domain": domain, "host": host}
		if registrable, err := utils.RegistrableDomain(arg); err == nil {
			out["registrable"] = registrable
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func applyGlob[M ~map[string]V, V any](listing M, glob string) (M, error) {
	if glob == "" {
		return listing, nil
	}
	return filesystem.Filter(listing, glob)
}

func requireRoot(root string) error {
	if root == "" {
		return errors.New("shared folder not set: use -root or SHAREDFS_ROOT")
	}
	return nil
}
