// Command mammocat is the CLI edge around the pkg/mammogram classification
// and selection core: a thin urfave/cli wrapper, no business logic of its
// own.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	internalcli "github.com/medcognetics/mammocat/internal/cli"
	"github.com/medcognetics/mammocat/internal/config"
)

var (
	Version   = "0.0.1-beta"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		cancel()
	}()

	app := &cli.App{
		Name:      "mammocat",
		Usage:     "Classify and select preferred mammogram views from DICOM headers",
		Version:   fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildDate, GitCommit),
		Copyright: "© 2026 medcognetics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file path",
				Value:   "mammocat.yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warning, error)",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				logrus.Debugf("using default configuration: %v", err)
				cfg = config.DefaultConfig()
			}
			if level := c.String("log-level"); c.IsSet("log-level") && level != "" {
				cfg.Logging.Level = level
			}

			if err := initLogging(cfg.Logging); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			c.Context = context.WithValue(c.Context, config.ContextKey, cfg)
			return nil
		},
		Commands: []*cli.Command{
			internalcli.ExtractCommand(),
			internalcli.SelectCommand(),
			internalcli.TagsCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logrus.Fatalf("mammocat: %v", err)
	}
}

func initLogging(cfg config.LoggingConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return nil
}
