package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/medcognetics/mammocat/internal/config"
	"github.com/medcognetics/mammocat/pkg/mammogram"
)

// SelectCommand returns the "select" subcommand: classify the DICOM instance
// at each given file path and print the preferred view assignment.
func SelectCommand() *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "Pick the preferred record for each standard mammogram view",
		ArgsUsage: "<path> [path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "Preference order: default, tomo-first",
				Value: "default",
			},
		},
		Action: selectAction,
	}
}

func selectAction(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("select requires at least one DICOM file path")
	}

	format := c.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: want text or json", format)
	}

	cfg, ok := c.Context.Value(config.ContextKey).(*config.Config)
	if !ok {
		cfg = config.DefaultConfig()
	}

	order := cfg.PreferenceOrder()
	if c.IsSet("order") {
		order = mammogram.PreferenceDefault
		if strings.EqualFold(c.String("order"), "tomo-first") {
			order = mammogram.PreferenceTomoFirst
		}
	}

	records := make([]mammogram.MammogramRecord, 0, len(paths))
	for _, path := range paths {
		rec, err := mammogram.FromFile(path)
		if err != nil {
			logrus.WithField("path", path).WithError(err).Warn("skipping unreadable DICOM instance")
			continue
		}
		records = append(records, rec)
	}

	chosen := mammogram.GetPreferredViewsFiltered(records, order, cfg.FilterConfig())

	if format == "json" {
		out := make(map[string]any, len(chosen))
		for view, rec := range chosen {
			key := fmt.Sprintf("%s_%s", view.Laterality, view.View)
			if rec == nil {
				out[key] = nil
			} else {
				out[key] = rec.ToMap()
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal selection: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, view := range mammogram.StandardViews() {
		rec := chosen[view]
		if rec == nil {
			fmt.Printf("%s %s: (none)\n", view.Laterality, view.View)
			continue
		}
		fmt.Printf("%s %s: %s\n", view.Laterality, view.View, rec.FilePath)
	}
	return nil
}
