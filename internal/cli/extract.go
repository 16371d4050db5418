// Package cli holds mammocat's urfave/cli subcommands, thin callers of the
// pure pkg/mammogram core.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/medcognetics/mammocat/pkg/mammogram"
)

// ExtractCommand returns the "extract" subcommand: classify a single DICOM
// instance and print its metadata.
func ExtractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Classify one DICOM instance's mammogram metadata",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, json",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "is-sfm",
				Usage: "Hint that the instance is digitized screen-film",
			},
		},
		Action: extractAction,
	}
}

func extractAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("extract requires a DICOM file path")
	}

	format := c.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: want text or json", format)
	}

	logrus.WithField("path", path).Info("extracting mammogram metadata")

	var extractor mammogram.MammogramExtractor
	meta, err := extractor.ExtractFromFileWithOptions(path, c.Bool("is-sfm"))
	if err != nil {
		return fmt.Errorf("failed to extract metadata: %w", err)
	}

	if format == "json" {
		data, err := json.MarshalIndent(meta.ToMap(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("type:         %s\n", meta.MammogramType)
	fmt.Printf("laterality:   %s\n", meta.Laterality)
	fmt.Printf("view:         %s\n", meta.ViewPosition)
	fmt.Printf("for_processing: %v\n", meta.IsForProcessing)
	fmt.Printf("has_implant:  %v\n", meta.HasImplant)
	fmt.Printf("frames:       %d\n", meta.NumberOfFrames)
	return nil
}
