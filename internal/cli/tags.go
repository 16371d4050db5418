package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/medcognetics/mammocat/pkg/mammogram"
)

// TagsCommand returns the "tags" subcommand: look up a single named tag's
// value in a DICOM instance, for ad-hoc inspection of a file's header.
func TagsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "Print a single named DICOM tag's value",
		ArgsUsage: "<path> <tag-name>",
		Action:    tagsAction,
	}
}

func tagsAction(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("tags requires exactly two arguments: <path> <tag-name>")
	}
	path, name := args[0], args[1]

	value, err := mammogram.ExtractTagValue(path, name)
	if err != nil {
		var notFound *mammogram.TagNotFoundError
		if errors.As(err, &notFound) {
			logrus.WithField("path", path).WithField("tag", name).Warn("tag not present in instance")
		}
		return err
	}

	fmt.Println(value)
	return nil
}
