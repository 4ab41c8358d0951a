package cmd

import (
	"io"
	"path/filepath"

	"github.com/benoitkugler/svgmorph/svgmorph"
	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exampleForCheckCmd = `
check that the hands may be animated, and show how their shapes are matched:
  svgmorph check 'hand*.svg'

use the permissive matching:
  svgmorph check --matching permissive 'hand*.svg'
`

func newCheckCmd(out io.Writer, root *rootOpts) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:     "check <file or pattern>...",
		Short:   "Validate the documents and print the matching of their shapes",
		Example: exampleForCheckCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := loadMatchMode(root.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			files, err := expandInputs(args)
			if err != nil {
				return err
			}
			trans, err := svgmorph.LoadTransition(files, svgmorph.WithMatchMode(mode))
			if err != nil {
				return err
			}
			printBijects(out, trans)
			logrus.Infof("%d documents may be animated (%s matching)", trans.Len(), mode)
			return nil
		},
	}
	addMatchingFlag(checkCmd.Flags())
	return checkCmd
}

// printBijects writes one row per shape of the reference document,
// with the address of its correspondent in each document.
func printBijects(out io.Writer, trans *svgmorph.Transition) {
	docs, bijects := trans.Documents(), trans.Bijects()

	header := make([]string, len(docs))
	for j, doc := range docs {
		header[j] = filepath.Base(doc.Source)
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for i := range docs[0].Root.Children {
		row := make([]string, len(docs))
		for j, doc := range docs {
			row[j] = svgtree.AddressOf(doc.Root.Children[bijects[j][i]])
		}
		table.Append(row)
	}
	table.Render()
}
