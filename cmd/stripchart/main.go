// Command stripchart renders CSV and XLSX tables as strip charts.
//
// Each input file becomes one chart. Several files are stacked on top of
// each other into one output image with their plot areas aligned.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stripchart: ")

	opts := defaultOptions()
	rootCmd := &cobra.Command{
		Use:   "stripchart",
		Short: "Render tables of samples as strip charts",
		Long: `stripchart reads tables with an x column followed by y columns
from CSV, TSV or XLSX files and renders them as strip charts.`,
		SilenceUsage: true,
	}

	renderCmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render one chart per file into a PNG, SVG or PDF image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.follow {
				return follow(args, opts)
			}
			return render(args, opts)
		},
	}
	addChartFlags(renderCmd, opts)
	renderCmd.Flags().StringVarP(&opts.output, "output", "o", "chart.png", "Output file")
	renderCmd.Flags().StringVar(&opts.format, "format", "", "Output format png, svg or pdf (default: from output file name)")
	renderCmd.Flags().BoolVar(&opts.align, "align", true, "Align the plot areas of stacked charts")
	renderCmd.Flags().BoolVar(&opts.follow, "follow", false, "Render again whenever an input file changes")

	marginsCmd := &cobra.Command{
		Use:   "margins [file...]",
		Short: "Print the automatic plot margins of each file's chart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return margins(cmd.OutOrStdout(), args, opts)
		},
	}
	addChartFlags(marginsCmd, opts)

	rootCmd.AddCommand(renderCmd, marginsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addChartFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.IntVar(&opts.width, "width", opts.width, "Width of one chart in pixels")
	f.IntVar(&opts.height, "height", opts.height, "Height of one chart in pixels")
	f.StringVar(&opts.title, "title", "", "Chart title (default: file name)")
	f.StringVar(&opts.xLabel, "xlabel", "", "Label of the x axis")
	f.StringVar(&opts.yLabel, "ylabel", "", "Label of the y axis")
	f.StringVar(&opts.xScale, "xscale", "tight", "Autoscaling of the x axis: tight or loose")
	f.StringVar(&opts.yScale, "yscale", "loose", "Autoscaling of the y axis: tight or loose")
	f.StringVar(&opts.xRange, "xrange", "", "Fixed x range min:max")
	f.StringVar(&opts.yRange, "yrange", "", "Fixed y range min:max")
	f.IntVar(&opts.xTicks, "xticks", 8, "Requested number of x ticks")
	f.IntVar(&opts.yTicks, "yticks", 8, "Requested number of y ticks")
	f.BoolVar(&opts.noGrid, "no-grid", false, "Hide the gridlines")
	f.StringVar(&opts.margins, "margins", "auto", "Plot margins: auto, px:LEFT,RIGHT or pct:LEFT,RIGHT")
	f.StringVar(&opts.legend, "legend", "right", "Legend position: none, right or top")
	f.IntVar(&opts.decimation, "decimation", 1, "Draw only every n-th sample")
	f.BoolVar(&opts.lossless, "lossless", false, "Draw the min/max envelope per pixel column")
	f.StringVar(&opts.line, "line", "solid", "Line type: solid, dashed, dotted or none")
	f.StringVar(&opts.marker, "marker", "none", "Marker: none, point, circle, square or x")
	f.StringVar(&opts.colors, "colors", "plotutil", "Series colors: plotutil or kindlmann")
	f.StringVar(&opts.sheet, "sheet", "", "Worksheet of XLSX input (default: first)")
}
