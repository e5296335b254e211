package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vipcxj/rangeview/internal/slice"
)

func newSliceCmd() *cobra.Command {
	sliceCmd := &cobra.Command{
		Use:   "slice [flags] [items...]",
		Short: slice.ShortDesc,
		Long:  slice.LongDesc,
		Example: `  rangeview slice -r '[1,4)' 10 20 30 40 50
  seq 0 99 | rangeview slice -r '>=90' -p 0_2-3 -o comma
  eval "$(rangeview slice -r '<3' -e FIRST -o space a b c d)"`,
		RunE: runSlice,
	}
	flags := sliceCmd.Flags()
	flags.Int("start", 0, "Index of the first item")
	flags.StringArrayP("range", "r", nil, "Interval selecting a window of the current window, e.g. '[1,4)', '>=2', '3'; repeatable")
	flags.StringP("pick", "p", "", "Positions within the final window to keep, e.g. '0_2-4', '3-', 'all'")
	flags.Bool("index", false, "Prefix every item with its index and a tab")
	flags.StringSliceP("input-format", "i", nil,
		"How to split items: combination of comma, newline, space, or json (default from RANGEVIEW_INPUT_FORMAT)")
	flags.StringSliceP("output-format", "o", nil,
		"How to join items: comma, newline, space or json (default from RANGEVIEW_OUTPUT_FORMAT, else newline)")
	flags.StringP("export", "e", "", "Print a shell assignment of the result to this variable instead of the items")
	flags.Bool("export-global", false, "With --export, use the persistent form (export, setx, User scope)")
	flags.String("shell", "", "Shell dialect for --export: "+strings.Join(slice.ShellTypeStrings(), ", ")+" (default from RANGEVIEW_SHELL, else auto)")
	return sliceCmd
}

func runSlice(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	spec, err := collectSliceSpec(cmd.Flags(), cfg.InputFormat, cfg.OutputFormat, cfg.Shell)
	if err != nil {
		return err
	}
	return slice.RunSlice(spec, args, cmd.InOrStdin(), cmd.OutOrStdout(), log)
}

// collectSliceSpec reads the slice flags. Formats and shell fall back to the
// configured values unless set explicitly.
func collectSliceSpec(flags *pflag.FlagSet, inputFormat, outputFormat []string, shell string) (slice.SliceSpec, error) {
	var spec slice.SliceSpec
	var err error

	if spec.Start, err = flags.GetInt("start"); err != nil {
		return spec, err
	}
	ranges, err := flags.GetStringArray("range")
	if err != nil {
		return spec, err
	}
	for _, value := range ranges {
		r, err := slice.NewIntRange(value)
		if err != nil {
			return spec, err
		}
		spec.Ranges = append(spec.Ranges, r)
	}
	pick, err := flags.GetString("pick")
	if err != nil {
		return spec, err
	}
	if spec.Pick, err = slice.NewNaturalRangeFilter(pick); err != nil {
		return spec, err
	}
	if spec.Index, err = flags.GetBool("index"); err != nil {
		return spec, err
	}

	spec.InputFormat = inputFormat
	if flags.Changed("input-format") {
		if spec.InputFormat, err = flags.GetStringSlice("input-format"); err != nil {
			return spec, err
		}
	}
	spec.OutputFormat = outputFormat
	if flags.Changed("output-format") {
		if spec.OutputFormat, err = flags.GetStringSlice("output-format"); err != nil {
			return spec, err
		}
	}

	if spec.ExportVar, err = flags.GetString("export"); err != nil {
		return spec, err
	}
	if spec.ExportGlobal, err = flags.GetBool("export-global"); err != nil {
		return spec, err
	}
	if flags.Changed("shell") {
		if shell, err = flags.GetString("shell"); err != nil {
			return spec, err
		}
	}
	if spec.ShellType, err = slice.ShellTypeString(shell); err != nil {
		return spec, err
	}
	return spec, nil
}
