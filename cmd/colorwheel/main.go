package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jsvensson/colorwheel/internal/color"
	"github.com/jsvensson/colorwheel/internal/config"
	"github.com/jsvensson/colorwheel/internal/format"
	"github.com/jsvensson/colorwheel/internal/picker"
	"github.com/jsvensson/colorwheel/internal/wheel"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagJSON      bool
	flagVerbose   int
	flagX         float64
	flagY         float64
	flagLightness float64
	flagFrom      string
	flagSize      float64
	flagOffset    float64
	flagLength    float64
	flagCheck     bool
	flagWatch     bool
	version       = "dev" // Injected at build time via ldflags
)

var errNotFormatted = errors.New("files need formatting")

var rootCmd = &cobra.Command{
	Use:     "colorwheel",
	Short:   "Convert colors and drive a headless HSL color wheel",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
	SilenceUsage: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print a color as hex, rgb and hsl",
	Long:  `Accepts "#RRGGBB", "rgb(r, g, b)" or "hsl(h, s%, l%)".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Apply a wheel sample to a color",
	Long: "Moves the wheel handle of the --from color to (--x, --y) and prints the result.\n" +
		"Coordinates are in the unit square unless --size is given, in which case they are pixels.",
	Args: cobra.NoArgs,
	RunE: runPick,
}

var handleCmd = &cobra.Command{
	Use:   "handle <color>",
	Short: "Print the wheel handle position of a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runHandle,
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Map a lightness bar offset to a lightness level",
	Args:  cobra.NoArgs,
	RunE:  runLevel,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Load a picker file and print each picker's starting color",
	Long:  "Load a picker file and print each picker's starting color. With --watch, reprint on every change until interrupted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format picker files",
	Long:  "Format one or more picker files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log verbosity (repeat for more)")

	pickCmd.Flags().Float64Var(&flagX, "x", 0.5, "horizontal wheel coordinate")
	pickCmd.Flags().Float64Var(&flagY, "y", 0.5, "vertical wheel coordinate")
	pickCmd.Flags().Float64Var(&flagLightness, "lightness", 0, "also set lightness (0-100)")
	pickCmd.Flags().StringVar(&flagFrom, "from", picker.DefaultColor.Hex, "starting color")
	pickCmd.Flags().Float64Var(&flagSize, "size", 0, "wheel diameter in pixels; makes --x and --y pixel offsets")

	handleCmd.Flags().Float64Var(&flagLength, "length", picker.DefaultSize, "lightness bar length in pixels")

	levelCmd.Flags().Float64Var(&flagOffset, "offset", 0, "offset from the left end of the bar")
	levelCmd.Flags().Float64Var(&flagLength, "length", picker.DefaultSize, "lightness bar length")

	checkCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "reload and reprint when the file changes")

	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(convertCmd, pickCmd, handleCmd, levelCmd, checkCmd, fmtCmd, versionCmd)
}

// parseColor reads a color argument into a snapshot.
func parseColor(s string) (color.Snapshot, error) {
	in, err := color.ParseInput(s)
	if err != nil {
		return color.Snapshot{}, err
	}
	return color.Normalize(in)
}

func runConvert(cmd *cobra.Command, args []string) error {
	snap, err := parseColor(args[0])
	if err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), snap)
}

func runPick(cmd *cobra.Command, args []string) error {
	in, err := color.ParseInput(flagFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}

	opts := []picker.Option{}
	if flagSize > 0 {
		opts = append(opts, picker.WithSize(flagSize))
	}
	p := picker.New(in, opts...)

	var snap color.Snapshot
	if flagSize > 0 {
		snap = p.PointerAtPixels(flagX, flagY)
	} else {
		snap = p.PointerAt(flagX, flagY)
	}
	if cmd.Flags().Changed("lightness") {
		snap = p.Apply(color.Lightness(flagLightness))
	}
	return printSnapshot(cmd.OutOrStdout(), snap)
}

func runHandle(cmd *cobra.Command, args []string) error {
	snap, err := parseColor(args[0])
	if err != nil {
		return err
	}

	pt := wheel.Handle(snap.HSL)
	bar := wheel.OffsetFromLevel(snap.HSL.L, flagLength)

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, struct {
			X         float64 `json:"x"`
			Y         float64 `json:"y"`
			Lightness float64 `json:"lightness_offset"`
		}{pt.X, pt.Y, bar})
	}
	fmt.Fprintf(out, "wheel  x=%s y=%s\n", color.FormatNumber(pt.X), color.FormatNumber(pt.Y))
	fmt.Fprintf(out, "bar    %s of %s\n", color.FormatNumber(bar), color.FormatNumber(flagLength))
	return nil
}

func runLevel(cmd *cobra.Command, args []string) error {
	level := wheel.LevelFromOffset(flagOffset, flagLength)

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, struct {
			Level float64 `json:"level"`
		}{level})
	}
	fmt.Fprintln(out, color.FormatNumber(level))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	if flagWatch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return config.Watch(ctx, args[0], 0, func(file *config.File, err error) {
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}
			if err := printPickers(cmd.OutOrStdout(), file); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		})
	}

	file, err := config.Load(args[0])
	if err != nil {
		return err
	}
	return printPickers(cmd.OutOrStdout(), file)
}

func printPickers(out io.Writer, file *config.File) error {
	if flagJSON {
		type entry struct {
			Name  string         `json:"name"`
			Size  float64        `json:"size"`
			Color color.Snapshot `json:"color"`
		}
		entries := make([]entry, 0, len(file.Pickers))
		for _, pc := range file.Pickers {
			entries = append(entries, entry{Name: pc.Name, Size: pc.Size, Color: pc.New().Current()})
		}
		return writeJSON(out, entries)
	}

	for _, pc := range file.Pickers {
		snap := pc.New().Current()
		fmt.Fprintf(out, "%-12s %s  %s  %s\n", pc.Name, snap.Hex, snap.RGB, snap.HSL)
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	switch {
	case hasErrors:
		return errors.New("formatting failed")
	case flagCheck && needsFormatting:
		return errNotFormatted
	}
	return nil
}

func printSnapshot(w io.Writer, snap color.Snapshot) error {
	if flagJSON {
		return writeJSON(w, snap)
	}
	fmt.Fprintf(w, "hex  %s\n", snap.Hex)
	fmt.Fprintf(w, "rgb  %s\n", snap.RGB)
	fmt.Fprintf(w, "hsl  %s\n", snap.HSL)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
