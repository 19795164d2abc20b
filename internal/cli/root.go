package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/guarzo/mtgsetlist/internal/config"
	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/output"
)

var version = "0.3.0"

var flags struct {
	set     string
	format  string
	copies  int
	colors  string
	commons bool
	out     string
	output  string
	verbose bool
	version bool
}

var rootCmd = &cobra.Command{
	Use:   "mtgsetlist",
	Short: "Export Magic: The Gathering set lists from Scryfall",
	Long: `mtgsetlist queries the Scryfall card database for the cards of one set
that are legal in a constructed format and renders them as a plain-text
deck list.

Run it with no arguments for guided prompts, or drive it with flags:

  mtgsetlist --set neo --format pauper --copies 4 --colors ur`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.set, "set", "s", "", "set code to export (e.g. neo)")
	f.StringVarP(&flags.format, "format", "f", string(model.FormatPauper), "legality format (pauper, standard, modern, legacy, vintage, commander)")
	f.IntVarP(&flags.copies, "copies", "c", 0, "copy-count prefix for every line, 0-4 (0 omits the prefix)")
	f.StringVar(&flags.colors, "colors", "", "only keep cards within these colors (letters from WUBRG)")
	f.BoolVar(&flags.commons, "commons", false, "restrict the search to commons")
	f.StringVarP(&flags.out, "out", "o", "", "write the list to this file instead of stdout")
	f.StringVar(&flags.output, "output", string(output.Text), "output format: text, json or csv")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "report pages, retries and cache hits on stderr")
	f.BoolVar(&flags.version, "version", false, "print version and exit")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "mtgsetlist: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flags.version {
		fmt.Fprintf(cmd.OutOrStdout(), "mtgsetlist %s\n", version)
		return nil
	}

	// No flags at all means guided mode; partial flags with a missing
	// set code are a hard validation error.
	var (
		q   config.Query
		err error
	)
	if cmd.Flags().NFlag() == 0 {
		q, err = promptQuery(os.Stdin, os.Stderr)
	} else {
		q, err = queryFromFlags()
	}
	if err != nil {
		return err
	}

	return runQuery(cmd.Context(), q, config.LoadEnv())
}

func queryFromFlags() (config.Query, error) {
	format, err := model.ParseFormat(flags.format)
	if err != nil {
		return config.Query{}, err
	}
	colors, err := model.ParseColors(flags.colors)
	if err != nil {
		return config.Query{}, err
	}
	outFormat, err := output.ParseFormat(flags.output)
	if err != nil {
		return config.Query{}, err
	}

	q := config.Query{
		SetCode:      strings.ToLower(strings.TrimSpace(flags.set)),
		Format:       format,
		Copies:       flags.copies,
		Colors:       colors,
		CommonsOnly:  flags.commons,
		OutputPath:   flags.out,
		OutputFormat: outFormat,
		Verbose:      flags.verbose,
	}
	if err := q.Validate(); err != nil {
		return config.Query{}, err
	}
	return q, nil
}
