package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wpg/internal/loader"
	"github.com/blackwell-systems/wpg/internal/output"
	"github.com/blackwell-systems/wpg/internal/words"
)

var (
	splitOut      string
	splitUnitsPer int

	loadCmd = &cobra.Command{
		Use:   "load <file>",
		Short: "Replace the dictionary with a word list",
		Long: `Read a word list, one word per line, and make it the dictionary.

Words are lowercased and trimmed. Lines outside the configured letter
bounds are skipped, and in strict mode so are proper nouns and words with
anything other than letters. Used keys and puzzle history are kept.`,
		Example: `  wpg load words.txt
  wpg load words.txt --min 3 --max 7 --strict=false`,
		Args: cobra.ExactArgs(1),
		RunE: runLoad,
	}

	mergeCmd = &cobra.Command{
		Use:     "merge <file>",
		Short:   "Add the words of a word list to the dictionary",
		Example: `  wpg merge extra.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runMerge,
	}

	splitCmd = &cobra.Command{
		Use:   "split <file>",
		Short: "Split a large word list into numbered files for review",
		Long: `Filter a word list with the split bounds and write it into numbered files
of at most --units words each, named <base>_01.txt, <base>_02.txt and so on.
The dictionary is not touched.`,
		Example: `  wpg split words.txt --out parts --units 500`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSplit,
	}

	exportCmd = &cobra.Command{
		Use:     "export <file>",
		Short:   "Write the dictionary to a word list",
		Example: `  wpg export backup.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runExport,
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show dictionary statistics",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
)

func init() {
	for _, c := range []*cobra.Command{loadCmd, mergeCmd} {
		c.Flags().Int("min", 0, "shortest word to import (default from config)")
		c.Flags().Int("max", 0, "longest word to import, 0 for no limit (default from config)")
		c.Flags().Bool("strict", true, "skip proper nouns and words with non-letters (default from config)")
	}

	splitCmd.Flags().StringVar(&splitOut, "out", "", "output directory (default: next to the input file)")
	splitCmd.Flags().IntVar(&splitUnitsPer, "units", 0, "words per file (default from config)")

	RootCmd.AddCommand(loadCmd, mergeCmd, splitCmd, exportCmd, infoCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	return importList(cmd, args[0], (*loader.Loader).Load, "Loaded")
}

func runMerge(cmd *cobra.Command, args []string) error {
	return importList(cmd, args[0], (*loader.Loader).Merge, "Merged")
}

func importList(cmd *cobra.Command, path string, op func(*loader.Loader, string, words.Filter) (*loader.Result, error), verb string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	spin := newSpinner("Reading " + filepath.Base(path))
	res, err := op(loader.New(st), path, importFilter(cmd))
	spin.Stop()
	if err != nil {
		return err
	}

	total, err := st.CountWords()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d lines, %d accepted, %d new (%d words in dictionary)\n",
		verb, path, res.Read, res.Accepted, res.Added, total)
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	path := args[0]

	unitsPer := cfg.Split.UnitsPer
	if cmd.Flags().Changed("units") {
		unitsPer = splitUnitsPer
	}

	outDir := splitOut
	if outDir == "" {
		outDir = filepath.Dir(path)
	}

	filter := words.Filter{
		MinLetters: cfg.Split.MinLetters,
		MaxLetters: cfg.Split.MaxLetters,
		Strict:     cfg.Import.Strict,
	}

	paths, err := loader.Split(path, outDir, unitsPer, filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d files:\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := loader.New(st).Export(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", n, args[0])
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	total, err := st.CountWords()
	if err != nil {
		return err
	}
	used, err := st.ListUsedKeys()
	if err != nil {
		return err
	}
	hist, err := st.LengthHistogram()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	path, _ := getDBPath()
	fmt.Fprintf(out, "Database:  %s\n", path)
	fmt.Fprint(out, output.RenderInfo(total, len(used), hist))

	if total == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "The dictionary is empty. Run 'wpg load <file>' first.")
	}
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
