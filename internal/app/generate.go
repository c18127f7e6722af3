package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wpg/internal/generator"
	"github.com/blackwell-systems/wpg/internal/output"
	"github.com/blackwell-systems/wpg/internal/words"
)

var (
	rankLimit   int
	rankLetters int
	usedClear   bool

	rankCmd = &cobra.Command{
		Use:   "rank",
		Short: "Show the best buckets by score",
		Long: `Build the bucket index and show buckets in ranked order.

A bucket's score is ten points per letter in its key plus one point per
reachable word, so longer keys always rank first and ties go to the bucket
that spells more words.`,
		Example: `  wpg rank --limit 20
  wpg rank --letters 6`,
		Args: cobra.NoArgs,
		RunE: runRank,
	}

	inspectCmd = &cobra.Command{
		Use:     "inspect <word>",
		Short:   "Show the bucket a word belongs to",
		Example: `  wpg inspect stare`,
		Args:    cobra.ExactArgs(1),
		RunE:    runInspect,
	}

	singleCmd = &cobra.Command{
		Use:   "single <letters> [count]",
		Short: "Generate puzzles with a given number of letters",
		Example: `  # One 6-letter puzzle
  wpg single 6

  # Five 4-letter puzzles
  wpg single 4 5`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runSingle,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles for every configured size",
		Long: `Generate up to --count puzzles for each size from --min to --max letters.

Each puzzle is written as JSON to the output directory and its key is
marked as used so later runs pick different letters.`,
		Example: `  wpg generate
  wpg generate --min 5 --max 6 --count 20 --out puzzles`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	usedCmd = &cobra.Command{
		Use:   "used",
		Short: "List or clear the keys that already produced puzzles",
		Example: `  wpg used
  wpg used --clear`,
		Args: cobra.NoArgs,
		RunE: runUsed,
	}

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List generated puzzles, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
)

func init() {
	rankCmd.Flags().IntVar(&rankLimit, "limit", 25, "number of buckets to show, 0 for all")
	rankCmd.Flags().IntVar(&rankLetters, "letters", 0, "only candidates with this many letters")

	for _, c := range []*cobra.Command{singleCmd, generateCmd} {
		c.Flags().Int("min-words", 0, "fewest answers per puzzle (default from config)")
		c.Flags().Int("max-words", 0, "most answers per puzzle, 0 for no limit (default from config)")
		c.Flags().String("out", "", "puzzle output directory (default from config)")
	}
	generateCmd.Flags().Int("min", 0, "smallest puzzle in letters (default from config)")
	generateCmd.Flags().Int("max", 0, "largest puzzle in letters (default from config)")
	generateCmd.Flags().Int("count", 0, "puzzles per size (default from config)")

	usedCmd.Flags().BoolVar(&usedClear, "clear", false, "forget every used key")

	RootCmd.AddCommand(rankCmd, inspectCmd, singleCmd, generateCmd, usedCmd, historyCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := loadGenerator(cmd, st)
	if err != nil {
		return err
	}

	ranked := gen.Rank(rankLimit)
	if rankLetters > 0 {
		ranked = gen.Candidates(rankLetters)
		if rankLimit > 0 && len(ranked) > rankLimit {
			ranked = ranked[:rankLimit]
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderBucketTable(ranked))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := loadGenerator(cmd, st)
	if err != nil {
		return err
	}

	in, err := gen.Inspect(args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderInspection(in))
	return nil
}

func runSingle(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid letter count %q: must be a positive number", args[0])
	}

	count := 1
	if len(args) > 1 {
		count, err = strconv.Atoi(args[1])
		if err != nil || count < 1 {
			return fmt.Errorf("invalid puzzle count %q: must be a positive number", args[1])
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := loadGenerator(cmd, st)
	if err != nil {
		return err
	}

	puzzles, err := gen.GenerateLength(commandContext(cmd), n, count)
	printPuzzles(cmd, puzzles)
	if err != nil {
		return err
	}
	if len(puzzles) == 0 {
		return fmt.Errorf("%w for %d letters", generator.ErrNoCandidates, n)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := generatorOptions(cmd)
	if opts.MinLetters > opts.MaxLetters {
		return fmt.Errorf("--min %d is greater than --max %d", opts.MinLetters, opts.MaxLetters)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := loadGenerator(cmd, st)
	if err != nil {
		return err
	}

	progress := output.NewProgress((opts.MaxLetters-opts.MinLetters+1)*opts.PuzzlesPerLength, "puzzles")
	gen.OnPuzzle = func(*generator.Puzzle) { progress.Increment() }

	puzzles, err := gen.Generate(commandContext(cmd))
	progress.Finish()
	if err != nil {
		return err
	}

	perSize := make(map[int]int)
	for _, p := range puzzles {
		perSize[words.Length(p.Letters)]++
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %d puzzles in %s\n", len(puzzles), opts.OutputDir)
	for n := opts.MinLetters; n <= opts.MaxLetters; n++ {
		fmt.Fprintf(out, "  %d letters: %d of %d\n", n, perSize[n], opts.PuzzlesPerLength)
	}
	return nil
}

func printPuzzles(cmd *cobra.Command, puzzles []*generator.Puzzle) {
	out := cmd.OutOrStdout()
	for i, p := range puzzles {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, output.RenderPuzzle(p))
	}
}

func runUsed(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	if usedClear {
		n, err := st.ClearUsedKeys()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %d used keys\n", n)
		return nil
	}

	keys, err := st.ListUsedKeys()
	if err != nil {
		return err
	}
	fmt.Fprint(out, output.RenderUsedKeys(keys))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListPuzzles()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderPuzzleHistory(records))
	return nil
}
