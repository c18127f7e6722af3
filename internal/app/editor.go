package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wpg/internal/output"
	"github.com/blackwell-systems/wpg/internal/store"
	"github.com/blackwell-systems/wpg/internal/words"
)

var (
	hideUndo   bool
	listLength int
	listHidden bool
	listLimit  int

	addCmd = &cobra.Command{
		Use:     "add <word>...",
		Short:   "Add words to the dictionary",
		Example: `  wpg add stare tears`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runAdd,
	}

	removeCmd = &cobra.Command{
		Use:     "remove <word>...",
		Short:   "Remove words from the dictionary",
		Example: `  wpg remove asset`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runRemove,
	}

	hideCmd = &cobra.Command{
		Use:   "hide <word>...",
		Short: "Add words as hidden so they only appear as bonus words",
		Long: `Hide words, adding any that are not in the dictionary yet.

Hidden words still count towards a bucket's score, but generated puzzles
list them as bonus words instead of answers. --undo makes existing words
visible again.`,
		Example: `  wpg hide tares
  wpg hide tares --undo`,
		Args: cobra.MinimumNArgs(1),
		RunE: runHide,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List dictionary words",
		Example: `  wpg list --length 5
  wpg list --hidden`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
)

func init() {
	hideCmd.Flags().BoolVar(&hideUndo, "undo", false, "make the words visible again")

	listCmd.Flags().IntVar(&listLength, "length", 0, "only words with this many letters")
	listCmd.Flags().BoolVar(&listHidden, "hidden", false, "only hidden words")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "show at most this many words")

	RootCmd.AddCommand(addCmd, removeCmd, hideCmd, listCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	filter := importFilter(cmd)
	out := cmd.OutOrStdout()

	var accepted []string
	for _, arg := range args {
		w, ok := filter.Accept(arg)
		if !ok {
			fmt.Fprintf(out, "Skipped %q: rejected by the import filter\n", arg)
			continue
		}
		accepted = append(accepted, w)
	}

	added, err := st.InsertWords(accepted)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Added %d of %d words\n", added, len(args))
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	return eachWord(cmd, args, "Removed", func(st *store.Store, w string) error {
		return st.DeleteWord(w)
	})
}

// runHide hides existing words and adds unknown ones as hidden, subject to
// the import filter. --undo only unhides existing words.
func runHide(cmd *cobra.Command, args []string) error {
	if hideUndo {
		return eachWord(cmd, args, "Unhid", func(st *store.Store, w string) error {
			return st.SetHidden(w, false)
		})
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	filter := importFilter(cmd)
	out := cmd.OutOrStdout()
	hidden, added := 0, 0
	for _, arg := range args {
		err := st.SetHidden(words.Normalize(arg), true)
		if errors.Is(err, store.ErrWordNotFound) {
			w, ok := filter.Accept(arg)
			if !ok {
				fmt.Fprintf(out, "Skipped %q: rejected by the import filter\n", arg)
				continue
			}
			err = st.InsertWord(&words.Word{Literal: w, Hidden: true})
			added++
		}
		if err != nil {
			return err
		}
		hidden++
	}

	fmt.Fprintf(out, "Hid %d of %d words (%d new)\n", hidden, len(args), added)
	return nil
}

// eachWord applies fn to every normalized word in args. Unknown words are
// reported and skipped; any other error stops the command.
func eachWord(cmd *cobra.Command, args []string, verb string, fn func(*store.Store, string) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	done := 0
	for _, arg := range args {
		w := words.Normalize(arg)
		err := fn(st, w)
		if errors.Is(err, store.ErrWordNotFound) {
			fmt.Fprintf(out, "Not in dictionary: %s\n", w)
			continue
		}
		if err != nil {
			return err
		}
		done++
	}

	fmt.Fprintf(out, "%s %d of %d words\n", verb, done, len(args))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	all, err := st.ListWords()
	if err != nil {
		return err
	}

	var shown []words.Word
	for _, w := range all {
		if listLength > 0 && words.Length(w.Literal) != listLength {
			continue
		}
		if listHidden && !w.Hidden {
			continue
		}
		shown = append(shown, w)
		if listLimit > 0 && len(shown) == listLimit {
			break
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderWordTable(shown))
	return nil
}
