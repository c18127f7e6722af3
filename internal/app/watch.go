package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wpg/internal/loader"
	"github.com/blackwell-systems/wpg/internal/watcher"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch <file>",
		Short: "Merge a word list into the dictionary whenever it changes",
		Long: `Merge a word list into the dictionary, then keep watching it and merge
again after every save. Runs in the foreground until interrupted.

Words are only ever added; removing a line from the file does not remove
the word from the dictionary.`,
		Example: `  wpg watch words.txt
  wpg watch words.txt --debounce 1s`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().Int("min", 0, "shortest word to import (default from config)")
	watchCmd.Flags().Int("max", 0, "longest word to import, 0 for no limit (default from config)")
	watchCmd.Flags().Bool("strict", true, "skip proper nouns and words with non-letters (default from config)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "wait this long after the last change before merging")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !fileExists(path) {
		return fmt.Errorf("word list not found: %s", path)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	w, err := watcher.New(loader.New(st), path, importFilter(cmd), logger)
	if err != nil {
		return err
	}
	w.Debounce = watchDebounce

	out := cmd.OutOrStdout()
	w.OnReload = func(res *loader.Result) {
		fmt.Fprintf(out, "%s  merged %s: %d accepted, %d new\n",
			time.Now().Format("15:04:05"), path, res.Accepted, res.Added)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", w.Path())
	return w.Run(ctx)
}

// commandContext returns cmd's context, or Background when the command
// was run without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
