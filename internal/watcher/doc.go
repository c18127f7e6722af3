// Package watcher keeps the dictionary in sync with a word list on disk.
//
// The Watcher subscribes to fsnotify events for the directory that holds
// the word list. Writes to the file are debounced and then merged into the
// dictionary through a loader.Loader. The file is merged once when Run
// starts, so a watcher always begins from the current contents.
//
// Watching the directory instead of the file keeps the watch alive when an
// editor replaces the file through rename.
//
// Example usage:
//
//	w, err := watcher.New(loader.New(st), "words.txt", words.Filter{Strict: true}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	w.OnReload = func(res *loader.Result) {
//		fmt.Printf("added %d words\n", res.Added)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := w.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package watcher
