package loader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/wpg/internal/words"
)

// Split writes the filtered words of the file at path into outDir as
// numbered files holding at most unitsPer words each, so that a large list
// can be reviewed piece by piece.
// Example: words.txt -> words_01.txt, words_02.txt, ...
func Split(path, outDir string, unitsPer int, filter words.Filter) ([]string, error) {
	if unitsPer <= 0 {
		return nil, fmt.Errorf("invalid units per file: %d (must be positive)", unitsPer)
	}

	list, _, err := readFile(path, filter)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var written []string
	for start, part := 0, 1; start < len(list); start, part = start+unitsPer, part+1 {
		end := min(start+unitsPer, len(list))

		name := filepath.Join(outDir, fmt.Sprintf("%s_%02d.txt", base, part))
		if err := writeLines(name, list[start:end]); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	return written, nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
