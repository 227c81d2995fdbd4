package input

import (
	"bufio"
	"fmt"
	"os"
)

// ReadLines reads the command file and returns its lines in order. This
// is the only hard failure boundary of a run: a missing or unreadable
// input file aborts, everything downstream degrades gracefully.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return lines, nil
}
