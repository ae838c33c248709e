package banner

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// MaxLines caps how many lines a banner file contributes.
const MaxLines = 16

// Default is the boot sequence shown before the first typed line.
var Default = []string{
	"BOOT ROM v1.09",
	"ACCESSING MEMORY",
	"CALIBRATING TIMERS",
	"READY.",
}

// Read returns at most maxLines from the end of the file at path. A missing
// file yields nil, nil.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open banner: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = strings.TrimRight(scanner.Text(), "\r")
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read banner: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Load returns the banner for path. An empty path, a missing or empty file
// give Default; a read failure is logged and also gives Default.
func Load(path string) []string {
	if strings.TrimSpace(path) == "" {
		return Default
	}
	lines, err := Read(path, MaxLines)
	if err != nil {
		log.Printf("banner: %v", err)
		return Default
	}
	if len(lines) == 0 {
		return Default
	}
	return lines
}
