package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dirprune/internal/safety"
)

// ParseNames читает имена каталогов, по одному на строку.
// Пустые строки и строки, начинающиеся с '#', пропускаются.
// Каждое имя проверяется safety.ValidateName.
func ParseNames(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var names []string
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || isComment(line) {
			continue
		}
		if err := safety.ValidateName(line); err != nil {
			return nil, fmt.Errorf("строка %d: %w", lineNum, err)
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#")
}
