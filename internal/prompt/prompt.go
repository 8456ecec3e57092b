// Package prompt — интерактивное подтверждение одной строкой.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"dirprune/internal/report"
)

// ErrNoInput — поток ввода закрыт до того, как пришёл ответ.
var ErrNoInput = errors.New("нет ввода для подтверждения (используйте --yes или --dry-run)")

// Confirm печатает вопрос и читает одну строку из r.
// Возвращает true только для "y" или "yes" без учёта регистра и пробелов.
func Confirm(r io.Reader, p *report.Printer, question string) (bool, error) {
	p.Print(question + " ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("чтение подтверждения: %w", err)
		}
		if line == "" {
			return false, ErrNoInput
		}
	}

	ans := strings.ToLower(strings.TrimSpace(line))
	return ans == "y" || ans == "yes", nil
}
