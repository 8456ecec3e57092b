// Package scan обходит дерево каталогов и собирает каталоги с нужными именами.
package scan

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/hashicorp/go-set/v2"

	"dirprune/internal/safety"
)

// Options — необязательные параметры обхода.
type Options struct {
	// Skipped вызывается для каждой записи, которую не удалось прочитать.
	Skipped func(path string, err error)
}

// Scan рекурсивно обходит root и возвращает канонические пути всех каталогов,
// базовое имя которых входит в names. Сам root никогда не попадает в результат.
// Ошибки чтения отдельных записей пропускаются, обход продолжается.
// Порядок результата не определён; вложенные совпадения сохраняются.
func Scan(root string, names *set.Set[string], opts Options) ([]string, error) {
	if root == "" {
		return nil, errors.New("не задан корень обхода")
	}

	var matches []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if opts.Skipped != nil {
				opts.Skipped(path, err)
			}
			// Для нечитаемого каталога WalkDir уже не пойдёт внутрь.
			return nil
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if !names.Contains(d.Name()) {
			return nil
		}

		p, cerr := safety.Canonicalize(path)
		if cerr != nil {
			// Каталог мог исчезнуть между чтением и разрешением пути.
			p = path
		}
		matches = append(matches, p)
		return nil
	})
	return matches, nil
}
