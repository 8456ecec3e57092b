package safety

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateName проверяет, что имя — один путь-сегмент без разделителей,
// не ".", не ".." и не абсолютный путь.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("пустое имя")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("недопустимое имя: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("имя не должно содержать разделителей пути: %q", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("абсолютные пути запрещены: %q", name)
	}
	return nil
}

// Canonicalize возвращает абсолютный путь без символических ссылок.
// Если путь не существует, ошибка оборачивает fs.ErrNotExist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Within сообщает, лежит ли path внутри root (или совпадает с ним).
// Оба пути должны быть уже канонизированы.
func Within(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	relSl := filepath.ToSlash(rel)
	return relSl != ".." && !strings.HasPrefix(relSl, "../")
}
