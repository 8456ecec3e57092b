package plan

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Plan — корень запуска и упорядоченный список каталогов к удалению.
type Plan struct {
	Root    string   // канонический корень, внутри которого разрешено удалять
	Matches []string // без повторов, самые глубокие пути первыми
}

// Empty сообщает, что удалять нечего.
func (p Plan) Empty() bool {
	return len(p.Matches) == 0
}

// Reduce убирает повторы и упорядочивает совпадения: сначала по убыванию
// глубины, при равной глубине — лексикографически. Вложенный каталог всегда
// идёт раньше своего предка.
func Reduce(root string, matches []string) Plan {
	uniq := set.From(matches).Slice()
	sort.Slice(uniq, func(i, j int) bool {
		di, dj := Depth(uniq[i]), Depth(uniq[j])
		if di != dj {
			return di > dj
		}
		return uniq[i] < uniq[j]
	})
	return Plan{Root: root, Matches: uniq}
}

// Depth — число компонентов пути.
func Depth(path string) int {
	p := filepath.ToSlash(filepath.Clean(path))
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return 0
	}
	return strings.Count(p, "/") + 1
}
