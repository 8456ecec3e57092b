package fsops

import (
	"errors"
	"io/fs"
	"os"

	"dirprune/internal/plan"
	"dirprune/internal/report"
	"dirprune/internal/safety"
)

// RemoveArgs — параметры удаления по плану.
type RemoveArgs struct {
	Plan    plan.Plan
	Printer *report.Printer

	// RemoveAll по умолчанию os.RemoveAll.
	RemoveAll func(path string) error
}

// Outcome — итог удаления.
type Outcome struct {
	Succeeded int
	Failed    int
	Vanished  int // уже исчезли вместе с предком; не ошибка
}

// Status — классификация итога.
type Status int

const (
	StatusNothing Status = iota // ничего не удалено и ошибок нет
	StatusSuccess
	StatusPartial
	StatusFailure
)

// Status классифицирует итог по счётчикам.
func (o Outcome) Status() Status {
	switch {
	case o.Failed > 0 && o.Succeeded > 0:
		return StatusPartial
	case o.Failed > 0:
		return StatusFailure
	case o.Succeeded > 0:
		return StatusSuccess
	default:
		return StatusNothing
	}
}

// Remove удаляет каталоги плана по порядку. Ошибка по одному пути не
// прерывает обработку остальных; повторов нет.
func Remove(a RemoveArgs) Outcome {
	p := a.Printer
	if p == nil {
		p = report.New(nil, nil, false)
	}
	removeAll := a.RemoveAll
	if removeAll == nil {
		removeAll = os.RemoveAll
	}

	var o Outcome
	for _, path := range a.Plan.Matches {
		resolved, err := safety.Canonicalize(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Скорее всего, удалён вместе с родителем в этом же запуске.
			p.Debug("уже удалён: %s", path)
			o.Vanished++
			continue
		case err != nil:
			p.Error("не удалось разрешить путь %s: %v", path, err)
			o.Failed++
			continue
		}

		if !safety.Within(a.Plan.Root, resolved) {
			p.Warn("пропуск, путь вне %s: %s", a.Plan.Root, resolved)
			o.Failed++
			continue
		}

		err = removeAll(resolved)
		switch {
		case err == nil:
			p.Success("удалён: %s", resolved)
			o.Succeeded++
		case errors.Is(err, fs.ErrNotExist):
			p.Debug("уже удалён: %s", resolved)
			o.Vanished++
		default:
			p.Error("не удалось удалить %s: %v", resolved, err)
			o.Failed++
		}
	}
	return o
}
