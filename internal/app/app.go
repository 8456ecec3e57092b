package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"dirprune/internal/fsops"
	"dirprune/internal/parser"
	"dirprune/internal/plan"
	"dirprune/internal/prompt"
	"dirprune/internal/report"
	"dirprune/internal/safety"
	"dirprune/internal/scan"
)

var (
	// ErrUsage — неверные параметры запуска; файловая система не тронута.
	ErrUsage = errors.New("неверные параметры")
	// ErrFailed — хотя бы один каталог не удалось удалить.
	ErrFailed = errors.New("не все каталоги удалены")
)

// Options — все настройки запуска утилиты.
type Options struct {
	Folders     []string
	FoldersFile string
	Yes         bool
	DryRun      bool
	Verbose     bool

	// Root — корень обхода и граница, за которую удалять нельзя.
	Root string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run — главная функция: собирает совпадения, подтверждает и удаляет.
func Run(o Options) error {
	p := report.New(o.Stdout, o.Stderr, o.Verbose)

	// 1) Имена каталогов: из флагов и, если задан, из файла.
	names, err := collectNames(o)
	if err != nil {
		return err
	}

	// 2) Корень фиксируем один раз на весь запуск.
	if o.Root == "" {
		return fmt.Errorf("%w: не задан корневой каталог", ErrUsage)
	}
	root, err := safety.Canonicalize(o.Root)
	if err != nil {
		return fmt.Errorf("не удалось разрешить корень %q: %w", o.Root, err)
	}

	// 3) Обходим дерево.
	found, err := scan.Scan(root, set.From(names), scan.Options{
		Skipped: func(path string, err error) {
			p.Debug("пропуск %s: %v", path, err)
		},
	})
	if err != nil {
		return err
	}

	// 4) Убираем повторы, самые глубокие первыми.
	pl := plan.Reduce(root, found)
	if pl.Empty() {
		p.Info("Совпадений не найдено. Имена: %s", strings.Join(names, ", "))
		return nil
	}

	// 5) Всегда показываем, что будет удалено.
	p.Info("Найдено каталогов: %d", len(pl.Matches))
	for _, m := range pl.Matches {
		p.Line("  " + m)
	}

	if o.DryRun {
		p.Info("--dry-run: ничего не удаляется.")
		return nil
	}

	// 6) Подтверждение.
	if !o.Yes {
		ok, err := prompt.Confirm(o.Stdin, p, "Удалить все перечисленные каталоги? [y/N]:")
		if err != nil {
			return err
		}
		if !ok {
			p.Info("Отменено.")
			return nil
		}
	}

	// 7) Удаляем и подводим итог.
	res := fsops.Remove(fsops.RemoveArgs{Plan: pl, Printer: p})
	return summarize(p, res)
}

func collectNames(o Options) ([]string, error) {
	names := make([]string, 0, len(o.Folders))
	for _, n := range o.Folders {
		if err := safety.ValidateName(n); err != nil {
			return nil, fmt.Errorf("%w: --folder: %w", ErrUsage, err)
		}
		names = append(names, n)
	}

	if o.FoldersFile != "" {
		f, err := os.Open(o.FoldersFile)
		if err != nil {
			return nil, fmt.Errorf("%w: не удалось открыть файл имён %q: %w", ErrUsage, o.FoldersFile, err)
		}
		defer f.Close()

		fromFile, err := parser.ParseNames(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUsage, o.FoldersFile, err)
		}
		names = append(names, fromFile...)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: укажите хотя бы одно имя каталога через --folder/-f", ErrUsage)
	}
	return names, nil
}

func summarize(p *report.Printer, res fsops.Outcome) error {
	switch res.Status() {
	case fsops.StatusPartial:
		p.Info("Частично: удалено %d, ошибок %d.", res.Succeeded, res.Failed)
		return fmt.Errorf("%w: ошибок %d", ErrFailed, res.Failed)
	case fsops.StatusFailure:
		p.Info("Не удалось: все %d удалений завершились ошибкой.", res.Failed)
		return fmt.Errorf("%w: ошибок %d", ErrFailed, res.Failed)
	case fsops.StatusSuccess:
		p.Success("Готово: удалено каталогов: %d.", res.Succeeded)
	default:
		p.Info("Готово: удалять нечего.")
	}
	return nil
}

// ExitCode переводит результат Run в код завершения процесса.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}
