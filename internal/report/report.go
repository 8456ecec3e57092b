// Package report — весь пользовательский вывод dirprune.
//
// Обычные сообщения идут в Out, предупреждения и ошибки — в Err.
// Подробные сообщения печатаются только при Verbose.
package report

import (
	"io"

	"github.com/pterm/pterm"
)

// Printer — обёртка над префиксными принтерами pterm с заданными потоками.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
}

// New создаёт Printer. Пустые потоки заменяются на io.Discard.
func New(out, errOut io.Writer, verbose bool) *Printer {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Printer{Out: out, Err: errOut, Verbose: verbose}
}

// Line печатает строку без префикса.
func (p *Printer) Line(a ...any) {
	pterm.Fprintln(p.Out, a...)
}

// Print печатает текст без перевода строки (для вопросов).
func (p *Printer) Print(a ...any) {
	pterm.Fprint(p.Out, a...)
}

func (p *Printer) Info(format string, args ...any) {
	pterm.Info.WithWriter(p.Out).Printfln(format, args...)
}

func (p *Printer) Success(format string, args ...any) {
	pterm.Success.WithWriter(p.Out).Printfln(format, args...)
}

func (p *Printer) Warn(format string, args ...any) {
	pterm.Warning.WithWriter(p.Err).Printfln(format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	pterm.Error.WithWriter(p.Err).Printfln(format, args...)
}

// Debug печатает только в подробном режиме.
func (p *Printer) Debug(format string, args ...any) {
	if !p.Verbose {
		return
	}
	pterm.Description.WithWriter(p.Out).Printfln(format, args...)
}
