package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"dirprune/internal/app"
)

// Версию можно переопределить через -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	if !isTerminal(os.Stdout) {
		pterm.DisableStyling()
	}

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr, os.Getwd)
	if err := cmd.Execute(); err != nil {
		fail(os.Stderr, err)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, getwd func() (string, error)) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "dirprune -f NAME [-f NAME...] [--yes] [--dry-run]",
		Short: "Рекурсивно находит и удаляет каталоги с заданными именами",
		Long: `dirprune обходит текущий каталог, находит подкаталоги, имя которых
точно совпадает с одним из имён --folder, и удаляет их вместе с содержимым.

Перед удалением выводится список найденного и задаётся вопрос.
Удаление вне текущего каталога запрещено.`,
		Example: `  # Показать, что будет удалено
  dirprune -f node_modules --dry-run

  # Удалить без вопросов
  dirprune -f build -f target -y

  # Имена из файла, по одному на строку
  dirprune --folders-file .prune`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", app.ErrUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := getwd()
			if err != nil {
				return fmt.Errorf("не удалось определить текущий каталог: %w", err)
			}
			opts.Root = root
			opts.Stdin = stdin
			opts.Stdout = stdout
			opts.Stderr = stderr
			return app.Run(opts)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", app.ErrUsage, err)
	})
	bindFlags(cmd.Flags(), &opts)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, o *app.Options) {
	fs.StringArrayVarP(&o.Folders, "folder", "f", nil, "Имя удаляемого каталога (можно повторять)")
	fs.StringVar(&o.FoldersFile, "folders-file", "", "Файл с именами каталогов, по одному на строку")
	fs.BoolVarP(&o.Yes, "yes", "y", false, "Не спрашивать подтверждение")
	fs.BoolVar(&o.DryRun, "dry-run", false, "Только показать, что будет удалено")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Подробный вывод")
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func fail(w io.Writer, err error) {
	fmt.Fprintf(w, "ошибка: %v\n", err)
	if app.ExitCode(err) == 2 {
		fmt.Fprintln(w, "см. dirprune --help")
	}
	os.Exit(app.ExitCode(err))
}
