package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"ordem_servico/internal/domain/listing"
	"ordem_servico/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchHelp = `comandos:
  n <texto>   filtra pelo número (com espera)
  c <texto>   filtra pelo cliente (com espera)
  s           aplica o filtro agora
  x           limpa o filtro
  > / <       próxima / anterior página
  r           recarrega da API
  q           sair`

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactive listing driven by the debounced filter bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &watcher{
				views: a.views,
				app:   a,
				out:   cmd.OutOrStdout(),
				page:  1,
			}
			return w.run(cmd.Context(), cmd.InOrStdin(), a.cfg.DebounceDelay)
		},
	}
}

// watcher renders the listing whenever the filter bar settles or the page
// changes. Rendering happens on the debouncer goroutine and the input loop, so
// it is serialized by mu.
type watcher struct {
	views usecase.IOrderViewUseCase
	app   *app
	out   io.Writer

	mu   sync.Mutex
	page int
}

func (w *watcher) run(ctx context.Context, in io.Reader, delay time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bar := listing.NewFilterBar(delay, func(f listing.Filter) {
		w.render(ctx, f, 1)
	})
	defer bar.Close()

	fmt.Fprintln(w.out, watchHelp)
	w.render(ctx, listing.Filter{}, 1)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
			switch cmd {
			case "n":
				bar.SetNumber(arg)
			case "c":
				bar.SetClientName(arg)
			case "s", "":
				bar.Submit()
			case "x":
				bar.Clear()
			case ">":
				w.render(ctx, bar.Values(), w.currentPage()+1)
			case "<":
				w.render(ctx, bar.Values(), w.currentPage()-1)
			case "r":
				w.refresh(ctx)
			case "q":
				return nil
			default:
				fmt.Fprintln(w.out, watchHelp)
			}
		}
	}
}

func (w *watcher) currentPage() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page
}

func (w *watcher) render(ctx context.Context, f listing.Filter, page int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if page < 1 {
		page = 1
	}
	p, err := w.views.Browse(ctx, w.app.session, f, page)
	if err != nil {
		zap.L().Warn("[order][cli] watch render failed", zap.Error(err))
		fmt.Fprintf(w.out, "erro: %v\n", err)
		return
	}
	w.page = p.Number
	printPage(w.out, p)
}

func (w *watcher) refresh(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.views.Refresh(ctx, w.app.session)
	if err != nil {
		fmt.Fprintf(w.out, "erro: %v\n", err)
		return
	}
	w.page = p.Number
	printPage(w.out, p)
}
