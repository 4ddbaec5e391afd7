// Package shell is the terminal page around the catalog core. It owns the
// authoritative state (collection plus raw query), feeds every input event
// through the core, and repaints the whole page afterwards. One line is one
// event, processed to completion before the next is read.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/tiendita/internal/catalog"
	"github.com/heartmarshall/tiendita/internal/config"
	"github.com/heartmarshall/tiendita/internal/domain"
	"github.com/heartmarshall/tiendita/pkg/ctxutil"
)

// Shell runs the interactive page loop.
type Shell struct {
	log    *slog.Logger
	svc    *catalog.Service
	render *Renderer
	in     *bufio.Scanner
	out    io.Writer

	prompt   string
	maxChips int
	state    State
}

// New wires a shell over the given reader and writer. Reader and writer are
// injected so tests can drive the loop without a TTY.
func New(cfg config.UIConfig, log *slog.Logger, svc *catalog.Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		log:      log.With("component", "shell"),
		svc:      svc,
		render:   NewRenderer(out, cfg),
		in:       bufio.NewScanner(in),
		out:      out,
		prompt:   cfg.Prompt,
		maxChips: cfg.MaxChips,
	}
}

// Run paints the page for the initial collection and processes input lines
// until quit or EOF. Each accepted line gets its own event ID in ctx.
func (s *Shell) Run(ctx context.Context, initial []domain.Product) error {
	s.state = State{Products: initial}

	fmt.Fprintln(s.out, "tiendita: buscar <texto> | chip <n> | add | help | quit")
	s.paint()

	for {
		fmt.Fprint(s.out, s.prompt)
		if !s.in.Scan() {
			break
		}
		line := s.in.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		eventCtx := ctxutil.WithEventID(ctx, ctxutil.NewEventID())
		if quit := s.handle(eventCtx, line); quit {
			return nil
		}
		s.paint()
	}
	return s.in.Err()
}

// handle processes one input event against the current state and swaps in
// the derived state. Returns true when the loop should stop.
func (s *Shell) handle(ctx context.Context, line string) bool {
	cmd, arg := splitCmd(line)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true

	case "help":
		fmt.Fprintln(s.out, "buscar <texto>  filtra el catálogo (sin texto: muestra todo)")
		fmt.Fprintln(s.out, "chip <n>        usa la categoría n como búsqueda")
		fmt.Fprintln(s.out, "add             agrega un producto (4 campos)")
		fmt.Fprintln(s.out, "quit            sale")

	case "buscar", "search":
		// arg is kept untrimmed: the query engine does its own trimming.
		s.state = s.state.WithQuery(arg)

	case "chip":
		s.activateChip(arg)

	case "add":
		s.addProduct(ctx)

	default:
		fmt.Fprintf(s.out, "no entiendo %q (prueba: help)\n", cmd)
	}
	return false
}

// activateChip sets the n-th suggestion label as the raw query, verbatim.
// The label round-trips through normalization at search time, so a chip
// stored "Agua" still matches products tagged "agua".
func (s *Shell) activateChip(arg string) {
	chips := s.chips()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(chips) {
		fmt.Fprintf(s.out, "chip fuera de rango (hay %d)\n", len(chips))
		return
	}
	s.state = s.state.WithQuery(chips[n-1])
}

// addProduct collects the four form fields, one prompt per line, and submits
// them. A rejected submit changes nothing: the state, including the current
// query, survives untouched.
func (s *Shell) addProduct(ctx context.Context) {
	input := catalog.AddProductInput{
		Name:        s.ask("nombre: "),
		Description: s.ask("descripción: "),
		Price:       s.ask("precio: "),
		Categories:  s.ask("categorías (separadas por coma): "),
	}

	next, p, err := s.svc.AddProduct(ctx, s.state.Products, input)
	if err != nil {
		fmt.Fprintf(s.out, "no se agregó: %v\n", err)
		return
	}

	s.state = s.state.WithProducts(next)
	fmt.Fprintf(s.out, "agregado: %s\n", p.Name)
}

// ask prints a field prompt and returns the next raw input line. EOF yields
// an empty field, which the construction boundary already tolerates.
func (s *Shell) ask(prompt string) string {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return ""
	}
	return s.in.Text()
}

// paint recomputes the filtered view and the chips from the current state
// and renders the full page.
func (s *Shell) paint() {
	results := s.svc.Search(s.state.Products, s.state.Query)
	s.render.Page(s.state, results, s.chips())
}

// chips returns the suggestion labels, capped at the configured maximum.
func (s *Shell) chips() []string {
	labels := s.svc.ListCategories(s.state.Products)
	if s.maxChips > 0 && len(labels) > s.maxChips {
		labels = labels[:s.maxChips]
	}
	return labels
}

// splitCmd separates the command word from its argument. The argument keeps
// its own leading and trailing whitespace apart from the single separator
// space, so the engine's trimming rules stay observable.
func splitCmd(line string) (cmd, arg string) {
	trimmed := strings.TrimLeft(line, " \t")
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], trimmed[i+1:]
}
