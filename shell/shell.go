// Package shell implements the interactive solver console.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/gridrush/gridrush/board"
	"github.com/gridrush/gridrush/config"
	"github.com/gridrush/gridrush/solver"
	"github.com/gridrush/gridrush/tiles"
	"github.com/gridrush/gridrush/vocabulary"
)

var errExit = errors.New("exit")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curSpecs []tiles.Spec
	curGrid  *board.Grid
	curN     int
	vocab    *vocabulary.Vocabulary
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgridrush>\033[0m ",
		HistoryFile:     "/tmp/gridrush_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

// Loop reads commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sc.dispatch(line); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	log.Info().Msg("exiting shell")
}

func (sc *ShellController) dispatch(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "board":
		return sc.setBoard(args)
	case "bonus":
		return sc.setBonus(args)
	case "language":
		return sc.setLanguage(args)
	case "generate":
		return sc.generate(args)
	case "show":
		return sc.show()
	case "solve":
		return sc.solve()
	case "help":
		showMessage(usage, sc.l.Stderr())
		return nil
	case "exit", "quit":
		return errExit
	}
	return fmt.Errorf("unknown command %q; try `help`", cmd)
}

const usage = `Commands:
  board <letters>            set the board, row by row (length must be N²)
  bonus <row> <col> <code>   mark a bonus square (G=2L, B=3L, Y=2W, R=3W)
  language <name>            switch vocabulary
  generate [n]               deal a random n×n board (default 4)
  show                       print the current board
  solve                      list every findable word, best score first
  exit`

func (sc *ShellController) setBoard(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: board <letters>")
	}
	letters := strings.ToLower(args[0])
	n := int(math.Sqrt(float64(len(letters))))
	if n*n != len(letters) {
		return fmt.Errorf("%d letters do not fill a square board", len(letters))
	}
	specs, err := tiles.ParseSpecs(letters, nil)
	if err != nil {
		return err
	}
	return sc.install(n, specs)
}

func (sc *ShellController) setBonus(args []string) error {
	if sc.curGrid == nil {
		return errors.New("set a board first")
	}
	if len(args) != 3 {
		return errors.New("usage: bonus <row> <col> <code>")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	if row < 0 || row >= sc.curN || col < 0 || col >= sc.curN {
		return fmt.Errorf("(%d,%d) is outside the %d×%d board", row, col, sc.curN, sc.curN)
	}
	b, err := tiles.ParseBonus(strings.ToUpper(args[2]))
	if err != nil {
		return err
	}
	sc.curSpecs[row*sc.curN+col].Bonus = b
	return sc.install(sc.curN, sc.curSpecs)
}

func (sc *ShellController) setLanguage(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: language <name>")
	}
	v, err := vocabulary.Get(sc.cfg, strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	sc.vocab = v
	showMessage(fmt.Sprintf("loaded %s (%d words)", v.Language(), v.WordCount()), sc.l.Stderr())
	return nil
}

func (sc *ShellController) generate(args []string) error {
	n := 4
	if len(args) == 1 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil {
			return err
		}
	}
	specs := tiles.EnglishLetterDistribution().Deal(n)
	if err := sc.install(n, specs); err != nil {
		return err
	}
	return sc.show()
}

func (sc *ShellController) install(n int, specs []tiles.Spec) error {
	g, err := board.NewGrid(n, specs)
	if err != nil {
		return err
	}
	sc.curGrid, sc.curSpecs, sc.curN = g, specs, n
	return nil
}

func (sc *ShellController) show() error {
	if sc.curGrid == nil {
		return errors.New("no board set; use `board` or `generate`")
	}
	var sb strings.Builder
	for row := 0; row < sc.curN; row++ {
		for col := 0; col < sc.curN; col++ {
			spec := sc.curSpecs[row*sc.curN+col]
			code := spec.Bonus.Code()
			if code == "" {
				code = "."
			}
			fmt.Fprintf(&sb, "%c%s ", spec.Letter, code)
		}
		sb.WriteByte('\n')
	}
	showMessage(sb.String(), sc.l.Stderr())
	return nil
}

func (sc *ShellController) solve() error {
	if sc.curGrid == nil {
		return errors.New("no board set; use `board` or `generate`")
	}
	if sc.vocab == nil {
		v, err := vocabulary.Get(sc.cfg, sc.cfg.DefaultLanguage)
		if err != nil {
			return err
		}
		sc.vocab = v
	}
	s := solver.New(sc.curGrid, sc.vocab, solver.WithWorkers(sc.cfg.SolverWorkers))
	rs, err := s.Solve(context.Background())
	if err != nil {
		return err
	}
	for _, r := range rs.Ranked() {
		showMessage(resultRow(r), sc.l.Stderr())
	}
	showMessage(fmt.Sprintf("%d words found", rs.Len()), sc.l.Stderr())
	return nil
}

func resultRow(r solver.WordResult) string {
	coords := make([]string, len(r.Path))
	for i, p := range r.Path {
		coords[i] = p.String()
	}
	return fmt.Sprintf("%5d %-16s %s", r.Score, strings.ToUpper(r.Word),
		strings.Join(coords, " "))
}
