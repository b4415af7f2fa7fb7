// internal/render/render.go
//
// Presentation layer for the terminal game.
// Responsibilities:
//   - Draw the difficulty menu, the board, prompts and the game-over screen.
//   - Own every color choice (static palette below); the core never sees colors.
//   - Stay swappable: color and plain output are the same renderer with
//     colorstring tags either applied or stripped.
//
// Notes:
//   - The board layout comes from the embedded text/template in assets.
//   - The guess budget is drawn with a progressbar under the board.

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/codebreaker/assets"
	"github.com/robalobadob/codebreaker/internal/difficulty"
	"github.com/robalobadob/codebreaker/internal/game"
	"github.com/robalobadob/codebreaker/internal/store"
)

// Renderer is what the driving loop draws through.
type Renderer interface {
	Clear()
	Menu(t difficulty.Table, invalid bool)
	Board(s *game.Session) error
	Prompt(reason error)
	GameOver(s *game.Session, st store.Stats, recent []store.Result)
	ReplayPrompt()
	Table(t difficulty.Table)
	Goodbye()
}

// Options tune a Text renderer.
type Options struct {
	Color bool // apply the palette
	Clear bool // clear the screen before menus and boards
}

// palette maps roles to colorstring color names.
var palette = struct {
	menu    []string
	clue    map[game.Clue]string
	alert   string
	won     string
	lost    string
	barFill string
}{
	menu:    []string{"green", "yellow", "red"},
	clue:    map[game.Clue]string{game.ClueExact: "green", game.CluePresent: "yellow"},
	alert:   "red",
	won:     "green",
	lost:    "red",
	barFill: "cyan",
}

// clearScreen resets the terminal (RIS).
const clearScreen = "\033c"

// Text writes human-readable output to w.
type Text struct {
	w     io.Writer
	opts  Options
	color *colorstring.Colorize
	board *template.Template
}

var _ Renderer = (*Text)(nil)

// NewText builds a renderer around w using the embedded board template.
func NewText(w io.Writer, opts Options) (*Text, error) {
	src, err := assets.BoardTemplate()
	if err != nil {
		return nil, fmt.Errorf("read board template: %w", err)
	}
	tmpl, err := template.New("board").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse board template: %w", err)
	}
	return &Text{
		w:    w,
		opts: opts,
		color: &colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !opts.Color,
			Reset:   true,
		},
		board: tmpl,
	}, nil
}

func (r *Text) printf(format string, args ...any) {
	fmt.Fprint(r.w, r.color.Color(fmt.Sprintf(format, args...)))
}

func paint(color, s string) string { return "[" + color + "]" + s + "[reset]" }

func (r *Text) Clear() {
	if r.opts.Clear {
		fmt.Fprint(r.w, clearScreen)
	}
}

// Menu lists the table with 1-based numbers.
func (r *Text) Menu(t difficulty.Table, invalid bool) {
	r.Clear()
	r.printf("Please select a difficulty:\n\n")
	width := 0
	for _, d := range t {
		width = max(width, len(d.Name))
	}
	for i, d := range t {
		name := paint(palette.menu[i%len(palette.menu)], d.Name)
		pad := strings.Repeat(" ", width-len(d.Name))
		r.printf("  %d. %s%s (%d digit code, %d guesses)\n", i+1, name, pad, d.Length, d.MaxGuesses)
	}
	r.printf("\n")
	if invalid {
		r.printf("%s\n", paint(palette.alert, "Invalid selection! Please select a valid difficulty:"))
	}
	r.printf("> ")
}

type boardRow struct {
	Guess   string
	Clues   string
	Exact   int
	Present int
}

type boardData struct {
	Records   []boardRow
	Remaining int
}

// Board draws the history and the guess budget.
func (r *Text) Board(s *game.Session) error {
	r.Clear()
	history := s.History()
	data := boardData{Records: make([]boardRow, len(history)), Remaining: s.Remaining()}
	for i, rec := range history {
		exact, present := rec.Feedback.Counts()
		data.Records[i] = boardRow{Guess: rec.Guess, Clues: r.clues(rec.Feedback), Exact: exact, Present: present}
	}

	var b strings.Builder
	if err := r.board.Execute(&b, data); err != nil {
		return fmt.Errorf("render board: %w", err)
	}
	fmt.Fprint(r.w, r.color.Color(b.String()))
	r.budget(s.Difficulty().MaxGuesses, len(history))
	return nil
}

// clues renders feedback with colorstring tags; "-" when empty.
func (r *Text) clues(fb game.Feedback) string {
	if len(fb) == 0 {
		return "-"
	}
	var b strings.Builder
	for _, c := range fb {
		b.WriteString(paint(palette.clue[c], c.String()))
	}
	return b.String()
}

// budget draws used/max guesses as a bar followed by a blank line.
func (r *Text) budget(maxGuesses, used int) {
	fill := "#"
	if r.opts.Color {
		fill = paint(palette.barFill, "#")
	}
	bar := progressbar.NewOptions(maxGuesses,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetWidth(maxGuesses*2),
		progressbar.OptionSetDescription("guesses used"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(r.opts.Color),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        fill,
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	if used > 0 {
		_ = bar.Set(used)
	}
	fmt.Fprint(r.w, "\n\n")
}

// Prompt asks for a guess, explaining why the previous one was refused.
func (r *Text) Prompt(reason error) {
	if reason != nil {
		r.printf("%s Please try again:\n", paint(palette.alert, rejection(reason)))
	} else {
		r.printf("Please make a guess:\n")
	}
	r.printf("> ")
}

// rejection turns a validation error into a player-facing sentence.
func rejection(err error) string {
	var ve *game.ValidationError
	if !errors.As(err, &ve) {
		return "You entered an invalid or duplicate guess!"
	}
	switch {
	case errors.Is(ve.Kind, game.ErrNonNumericGuess):
		return "Guesses may only contain digits!"
	case errors.Is(ve.Kind, game.ErrWrongLength):
		return fmt.Sprintf("The code has %d digits but you entered %d!", ve.Want, ve.Got)
	case errors.Is(ve.Kind, game.ErrDuplicateGuess):
		return fmt.Sprintf("You already tried %s!", ve.Guess)
	default:
		return "You entered an invalid or duplicate guess!"
	}
}

// GameOver announces the result, reveals the code and prints running stats
// followed by the recent games of this run, newest first.
func (r *Text) GameOver(s *game.Session, st store.Stats, recent []store.Result) {
	code, _ := s.Reveal()
	switch s.Outcome() {
	case game.Won:
		n := len(s.History())
		word := "guesses"
		if n == 1 {
			word = "guess"
		}
		r.printf("\n %s Cracked %s in %d %s.\n\n", paint(palette.won, "Game Won!"), code, n, word)
	default:
		r.printf("%s The secret code was: %s\n\n", paint(palette.lost, "Game Lost!"), code)
	}
	r.printf("Games played: %d  Wins: %d  Streak: %d (best %d)\n\n", st.Played, st.Wins, st.Streak, st.BestStreak)
	if len(recent) == 0 {
		return
	}
	r.printf("Recent games:\n")
	for _, res := range recent {
		outcome := paint(palette.lost, "lost")
		if res.Outcome == game.Won {
			outcome = paint(palette.won, "won ")
		}
		r.printf("  %-8s %s after %2d guesses (%s)\n", res.Difficulty, outcome, res.Guesses, res.Elapsed.Round(time.Second))
	}
	r.printf("\n")
}

func (r *Text) ReplayPrompt() {
	r.printf("Would you like to play again? [y/N]: ")
}

// Table prints the difficulty table for the "difficulties" command.
func (r *Text) Table(t difficulty.Table) {
	for i, d := range t {
		r.printf("%d. %-10s %-10s %2d digits, %2d guesses\n", i+1, d.Key, d.Name, d.Length, d.MaxGuesses)
	}
}

func (r *Text) Goodbye() {
	r.Clear()
	r.printf("Thanks for playing!\n")
}
