package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/session"
	"github.com/mseguin/recallbox/internal/stats"
)

// mainMenu runs the interactive top-level loop until the user exits or
// stdin closes. Either way the store is saved before returning.
func mainMenu(ctx context.Context, a *app) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		clearScreen()
		header("Recallbox — Spaced Repetition")
		fmt.Println("1) Study ✏️")
		fmt.Println("2) Stats 📊")
		fmt.Println("3) Save & Exit 💾")
		choice, err := prompt(reader, "Choice: ")
		if err != nil {
			return saveAndFarewell(ctx, a)
		}
		switch choice {
		case "1":
			if err := studyMenu(ctx, a, reader); err != nil {
				if errors.Is(err, io.EOF) {
					return saveAndFarewell(ctx, a)
				}
				return err
			}
		case "2":
			if err := statsScreen(a, reader); errors.Is(err, io.EOF) {
				return saveAndFarewell(ctx, a)
			}
		case "3":
			return saveAndFarewell(ctx, a)
		}
	}
}

func saveAndFarewell(ctx context.Context, a *app) error {
	if err := a.save(ctx); err != nil {
		return err
	}
	fmt.Println("Saved. Bye!")
	return nil
}

// studyMenu lists themes with their progress and flame streaks and
// starts a session for the chosen one.
func studyMenu(ctx context.Context, a *app, reader *bufio.Reader) error {
	for {
		clearScreen()
		header("Choose Theme")
		lines := stats.AllThemes(a.cards, a.store)
		for i, line := range lines {
			fmt.Printf("%d) %-20s %d/%d (%d%%) %s\n",
				i+1, line.Theme, line.Validated, line.Total, line.Percent,
				flames(line.FlameStreak))
		}
		fmt.Println("b) Back")
		sel, err := prompt(reader, "Theme: ")
		if err != nil {
			return err
		}
		sel = strings.ToLower(sel)
		if sel == "b" {
			return nil
		}
		n, err := strconv.Atoi(sel)
		if err != nil || n < 1 || n > len(lines) {
			continue
		}
		if err := runSession(ctx, a, reader, lines[n-1].Theme); err != nil {
			return err
		}
	}
}

// runSession drives one study session in the terminal: per card it
// shows the question and revealed hints, accepts /h (hint), /q (save
// and quit), or an answer, then shows the grade, context, and link.
func runSession(ctx context.Context, a *app, reader *bufio.Reader, theme string) error {
	sess := session.New(theme, domain.Today(), a.cards, a.store,
		a.selector, a.streak, a.repo, a.logger)

	for {
		card, ok := sess.Current()
		if !ok {
			break
		}

		clearScreen()
		header(fmt.Sprintf("%s [%d/%d]", theme, sess.Index()+1, sess.Size()))
		fmt.Println(card.Question)
		for _, h := range sess.RevealedHints() {
			hintColor.Println("Hint: " + h)
		}
		faintColor.Println("( /h: hint  •  /q: save & quit )")

		input, err := prompt(reader, "> ")
		if err != nil {
			return err
		}

		switch strings.ToLower(input) {
		case "/q":
			return sess.Quit(ctx)
		case "/h":
			if _, ok := sess.RevealHint(); !ok {
				noteColor.Println("No more hints.")
				if err := pressEnter(reader); err != nil {
					return err
				}
			}
			continue
		}

		result, err := sess.Submit(input)
		if err != nil {
			return err
		}
		if result.Correct {
			okColor.Println("✅ Correct")
		} else {
			badColor.Printf("❌ Wrong. Ans: %s\n", result.Answer)
		}
		if result.Context != "" {
			hintColor.Println("ℹ️  " + result.Context)
		}
		if result.Link != "" {
			faintColor.Printf("🔗 %s\n", result.Link)
			if !result.Correct {
				answer, err := prompt(reader, "Open link in browser? [y/N]: ")
				if err != nil {
					return err
				}
				if strings.ToLower(answer) == "y" {
					openBrowser(result.Link)
				}
			}
		}
		if err := pressEnter(reader); err != nil {
			return err
		}
		if err := sess.Advance(ctx); err != nil {
			return err
		}
	}

	if sess.Finished() {
		ts := a.store.Theme(theme)
		fmt.Printf("Session complete. %s\n", flames(ts.FlameStreak))
		return pressEnter(reader)
	}
	return nil
}

// statsScreen prints the overall and per-theme progress.
func statsScreen(a *app, reader *bufio.Reader) error {
	clearScreen()
	header("Statistics")
	overall := stats.ForDeck(a.cards, a.store)
	fmt.Printf("Overall: %d/%d (%d%%)\n\n", overall.Validated, overall.Total, overall.Percent)
	for _, line := range stats.AllThemes(a.cards, a.store) {
		fmt.Printf("%-20s %d/%d (%d%%) 🔥%d\n",
			line.Theme, line.Validated, line.Total, line.Percent, line.FlameStreak)
	}
	return pressEnter(reader)
}
