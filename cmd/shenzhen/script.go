package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenzhen-solitaire/shenzhen-go/internal/game"
	"github.com/shenzhen-solitaire/shenzhen-go/internal/game/card"
	"go.uber.org/zap"
)

var errUnknownCommand = errors.New("unknown command")

type commandKind int

const (
	cmdMove commandKind = iota
	cmdDragons
	cmdAuto
	cmdShow
)

type command struct {
	kind     commandKind
	src, dst game.Position
	suit     card.Suit
}

// parseCommand parses one script line:
//
//	move <srcCol> <srcDepth> <dstCol> <dstDepth>
//	dragons <R|G|B>
//	auto
//	show
//
// Move coordinates use the indexed encoding: depth -1 is the sideboard slot
// named by the column, depth -2 the completion area.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("%w: empty line", errUnknownCommand)
	}

	switch name := strings.ToLower(fields[0]); name {
	case "move":
		if len(fields) != 5 {
			return command{}, fmt.Errorf("move: want 4 arguments, got %d", len(fields)-1)
		}
		var n [4]int
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return command{}, fmt.Errorf("move: argument %d: %w", i+1, err)
			}
			n[i] = v
		}
		src, err := game.ParsePosition(n[0], n[1])
		if err != nil {
			return command{}, fmt.Errorf("move: source: %w", err)
		}
		dst, err := game.ParsePosition(n[2], n[3])
		if err != nil {
			return command{}, fmt.Errorf("move: destination: %w", err)
		}
		return command{kind: cmdMove, src: src, dst: dst}, nil

	case "dragons":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("dragons: want 1 argument, got %d", len(fields)-1)
		}
		s, err := card.ParseSuit(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("dragons: %w", err)
		}
		return command{kind: cmdDragons, suit: s}, nil

	case "auto":
		if len(fields) != 1 {
			return command{}, errors.New("auto: takes no arguments")
		}
		return command{kind: cmdAuto}, nil

	case "show":
		if len(fields) != 1 {
			return command{}, errors.New("show: takes no arguments")
		}
		return command{kind: cmdShow}, nil

	default:
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}
}

// runner drives a session from a line-oriented script. Bad lines are reported
// on out and skipped; only read errors stop the run.
type runner struct {
	session      *game.Session
	out          io.Writer
	autoComplete bool
	render       bool
	logger       *zap.Logger
}

func (r *runner) run(in io.Reader) error {
	if r.autoComplete {
		if err := r.settle(); err != nil {
			return err
		}
	}
	r.show()
	if r.reportWin() {
		return nil
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := parseCommand(line)
		if err == nil {
			err = r.exec(cmd)
		}
		if err != nil {
			fmt.Fprintf(r.out, "line %d: %v\n", lineNo, err)
			continue
		}
		if r.reportWin() {
			return nil
		}
	}
	return scanner.Err()
}

func (r *runner) exec(cmd command) error {
	switch cmd.kind {
	case cmdMove:
		ok, err := r.session.Move(cmd.src, cmd.dst)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(r.out, "illegal move %s -> %s\n", cmd.src, cmd.dst)
			return nil
		}
		fmt.Fprintln(r.out, "ok")

	case cmdDragons:
		ok, err := r.session.CollectDragons(cmd.suit)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(r.out, "cannot collect %s dragons\n", cmd.suit)
			return nil
		}
		fmt.Fprintf(r.out, "collected %s dragons\n", cmd.suit)

	case cmdAuto:
		moved, err := r.session.Settle()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "completed %d cards\n", len(moved))
		r.show()
		return nil

	case cmdShow:
		fmt.Fprint(r.out, r.session.Render())
		return nil
	}

	if r.autoComplete {
		if err := r.settle(); err != nil {
			return err
		}
	}
	r.show()
	return nil
}

func (r *runner) settle() error {
	moved, err := r.session.Settle()
	if err != nil {
		return err
	}
	if len(moved) > 0 && r.logger != nil {
		r.logger.Debug("auto-completed cards",
			zap.String("game_id", r.session.ID),
			zap.Int("cards", len(moved)),
		)
	}
	return nil
}

func (r *runner) show() {
	if r.render {
		fmt.Fprint(r.out, r.session.Render())
	}
}

func (r *runner) reportWin() bool {
	snap := r.session.Snapshot()
	if !snap.Won {
		return false
	}
	fmt.Fprintf(r.out, "won in %d moves\n", snap.Moves)
	return true
}
