package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/lightgrid/lights"
	"github.com/cespare/wait"
	"github.com/chzyer/readline"
	"github.com/kr/pretty"
)

func init() {
	register("6", day6)
	register("6i", day6i)
}

// day6 counts the lights lit by the instructions on stdin, or by each file
// named in args.
func day6(e *env, args []string) error {
	if len(args) == 0 {
		r, name, err := e.input("day6.txt")
		if err != nil {
			return err
		}
		defer r.Close()
		cmds, err := lights.Parse(r)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		e.dump(name, cmds)
		fmt.Fprintln(e.stdout, e.formatCount(lights.Count(cmds)))
		return nil
	}

	// Each input is independent, so evaluate them side by side.
	parsed := make([][]lights.Command, len(args))
	counts := make([]int64, len(args))
	var wg wait.Group
	for i, name := range args {
		i, name := i, name
		wg.Go(func(_ <-chan struct{}) error {
			cmds, err := parseFile(name)
			if err != nil {
				return err
			}
			parsed[i] = cmds
			counts[i] = lights.Count(cmds)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}
	for i, name := range args {
		e.dump(name, parsed[i])
		fmt.Fprintf(e.stdout, "%s: %s\n", name, e.formatCount(counts[i]))
	}
	return nil
}

func parseFile(name string) ([]lights.Command, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cmds, err := lights.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cmds, nil
}

// input returns the reader a solution should read its puzzle input from:
// stdin, unless stdin is a terminal and an inputs directory is configured.
func (e *env) input(file string) (io.ReadCloser, string, error) {
	if !e.interactive || e.cfg.inputs == "" {
		return io.NopCloser(e.stdin), "<stdin>", nil
	}
	name := filepath.Join(e.cfg.inputs, file)
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	return f, name, nil
}

func (e *env) dump(name string, cmds []lights.Command) {
	if !e.verbose {
		return
	}
	xs, ys := lights.Boundaries(cmds)
	fmt.Fprintf(e.stderr, "%s: %d commands, %d×%d compressed blocks\n",
		name, len(cmds), len(xs)-1, len(ys)-1)
	pretty.Fprintf(e.stderr, "%# v\n", cmds)
}

// day6i reads instructions interactively, printing the running count after
// each one.
func day6i(e *env, _ []string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "lights> ",
		HistoryFile: e.cfg.history,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	s := &session{format: e.formatCount}
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		out, err := s.exec(line)
		if err != nil {
			fmt.Fprintln(e.stderr, "error:", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(e.stdout, out)
		}
	}
}

// A session is the command list built up by day6i.
type session struct {
	cmds   []lights.Command
	format func(int64) string
}

var errNothingToUndo = errors.New("nothing to undo")

// exec runs one line of interactive input and returns the text to show.
// A line that fails to parse leaves the session unchanged.
func (s *session) exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	verb, arg, _ := strings.Cut(line, " ")
	switch verb {
	case "":
		return "", nil
	case "help":
		return sessionHelp, nil
	case "count":
		return s.count(), nil
	case "list":
		var b strings.Builder
		for i, cmd := range s.cmds {
			fmt.Fprintf(&b, "%3d  %s\n", i+1, cmd)
		}
		return strings.TrimSuffix(b.String(), "\n"), nil
	case "reset":
		s.cmds = nil
		return s.count(), nil
	case "undo":
		if len(s.cmds) == 0 {
			return "", errNothingToUndo
		}
		s.cmds = s.cmds[:len(s.cmds)-1]
		return s.count(), nil
	case "lit":
		p, err := parsePoint(arg)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(lights.Lit(s.cmds, p)), nil
	}
	cmd, err := lights.ParseCommand(line)
	if err != nil {
		return "", err
	}
	s.cmds = append(s.cmds, cmd)
	return s.count(), nil
}

func (s *session) count() string {
	return s.format(lights.Count(s.cmds))
}

func parsePoint(s string) (lights.Point, error) {
	var p lights.Point
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return p, fmt.Errorf("bad point %q (want X,Y)", s)
	}
	var err error
	if p.X, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return p, fmt.Errorf("bad point %q: %s", s, err)
	}
	if p.Y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return p, fmt.Errorf("bad point %q: %s", s, err)
	}
	return p, nil
}

const sessionHelp = `instructions:
  turn on X,Y through X,Y
  turn off X,Y through X,Y
  toggle X,Y through X,Y
other commands:
  count    print the number of lit lights
  lit X,Y  report whether one light is lit
  list     print the instructions so far
  undo     drop the last instruction
  reset    drop all instructions`
