package lights

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrBadToken      = errors.New("bad token")
	ErrTokenCount    = errors.New("wrong number of tokens")
	ErrInvertedRect  = errors.New("rectangle corners out of order")
	ErrCoordRange    = errors.New("coordinate out of range")
)

// MaxCoord is the largest coordinate the parser accepts. It leaves room for
// the one-past-the-end boundary in a 32-bit int, and every block area then
// fits in an int64.
const MaxCoord = 1<<31 - 2

// A ParseError records the input line that could not be parsed.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads one instruction per line from r. Blank lines are ignored.
// Parsing stops at the first malformed line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			return nil, &ParseError{Line: n, Text: line, Err: err}
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: n + 1, Err: err}
	}
	return cmds, nil
}

// ParseCommand parses a single instruction such as
//
//	turn on 0,0 through 999,999
//
// Spaces, commas, and the word "through" only separate tokens.
func ParseCommand(s string) (Command, error) {
	var cmd Command
	toks, err := lex(s)
	if err != nil {
		return cmd, err
	}
	if len(toks) == 0 {
		return cmd, fmt.Errorf("%w: empty instruction", ErrTokenCount)
	}

	var rest []token
	switch toks[0].word {
	case "toggle":
		cmd.Action = Toggle
		rest = toks[1:]
	case "turn":
		if len(toks) < 2 {
			return cmd, fmt.Errorf("%w: %q with no direction", ErrUnknownAction, "turn")
		}
		switch toks[1].word {
		case "on":
			cmd.Action = TurnOn
		case "off":
			cmd.Action = TurnOff
		default:
			return cmd, fmt.Errorf("%w: turn %s", ErrUnknownAction, toks[1])
		}
		rest = toks[2:]
	default:
		return cmd, fmt.Errorf("%w: %s", ErrUnknownAction, toks[0])
	}

	if len(rest) != 4 {
		return cmd, fmt.Errorf("%w: got %d coordinates; want 4", ErrTokenCount, len(rest))
	}
	var nums [4]int
	for i, tok := range rest {
		if !tok.isNum {
			return cmd, fmt.Errorf("%w: %s where a number belongs", ErrBadToken, tok)
		}
		nums[i] = tok.num
	}
	cmd.Rect = Rect{
		Min: Point{nums[0], nums[1]},
		Max: Point{nums[2], nums[3]},
	}
	if cmd.Rect.Empty() {
		return cmd, fmt.Errorf("%w: %s through %s", ErrInvertedRect, cmd.Rect.Min, cmd.Rect.Max)
	}
	return cmd, nil
}

type token struct {
	word  string
	num   int
	isNum bool
}

func (t token) String() string {
	if t.isNum {
		return strconv.Itoa(t.num)
	}
	return strconv.Quote(t.word)
}

func isSep(c byte) bool {
	switch c {
	case ' ', '\t', '\r', ',':
		return true
	}
	return false
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

func lex(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSep(c):
			i++
		case isLetter(c):
			j := i + 1
			for j < len(s) && isLetter(s[j]) {
				j++
			}
			if w := s[i:j]; w != "through" {
				toks = append(toks, token{word: w})
			}
			i = j
		case isDigit(c):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil || n > MaxCoord {
				return nil, fmt.Errorf("%w: %s (max %d)", ErrCoordRange, s[i:j], MaxCoord)
			}
			toks = append(toks, token{num: n, isNum: true})
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrBadToken, c, i)
		}
	}
	return toks, nil
}
