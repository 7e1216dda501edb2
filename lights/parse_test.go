package lights

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestParseCommand(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want Command
	}{
		{
			"turn on 0,0 through 999,999",
			Command{TurnOn, Rect{Point{0, 0}, Point{999, 999}}},
		},
		{
			"toggle 0,0 through 999,0",
			Command{Toggle, Rect{Point{0, 0}, Point{999, 0}}},
		},
		{
			"turn off 499,499 through 500,500",
			Command{TurnOff, Rect{Point{499, 499}, Point{500, 500}}},
		},
		{
			"  turn   on 1 ,2  through\t4,5\r",
			Command{TurnOn, Rect{Point{1, 2}, Point{4, 5}}},
		},
		{
			"turn on 2147483646,0 through 2147483646,2147483646",
			Command{TurnOn, Rect{Point{MaxCoord, 0}, Point{MaxCoord, MaxCoord}}},
		},
		{
			"toggle 3 4 5 6",
			Command{Toggle, Rect{Point{3, 4}, Point{5, 6}}},
		},
		{
			"turn on 5,5 through 5,5",
			Command{TurnOn, Rect{Point{5, 5}, Point{5, 5}}},
		},
	} {
		got, err := ParseCommand(tt.s)
		if err != nil {
			t.Errorf("ParseCommand(%q): %s", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q): got %v; want %v", tt.s, got, tt.want)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want error
	}{
		{"", ErrTokenCount},
		{"through", ErrTokenCount},
		{"switch on 0,0 through 1,1", ErrUnknownAction},
		{"turn 0,0 through 1,1", ErrUnknownAction},
		{"turn", ErrUnknownAction},
		{"turn up 0,0 through 1,1", ErrUnknownAction},
		{"0,0 through 1,1", ErrUnknownAction},
		{"toggle 0,0 through 1", ErrTokenCount},
		{"toggle 0,0 through 1,1,2", ErrTokenCount},
		{"turn on on 0,0 through 1", ErrBadToken},
		{"toggle -1,0 through 1,1", ErrBadToken},
		{"Toggle 0,0 through 1,1", ErrBadToken},
		{"toggle 0,0 to 1", ErrBadToken},
		{"toggle 5,0 through 1,1", ErrInvertedRect},
		{"turn off 0,5 through 1,1", ErrInvertedRect},
		{"turn on 1,2 ,3 through 4,5", ErrTokenCount},
		{"turn on 0,0 through 9223372036854775807,0", ErrCoordRange},
		{"turn on 0,0 through 4294967296,4294967296", ErrCoordRange},
		{"toggle 0,0 through 2147483647,1", ErrCoordRange},
	} {
		_, err := ParseCommand(tt.s)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseCommand(%q): got error %v; want %v", tt.s, err, tt.want)
		}
	}
}

func TestParseCommandOverflow(t *testing.T) {
	_, err := ParseCommand("toggle 0,0 through 99999999999999999999999,1")
	if !errors.Is(err, ErrCoordRange) {
		t.Fatalf("got %v; want ErrCoordRange", err)
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"turn on 0,0 through 999,999",
		"turn off 12,7 through 13,400",
		"toggle 1,1 through 1,1",
	} {
		cmd, err := ParseCommand(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := cmd.String(); got != s {
			t.Errorf("got %q; want %q", got, s)
		}
	}
}

func TestParse(t *testing.T) {
	f, err := os.Open("testdata/sample.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	want := []Command{
		{TurnOn, Rect{Point{2, 2}, Point{3, 3}}},
		{Toggle, Rect{Point{2, 3}, Point{4, 5}}},
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Parse: got (-) / want (+):\n%s", strings.Join(diff, "\n"))
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	got, err := Parse(strings.NewReader("\n  \ntoggle 0,0 through 1,1\n\nturn off 1,1 through 1,1"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d commands; want 2", len(got))
	}
	if got[0].Action != Toggle || got[1].Action != TurnOff {
		t.Errorf("commands out of order: %v", got)
	}
}

func TestParseLongLine(t *testing.T) {
	input := "toggle 0,0 through 1,1\n" + strings.Repeat(" ", bufio.MaxScanTokenSize+1) + "\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Fatalf("got %v; want bufio.ErrTooLong", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T; want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("got line %d; want 2", perr.Line)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d commands; want 0", len(got))
	}
}

func TestParseError(t *testing.T) {
	input := "turn on 0,0 through 1,1\n\nturn sideways 0,0 through 1,1\ntoggle 0,0 through 1,1\n"
	cmds, err := Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("got nil error for malformed input")
	}
	if cmds != nil {
		t.Errorf("got %d commands alongside error; want none", len(cmds))
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T; want *ParseError", err)
	}
	if perr.Line != 3 {
		t.Errorf("got line %d; want 3", perr.Line)
	}
	if want := "turn sideways 0,0 through 1,1"; perr.Text != want {
		t.Errorf("got text %q; want %q", perr.Text, want)
	}
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("got %v; want it to wrap ErrUnknownAction", err)
	}
}
