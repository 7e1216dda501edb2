package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "INI config file (default $HOME/"+defaultConfigName+", if present)")
		cpuProfile = flag.String("cpuprofile", "", "Write a wall-clock profile of the solution to this file")
		human      = flag.Bool("human", false, "Print counts with thousands separators")
		verbose    = flag.Bool("v", false, "Dump parsed input and evaluation stats to stderr")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	e := &env{
		cfg:         cfg,
		human:       cfg.human,
		verbose:     *verbose,
		interactive: readline.IsTerminal(int(os.Stdin.Fd())),
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "human" {
			e.human = *human
		}
	})

	if err := run(fn, e, flag.Args()[1:], *cpuProfile); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func run(fn solution, e *env, args []string, profile string) (err error) {
	if profile != "" {
		f, ferr := os.Create(profile)
		if ferr != nil {
			return ferr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err1 := stop(); err == nil {
				err = err1
			}
			if err1 := f.Close(); err == nil {
				err = err1
			}
		}()
	}
	return fn(e, args)
}

// env is everything a solution may touch outside its arguments.
type env struct {
	cfg     config
	human   bool
	verbose bool
	// interactive is whether stdin is a terminal.
	interactive bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (e *env) formatCount(n int64) string {
	if e.human {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}

type solution func(e *env, args []string) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
