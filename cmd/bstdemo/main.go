/*
Command bstdemo builds a binary search tree from a list of integers and prints it.

	bstdemo -values 3,5,4,7,6,1,2 -find 4 -format console

Formats are 'console' (default), 'dot' and 'html'. With -trace, insertions and
lookups are traced to the standard logger.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/bst"
	"github.com/npillmayer/bst/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

type args struct {
	Values string
	Find   string
	Format string
	Trace  bool
}

func parseArgs() *args {
	a := new(args)
	flag.StringVar(&a.Values, "values", "3,5,4,7,6,1,2", "comma separated integers, inserted in order")
	flag.StringVar(&a.Find, "find", "", "integer to look up after building the tree")
	flag.StringVar(&a.Format, "format", "console", "output format: console | dot | html")
	flag.BoolVar(&a.Trace, "trace", false, "trace tree operations")
	flag.Parse()
	return a
}

func main() {
	a := parseArgs()
	if err := run(a); err != nil {
		fmt.Fprintf(os.Stderr, "bstdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(a *args) error {
	values, err := parseInts(a.Values)
	if err != nil {
		return err
	}
	cfg := bst.OrderedConfig[int]()
	if a.Trace {
		cfg.Tracer = gologadapter.New()
		cfg.Tracer.SetTraceLevel(tracing.LevelDebug)
	}
	tree, err := bst.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	for _, v := range values {
		tree.Insert(v)
	}
	switch a.Format {
	case "console":
		err = render.Print(os.Stdout, tree.Root(), nil)
	case "dot":
		err = render.Dot(os.Stdout, tree.Root())
	case "html":
		if err = render.HTML(os.Stdout, tree.Root()); err == nil {
			fmt.Println()
		}
	default:
		return fmt.Errorf("unknown format %q", a.Format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("in-order: %v (height %d)\n", tree.Values(), tree.Height())
	if a.Find == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(a.Find))
	if err != nil {
		return fmt.Errorf("illegal value to find: %w", err)
	}
	if node := tree.Find(v); node != nil {
		fmt.Printf("found %d, subtree has %d values\n", v, node.Len())
	} else {
		fmt.Printf("%d not found\n", v)
	}
	return nil
}

func parseInts(s string) ([]int, error) {
	var values []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("illegal value in list: %w", err)
		}
		values = append(values, v)
	}
	return values, nil
}
