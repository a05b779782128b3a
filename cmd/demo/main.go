// Command demo builds each tree type with a handful of sample entries and
// dumps its node structure to stdout. It is a human-readable smoke test,
// not a served CLI — there is no daemon, no flags beyond -n and -order,
// nothing to configure.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mnohosten/bptrees/pkg/bptree"
	"github.com/mnohosten/bptrees/pkg/longtree"
	"github.com/mnohosten/bptrees/pkg/rtree"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return nil
	}

	command := os.Args[1]
	switch command {
	case "longtree":
		return runLongtree(os.Args[2:])
	case "bptree":
		return runBptree(os.Args[2:])
	case "rtree":
		return runRtree(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("usage: demo <longtree|bptree|rtree> [-n count]")
}

func runLongtree(args []string) error {
	fs := flag.NewFlagSet("longtree", flag.ExitOnError)
	n := fs.Int("n", 20, "number of entries to insert")
	order := fs.Int("order", 4, "tree order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tr, err := longtree.New[string](*order)
	if err != nil {
		return err
	}
	for i := 0; i < *n; i++ {
		tr.Put(int64(i), fmt.Sprintf("v%d", i))
	}
	tr.Dump(os.Stdout)
	return nil
}

func runBptree(args []string) error {
	fs := flag.NewFlagSet("bptree", flag.ExitOnError)
	n := fs.Int("n", 20, "number of entries to insert")
	order := fs.Int("order", 4, "tree order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tr, err := bptree.New[string, string](*order)
	if err != nil {
		return err
	}
	for i := 0; i < *n; i++ {
		key := fmt.Sprintf("k%03d", i)
		tr.Put(key, fmt.Sprintf("v%d", i))
	}
	tr.Dump(os.Stdout)
	return nil
}

// demoBox is a one-dimensional RBox used only to drive the rtree demo.
type demoBox struct {
	lo, hi int
}

func (b *demoBox) CompareTo(other rtree.RBox) int {
	o := other.(*demoBox)
	if b.lo != o.lo {
		return b.lo - o.lo
	}
	return b.hi - o.hi
}

func (b *demoBox) Clone() rtree.RBox {
	c := *b
	return &c
}

func (b *demoBox) Union(other rtree.RBox) {
	o := other.(*demoBox)
	if b.lo < o.lo {
		o.lo = b.lo
	}
	if b.hi > o.hi {
		o.hi = b.hi
	}
}

func (b *demoBox) Intersect(other rtree.RBox) rtree.Relation {
	o := other.(*demoBox)
	switch {
	case b.lo <= o.lo && b.hi >= o.hi:
		return rtree.Contains
	case b.lo > o.hi || b.hi < o.lo:
		return rtree.NoCollision
	default:
		return rtree.Intersects
	}
}

func runRtree(args []string) error {
	fs := flag.NewFlagSet("rtree", flag.ExitOnError)
	n := fs.Int("n", 20, "number of entries to insert")
	order := fs.Int("order", 4, "tree order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	toKey := func(id int) int { return id }
	toBox := func(id int) rtree.RBox { return &demoBox{lo: id * 5, hi: id*5 + 8} }

	tr, err := rtree.New[int, int](*order, toKey, toBox)
	if err != nil {
		return err
	}
	for i := 0; i < *n; i++ {
		if _, _, err := tr.Add(i); err != nil {
			return err
		}
	}
	tr.Dump(os.Stdout)
	return nil
}
