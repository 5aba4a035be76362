package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/g-m-twostay/bintree/Trees"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	maxDepth int
	chainLen int
)

var sideEff int

// perfect tree of height d holding its in-order ranks.
func perfect(d int) *Trees.BinaryTree[int] {
	var build func(lo, hi int) *Trees.Node[int]
	build = func(lo, hi int) *Trees.Node[int] {
		if lo > hi {
			return nil
		}
		mid := int(uint(lo+hi) >> 1)
		return &Trees.Node[int]{Value: mid, Left: build(lo, mid-1), Right: build(mid+1, hi)}
	}
	hi := 1<<(d+1) - 2
	t := Trees.New(hi >> 1)
	t.Root().Left, t.Root().Right = build(0, hi>>1-1), build(hi>>1+1, hi)
	return t
}

func chain(n int) *Trees.BinaryTree[int] {
	t := Trees.New(0)
	for i, cur := 1, t.Root(); i < n; i, cur = i+1, cur.Left {
		cur.Left = Trees.NewNode(i)
	}
	return t
}

type op struct {
	name string
	f    func(*Trees.BinaryTree[int])
}

var ops = []op{
	{"Size", func(t *Trees.BinaryTree[int]) { sideEff = int(t.Size()) }},
	{"Height", func(t *Trees.BinaryTree[int]) { sideEff = t.Height() }},
	{"IsBalanced", func(t *Trees.BinaryTree[int]) {
		if t.IsBalanced() {
			sideEff++
		}
	}},
	{"InOrder", func(t *Trees.BinaryTree[int]) { sideEff = len(t.InOrder()) }},
	{"PostOrder", func(t *Trees.BinaryTree[int]) { sideEff = len(t.PostOrder()) }},
	{"Walk " + Trees.OrderIn.String(), func(t *Trees.BinaryTree[int]) {
		t.Walk(Trees.OrderIn, func(v *int) bool {
			sideEff = *v
			return true
		})
	}},
	{"Walk " + Trees.OrderLevel.String(), func(t *Trees.BinaryTree[int]) {
		t.Walk(Trees.OrderLevel, func(v *int) bool {
			sideEff = *v
			return true
		})
	}},
}

// measure every op on t and append a row per op.
func measure(shape string, t *Trees.BinaryTree[int], rows pterm.TableData) pterm.TableData {
	sz := t.Size()
	for _, o := range ops {
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				o.f(t)
			}
		})
		rows = append(rows, []string{
			shape,
			fmt.Sprint(sz),
			fmt.Sprint(t.Height()),
			o.name,
			fmt.Sprintf("%.2f", float64(br.NsPerOp())/float64(sz)),
		})
	}
	return rows
}

func run(cmd *cobra.Command, args []string) error {
	if maxDepth < 1 {
		return errors.Errorf("--max-depth must be at least 1, got %d", maxDepth)
	}
	if chainLen < 1 {
		return errors.Errorf("--chain must be at least 1, got %d", chainLen)
	}
	if maxDepth > 24 {
		return errors.Errorf("--max-depth %d would build over %d nodes", maxDepth, 1<<25)
	}

	rows := pterm.TableData{{"Shape", "Size", "Height", "Op", "ns/node"}}
	for d := 1; d <= maxDepth; d++ {
		pterm.Debug.Printfln("measuring perfect tree of height %d", d)
		rows = measure("perfect", perfect(d), rows)
	}
	rows = measure("chain", chain(chainLen), rows)

	out, err := pterm.DefaultTable.WithHasHeader(true).WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, "rendering results")
	}
	pterm.Println(out)
	return nil
}

var rootCmd = &cobra.Command{
	Use:           "measure",
	Short:         "Time whole-tree queries on perfect and degenerate binary trees",
	Example:       `measure --max-depth 18 --chain 4096`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	testing.Init()
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 16, "measure perfect trees of every height from 1 up to this")
	rootCmd.Flags().IntVar(&chainLen, "chain", 2048, "number of nodes in the left-leaning chain")
	rootCmd.Flags().BoolVar(&pterm.PrintDebugMessages, "debug", false, "print progress")
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
