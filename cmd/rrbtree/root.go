package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/rcillo/rrb-tree"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rrbtree",
	Short: "Build and time RRB-tree operations against a plain slice",
	Long:  `rrbtree exercises the rrbtree package's Append and ForEach against a bare Go slice doing the same work, so the trade-off between shared, persistent structure and a mutable array is visible on real numbers.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(inspectCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build N",
	Short: "Build a tree of N ints by repeated Append and print its size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		t := rrbtree.Empty[int]()
		for i := 0; i < n; i++ {
			t = t.Append(i)
		}
		fmt.Printf("built tree of size %d\n", t.Size())
		return nil
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench N",
	Short: "Time N Appends and a scan against the tree and against a slice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		log.Println(measure("tree append", n, appendTree))
		log.Println(measure("slice append", n, appendSlice))
		log.Println(measure("tree scan", n, scanTree))
		log.Println(measure("slice scan", n, scanSlice))
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect N",
	Short: "Build a tree of N ints and dump its node shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		t := rrbtree.Empty[int]()
		for i := 0; i < n; i++ {
			t = t.Append(i)
		}
		fmt.Print(t.String())
		return nil
	},
}

func appendTree(n int) {
	t := rrbtree.Empty[int]()
	for i := 0; i < n; i++ {
		t = t.Append(i)
	}
}

func appendSlice(n int) {
	var s []int
	for i := 0; i < n; i++ {
		s = append(s, i)
	}
}

func scanTree(n int) {
	t := rrbtree.Empty[int]()
	for i := 0; i < n; i++ {
		t = t.Append(i)
	}
	sum := 0
	t.ForEach(func(x int) bool {
		sum += x
		return true
	})
}

func scanSlice(n int) {
	var s []int
	for i := 0; i < n; i++ {
		s = append(s, i)
	}
	sum := 0
	for _, x := range s {
		sum += x
	}
}

func measure(label string, n int, fn func(int)) string {
	start := time.Now()
	fn(n)
	return fmt.Sprintf("%s(%d): %s", label, n, time.Since(start))
}
