package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/san-kum/algoviz/internal/animate"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/parse"
	"github.com/san-kum/algoviz/internal/structures"
	"github.com/spf13/cobra"
)

var (
	instant    bool
	graphNodes int
	graphEdges string
	graphStart int
	graphSVG   bool
	searchFor  string
	traversal  string
	bstDOT     bool
	doubly     bool
	prependV   []int
	removeV    []int
)

// showFrames prints frames one line at a time, paced by the configured delay
// unless output is not a terminal or --instant is set.
func showFrames[F fmt.Stringer](ctx context.Context, cfg *config.Config, frames []F) error {
	if instant || !isatty.IsTerminal(os.Stdout.Fd()) {
		for _, f := range frames {
			fmt.Println(f.String())
		}
		return nil
	}
	return paceFrames(ctx, os.Stdout, cfg.Delay(), frames)
}

// paceFrames writes frames to w through animate.Run. An interrupt prints an
// idle line and is not an error.
func paceFrames[F fmt.Stringer](ctx context.Context, w io.Writer, delay time.Duration, frames []F) error {
	err := animate.Run(ctx, frames, animate.Options{
		Delay:  delay,
		OnIdle: func() { fmt.Fprintln(w, "-- stopped --") },
		Logger: loggerFromContext(ctx),
	}, func(f F) { fmt.Fprintln(w, f.String()) })
	return ignoreCancel(err)
}

func ignoreCancel(err error) error {
	if errors.Is(err, animate.ErrCanceled) {
		return nil
	}
	return err
}

// ints parses every argument as an integer.
func ints(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", a)
		}
		out = append(out, v)
	}
	return out, nil
}

func graphCommand() *cobra.Command {
	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "traverse an undirected graph",
	}
	graphCmd.PersistentFlags().IntVar(&graphNodes, "nodes", 0, "number of nodes (default from config)")
	graphCmd.PersistentFlags().StringVar(&graphEdges, "edges", "", "edge list, e.g. \"0-1, 1-2\"")
	graphCmd.PersistentFlags().IntVar(&graphStart, "start", 0, "start node")
	graphCmd.PersistentFlags().BoolVar(&instant, "instant", false, "print every frame without pausing")
	graphCmd.PersistentFlags().BoolVar(&graphSVG, "svg", false, "write the final frame as SVG instead of text")
	graphCmd.PersistentFlags().StringVarP(&outFile, "output", "o", "-", "SVG output file, - for stdout")

	traverse := func(name string, walk func(*graph.Graph, int) ([]graph.Frame, error)) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: name + " traversal with one frame per step",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, g, err := buildGraph(cmd)
				if err != nil {
					return err
				}
				frames, err := walk(g, cfg.Graph.Start)
				if err != nil {
					return err
				}
				if graphSVG {
					last := frames[len(frames)-1]
					svg, err := g.RenderSVG(cmd.Context(), &last)
					if err != nil {
						return err
					}
					return export.ToFile(outFile, func(w io.Writer) error {
						_, err := w.Write(svg)
						return err
					})
				}
				return showFrames(cmd.Context(), cfg, frames)
			},
		}
	}

	matrixCmd := &cobra.Command{
		Use:   "matrix",
		Short: "print the adjacency matrix and list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := buildGraph(cmd)
			if err != nil {
				return err
			}
			var b strings.Builder
			b.WriteString("    ")
			for v := 0; v < g.Len(); v++ {
				fmt.Fprintf(&b, "%3d", v)
			}
			b.WriteByte('\n')
			for u, row := range g.Matrix() {
				fmt.Fprintf(&b, "%3d ", u)
				for _, x := range row {
					fmt.Fprintf(&b, "%3d", x)
				}
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
			for u, ns := range g.AdjacencyList() {
				fmt.Fprintf(&b, "%3d: %s\n", u, parse.Format(ns))
			}
			fmt.Print(b.String())
			return nil
		},
	}

	graphCmd.AddCommand(
		traverse("bfs", (*graph.Graph).BFS),
		traverse("dfs", (*graph.Graph).DFS),
		matrixCmd,
	)
	return graphCmd
}

func buildGraph(cmd *cobra.Command) (*config.Config, *graph.Graph, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("nodes") {
		cfg.Graph.Nodes = graphNodes
	}
	if cmd.Flags().Changed("edges") {
		cfg.Graph.Edges = graphEdges
	}
	if cmd.Flags().Changed("start") {
		cfg.Graph.Start = graphStart
	}

	edges, err := parse.Edges(cfg.Graph.Edges)
	if err != nil {
		return nil, nil, err
	}
	g := graph.WithNodes(cfg.Graph.Nodes)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, nil, fmt.Errorf("edge %d-%d: %w", e.From, e.To, err)
		}
	}
	loggerFromContext(cmd.Context()).Debug("graph built", "nodes", g.Len(), "edges", g.EdgeCount())
	return cfg, g, nil
}

func bstCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bst [values...]",
		Short: "insert values into a binary search tree",
		RunE:  runBST,
	}
	cmd.Flags().StringVar(&searchFor, "search", "", "value to search for after inserting")
	cmd.Flags().StringVar(&traversal, "order", "", "traversal to show: in, pre or post")
	cmd.Flags().BoolVar(&bstDOT, "dot", false, "print the final tree as DOT")
	cmd.Flags().BoolVar(&instant, "instant", false, "print every frame without pausing")
	return cmd
}

func runBST(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	vals, err := ints(args)
	if err != nil {
		return err
	}

	t := structures.NewBST()
	var frames []structures.Frame
	for _, v := range vals {
		fs, err := t.Insert(v)
		if errors.Is(err, structures.ErrDuplicate) {
			logger.Warn("skipping duplicate", "value", v)
		}
		frames = append(frames, fs...)
	}

	var highlight []int
	if searchFor != "" {
		v, err := strconv.Atoi(searchFor)
		if err != nil {
			return fmt.Errorf("search: not an integer: %q", searchFor)
		}
		fs, found := t.Search(v)
		frames = append(frames, fs...)
		if found {
			highlight = append(highlight, v)
		}
	}

	if traversal != "" {
		var fs []structures.Frame
		switch traversal {
		case "in":
			fs, err = t.InOrder()
		case "pre":
			fs, err = t.PreOrder()
		case "post":
			fs, err = t.PostOrder()
		default:
			return fmt.Errorf("unknown traversal %q (want in, pre or post)", traversal)
		}
		if err != nil {
			return err
		}
		frames = append(frames, fs...)
	}

	if bstDOT {
		fmt.Print(t.DOT(highlight...))
		return nil
	}
	if err := showFrames(cmd.Context(), cfg, frames); err != nil {
		return err
	}
	fmt.Printf("size %d, height %d\n", t.Len(), t.Height())
	return nil
}

func listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [values...]",
		Short: "append values to a linked list",
		RunE:  runList,
	}
	cmd.Flags().BoolVar(&doubly, "doubly", false, "use a doubly linked list")
	cmd.Flags().IntSliceVar(&prependV, "prepend", nil, "values to prepend")
	cmd.Flags().IntSliceVar(&removeV, "remove", nil, "values to remove")
	cmd.Flags().StringVar(&searchFor, "search", "", "value to search for")
	cmd.Flags().BoolVar(&instant, "instant", false, "print every frame without pausing")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	vals, err := ints(args)
	if err != nil {
		return err
	}

	l := structures.NewList(doubly)
	var frames []structures.Frame
	for _, v := range vals {
		frames = append(frames, l.Append(v)...)
	}
	for _, v := range prependV {
		frames = append(frames, l.Prepend(v)...)
	}
	for _, v := range removeV {
		fs, err := l.Remove(v)
		if err != nil {
			logger.Warn("remove failed", "value", v, "err", err)
		}
		frames = append(frames, fs...)
	}
	if searchFor != "" {
		v, err := strconv.Atoi(searchFor)
		if err != nil {
			return fmt.Errorf("search: not an integer: %q", searchFor)
		}
		fs, _ := l.Search(v)
		frames = append(frames, fs...)
	}

	if err := showFrames(cmd.Context(), cfg, frames); err != nil {
		return err
	}
	fmt.Printf("%s list: %s\n", l.Kind(), parse.Format(l.Values()))
	if back, err := l.Backward(); err == nil {
		fmt.Printf("backward: %s\n", parse.Format(back))
	}
	return nil
}

func stackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack [ops...]",
		Short: "run stack operations: a number pushes it, or pop, peek, clear",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStack,
	}
	cmd.Flags().BoolVar(&instant, "instant", false, "print every frame without pausing")
	return cmd
}

func runStack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	s := structures.NewStack()
	var frames []structures.Frame
	for _, op := range args {
		var f structures.Frame
		var err error
		switch op {
		case "pop":
			_, f, err = s.Pop()
		case "peek":
			_, f, err = s.Peek()
		case "clear":
			s.Clear()
			f = structures.Frame{Active: structures.None, Found: structures.None, Text: "Cleared"}
		default:
			v, convErr := strconv.Atoi(op)
			if convErr != nil {
				return fmt.Errorf("unknown stack operation %q", op)
			}
			f, err = s.Push(v)
		}
		if err != nil {
			logger.Warn("stack operation failed", "op", op, "err", err)
		}
		frames = append(frames, f)
	}
	return showFrames(cmd.Context(), cfg, frames)
}

func queueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue [ops...]",
		Short: "run queue operations: a number enqueues it, or dequeue, peek, clear",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runQueue,
	}
	cmd.Flags().BoolVar(&instant, "instant", false, "print every frame without pausing")
	return cmd
}

func runQueue(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	q := structures.NewQueue()
	var frames []structures.Frame
	for _, op := range args {
		var f structures.Frame
		var err error
		switch op {
		case "dequeue", "deq":
			_, f, err = q.Dequeue()
		case "peek":
			_, f, err = q.Peek()
		case "clear":
			q.Clear()
			f = structures.Frame{Active: structures.None, Found: structures.None, Text: "Cleared"}
		default:
			v, convErr := strconv.Atoi(op)
			if convErr != nil {
				return fmt.Errorf("unknown queue operation %q", op)
			}
			f, err = q.Enqueue(v)
		}
		if err != nil {
			logger.Warn("queue operation failed", "op", op, "err", err)
		}
		frames = append(frames, f)
	}
	return showFrames(cmd.Context(), cfg, frames)
}
