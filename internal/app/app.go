package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/induct/graph"
	"github.com/vk/induct/internal/ctxlog"
	"github.com/vk/induct/path"
)

// nodeCount is the size of the built-in demo graph.
const nodeCount = 6

// App encapsulates the demo application's output writer and logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp is the constructor for the demo application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW),
	}
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// Run builds the demo graphs and executes the algorithms against them: the
// topological order of a small dependency DAG, then shortest paths through
// the six-node weighted graph from Source to Target.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "source", cfg.Source, "target", cfg.Target)

	if err := a.runTopSort(ctx); err != nil {
		return err
	}
	return a.runShortestPath(ctx, cfg.Source, cfg.Target)
}

// runTopSort builds a four-node dependency DAG and prints its topological
// order.
func (a *App) runTopSort(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	g, err := graph.Build(
		graph.Context[int, string, int]{Node: 1, Label: "release", Succ: graph.Adj[int, int]{{Node: 2}, {Node: 3}}},
		graph.Context[int, string, int]{Node: 2, Label: "test", Succ: graph.Adj[int, int]{{Node: 4}}},
		graph.Context[int, string, int]{Node: 3, Label: "lint", Succ: graph.Adj[int, int]{{Node: 4}}},
		graph.Context[int, string, int]{Node: 4, Label: "build"},
	)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	logger.Debug("Dependency graph built.", "node_count", len(graph.Nodes(g)))

	order := graph.TopSort(g)
	fmt.Fprintf(a.outW, "topological order: %v\n", order)
	return nil
}

// runShortestPath runs Dijkstra over the six-node weighted graph and prints
// the path from source to target.
func (a *App) runShortestPath(ctx context.Context, source, target int) error {
	logger := ctxlog.FromContext(ctx)

	g, err := demoGraph()
	if err != nil {
		return fmt.Errorf("failed to build weighted graph: %w", err)
	}
	logger.Debug("Weighted graph built.", "node_count", len(graph.Nodes(g)))

	result := path.ShortestPathsFrom(g, source)
	logger.Debug("Shortest paths settled.", "settled_count", len(result))

	nodes, ok := result.PathTo(target)
	if !ok {
		fmt.Fprintf(a.outW, "node %d is unreachable from node %d\n", target, source)
		return nil
	}
	dist, _ := result.DistanceTo(target)

	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	fmt.Fprintf(a.outW, "shortest path %d -> %d: %s (distance %d)\n", source, target, strings.Join(parts, " -> "), dist)
	return nil
}

// demoGraph is the classic six-node weighted graph, treated as undirected:
// each listed edge appears as both a predecessor and a successor.
func demoGraph() (graph.Graph[int, string, int], error) {
	both := func(node int, label string, edges ...graph.Half[int, int]) graph.Context[int, string, int] {
		return graph.Context[int, string, int]{
			Pred:  edges,
			Node:  node,
			Label: label,
			Succ:  edges,
		}
	}
	w := func(weight, node int) graph.Half[int, int] {
		return graph.Half[int, int]{Label: weight, Node: node}
	}
	return graph.Build(
		both(1, "start", w(7, 2), w(9, 3), w(14, 6)),
		both(2, "b", w(10, 3), w(15, 4)),
		both(3, "c", w(11, 4), w(2, 6)),
		both(4, "d", w(6, 5)),
		both(5, "goal", w(9, 6)),
		both(6, "f"),
	)
}
