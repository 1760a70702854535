// Command duckext loads an extension manifest, registers its types and functions in a
// DuckDB database, and prints the resulting types.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/marcboeker/duckext"
	"github.com/marcboeker/duckext/internal/ctxlog"
	"github.com/marcboeker/duckext/manifest"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) error {
	fs := flag.NewFlagSet("duckext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	manifestPath := fs.String("manifest", "", "path to the extension manifest (HCL)")
	dbPath := fs.String("db", "", "database file, in-memory if empty")
	threads := fs.Int("threads", 0, "number of DuckDB threads, DuckDB's default if 0")
	accessMode := fs.String("access-mode", "", "DuckDB access mode, e.g., READ_WRITE")
	listFlags := fs.Bool("list-config", false, "list DuckDB's configuration flags and exit")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	ctx = ctxlog.WithLogger(ctx, logger)

	if *listFlags {
		return printConfigFlags(stdout)
	}
	if *manifestPath == "" {
		fs.Usage()
		return fmt.Errorf("missing -manifest")
	}

	m, err := manifest.Load(ctx, *manifestPath)
	if err != nil {
		return err
	}

	config, err := duckext.NewConfig()
	if err != nil {
		return err
	}
	defer config.Close()
	if err = config.SetFlags(duckext.Options{AccessMode: *accessMode, Threads: *threads}); err != nil {
		return err
	}

	db, err := duckext.Open(*dbPath, config)
	if err != nil {
		return err
	}
	defer db.Close()

	conn, err := db.Connect()
	if err != nil {
		return err
	}
	defer conn.Close()
	if version, err := conn.LibraryVersion(); err == nil {
		logger.Debug("Opened database", "path", *dbPath, "version", version)
	}

	ext, err := m.Build()
	if err != nil {
		return err
	}
	defer ext.Close()
	if err = ext.Register(ctx, conn); err != nil {
		return err
	}

	for _, t := range ext.Types {
		arrowType, err := duckext.ArrowType(t.Type)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %s\n", t.Name, t.Type)
		fmt.Fprintf(stdout, "  arrow: %s\n", arrowType)
	}
	for _, f := range ext.Functions {
		fmt.Fprintf(stdout, "%s(%s) -> %s\n", f.Name(), joinTypes(f.Parameters()), f.ReturnType())
	}
	return nil
}

func printConfigFlags(w io.Writer) error {
	flags, err := duckext.ConfigFlags()
	if err != nil {
		return err
	}
	for _, f := range flags {
		fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Description)
	}
	return nil
}

func joinTypes(types []duckext.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
