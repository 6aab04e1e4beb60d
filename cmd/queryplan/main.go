package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/suparena/queryflow"
	"github.com/suparena/queryflow/query"
	"github.com/suparena/queryflow/schema"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	schemaFlag  = flag.String("schema", "tables.yaml", "Path to the YAML table schema file")
	tableFlag   = flag.String("table", "", "Name of the registered table to query")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := queryflow.GetVersionInfo()
		fmt.Printf("QueryFlow queryplan version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *tableFlag == "" {
		fmt.Fprintln(os.Stderr, "queryplan: -table is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*schemaFlag, *tableFlag, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "queryplan: %v\n", err)
		os.Exit(1)
	}
}

// run compiles the key=value arguments against the table schema and prints
// the wire-ready request as JSON without sending it.
func run(schemaPath, tableName string, args []string) error {
	if err := schema.LoadFile(schemaPath); err != nil {
		return err
	}
	table, err := schema.GetTable(tableName)
	if err != nil {
		return err
	}

	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	spec, err := query.ParseOptions(table, opts)
	if err != nil {
		return err
	}
	req, err := query.Build(spec)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(req.Input(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render request: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseArgs turns key=value arguments into a query option set. Integer and
// boolean values are coerced so numeric options like record_limit work from
// the command line; everything else stays a string.
func parseArgs(args []string) (query.Options, error) {
	opts := query.Options{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("argument %q is not of the form key=value", arg)
		}
		opts[key] = coerce(value)
	}
	return opts, nil
}

func coerce(value string) any {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
