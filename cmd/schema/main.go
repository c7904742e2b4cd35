// Command schema writes the JSON schema of proposalfast.yml, used by editors and by config verification.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/proposalfast/proposalfast/pkg/config"
)

// Opts with schema generator options
type Opts struct {
	Check bool `long:"check" description:"verify the schema file is up to date instead of writing it"`
	Args  struct {
		Output string `positional-arg-name:"output" description:"schema file path (default: schema.json)"`
	} `positional-args:"yes"`
}

var errStale = errors.New("schema file is out of date, run go generate ./pkg/config")

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[--check] [output]"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	path, err := run(opts)
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	if opts.Check {
		lgr.Printf("[INFO] config schema %s is up to date", path)
		return
	}
	lgr.Printf("[INFO] config schema written to %s", path)
}

// run renders the config schema and writes or compares it, returning the file path used
func run(opts Opts) (string, error) {
	path := opts.Args.Output
	if path == "" {
		path = "schema.json"
	}

	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return path, fmt.Errorf("marshal schema: %w", err)
	}

	if opts.Check {
		current, err := os.ReadFile(path) //nolint:gosec // path comes from CLI argument
		if err != nil {
			return path, fmt.Errorf("read %s: %w", path, err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			return path, fmt.Errorf("%s: %w", path, errStale)
		}
		return path, nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
