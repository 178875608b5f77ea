package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/troid/internal/config"
)

type configCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Program() string {
	return c.subcommand("config")
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		_, err := fmt.Fprint(c.out, c.config.String())
		return err
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runSave() error {
	loader := config.NewLoader(version, configPathOverride)
	if existing := loader.GetConfigPath(); existing != "" {
		loader.OverridePath = existing
	}
	path, err := loader.Save(c.config)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}
