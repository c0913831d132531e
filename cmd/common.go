package main

import (
	"fmt"
	"os"

	"mapkeep/pkg/config"
	"mapkeep/pkg/naming"
	"mapkeep/pkg/prompt"
	"mapkeep/pkg/store"
)

// loadConfig resolves the effective configuration. A positional directory
// argument wins over --dir, which wins over the config file.
func loadConfig(dirArg string) (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if mapDir != "" {
		cfg.Directory = mapDir
	}
	if dirArg != "" {
		cfg.Directory = dirArg
	}

	return cfg, nil
}

// resolveName drives one interactive naming run and returns the resolved
// path inside the managed directory.
func resolveName(command, dirArg string, intent naming.Intent) (string, error) {
	cfg, err := loadConfig(dirArg)
	if err != nil {
		return "", err
	}

	s, err := store.Open(cfg.Directory, cfg.Extension, command)
	if err != nil {
		return "", err
	}
	defer s.Close()

	if verbose {
		fmt.Fprintf(os.Stderr, "map directory: %s\n", s.Dir())
		if !prompt.Interactive() {
			fmt.Fprintln(os.Stderr, "reading names from stdin")
		}
	}

	engine := naming.New(s, prompt.New(prompt.Options{Dir: s.Dir(), Columns: cfg.ListColumns}), naming.Options{
		Extension:  cfg.Extension,
		MaxNameLen: cfg.MaxNameLength,
	})

	return engine.Run(intent)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
