// modelgen builds the standard block model set and inspects stored models.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/blockmodels/internal/config"
	"github.com/Faultbox/blockmodels/internal/logger"
)

func main() {
	// Global flags come before the command
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	args = args[1:]
	switch command {
	case "generate", "gen":
		err = cmdGenerate(cfg, args)
	case "list", "ls":
		err = cmdList(cfg, args)
	case "catalog":
		err = cmdCatalog(args)
	case "info":
		err = cmdInfo(cfg, args)
	case "export":
		err = cmdExport(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`modelgen - block model generator

Usage:
  modelgen [options] <command> [arguments]

Commands:
  generate [name...]                 Compile models into the store
  list                               List models in the store
  catalog                            List models that can be generated
  info <name>                        Show parts, faces and bounds of a model
  export [-to F] [-o file] <name>    Re-encode a stored model

Options:
  -config <file>   Config file (default ./modelgen.yaml)
  -dir <dir>       Model directory for the dir store
  -format <f>      Store format: binary, yaml, toml
  -store <kind>    Store kind: dir, sqlite
  -db <file>       SQLite database path
  -only <a,b>      Models to generate
  -scale <n>       Extra scale factor
  -pivots          Add pivot marker meshes
  -debug           Debug logging
  -log <file>      Also log to a rotating file

Examples:
  modelgen generate
  modelgen -format yaml -dir out generate Pig Cow
  modelgen -store sqlite -db models.db list
  modelgen export -to toml -o ghast.toml Ghast`)
}
