// ddblocal provisions and seeds a local DynamoDB instance from
// CloudFormation-style table definitions.
//
// # Commands
//
//	ddblocal migrate   Create every configured table (idempotent)
//	ddblocal seed      Write seed data into tables
//	ddblocal start     Prepare a running local instance (migrate/seed per config)
//	ddblocal stop      Counterpart of start; lifecycle is managed externally
//
// Configuration is read from ddblocal.yaml (searched upwards from the
// working directory), overridden by DDBLOCAL_* environment variables and
// command-line flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/acksell/ddblocal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	// Remove the subcommand from args so flag parsing works
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)

	switch cmd {
	case "migrate", "seed", "start", "stop":
	case "help", "-h", "--help":
		printUsage()
		return
	case "version", "-v", "--version":
		fmt.Printf("ddblocal version %s\n", version)
		return
	default:
		fmt.Fprintf(os.Stderr, "ddblocal: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err := run(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "ddblocal %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func run(cmd string) error {
	var (
		configPath = flag.String("config", "", "path to ddblocal.yaml (default: search upwards)")
		stage      = flag.String("stage", "", "active deployment stage")
		host       = flag.String("host", "", "local instance host")
		port       = flag.Int("port", 0, "local instance port")
		region     = flag.String("region", "", "AWS region (online mode)")
		online     = flag.Bool("online", false, "target the real service instead of a local instance")
		migrate    = flag.Bool("migrate", false, "provision tables during start")
		seedSel    = flag.String("seed", "", `seed selector: "true", "false" or a category list`)
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var file config.File
	path := *configPath
	if path == "" {
		path = config.FindFile()
	}
	if path != "" {
		var err error
		if file, err = config.LoadFile(path); err != nil {
			return err
		}
	}

	cfg, err := config.Resolve(file, config.RunOptions{
		Stage:   *stage,
		Host:    *host,
		Port:    *port,
		Region:  *region,
		Online:  *online,
		Migrate: *migrate,
		Seed:    *seedSel,
	})
	if err != nil {
		return err
	}

	a := newApp(cfg, logger)
	ctx := context.Background()

	switch cmd {
	case "migrate":
		return a.migrate(ctx)
	case "seed":
		return a.seed(ctx)
	case "start":
		return a.start(ctx)
	case "stop":
		return a.stop(ctx)
	}
	return nil
}

func printUsage() {
	fmt.Println(`ddblocal - provision and seed a local DynamoDB instance

Usage:
  ddblocal <command> [flags]

Commands:
  migrate   Create every configured table (idempotent)
  seed      Write seed data into tables
  start     Prepare a running local instance
  stop      Counterpart of start
  version   Print version
  help      Show this help

Flags:
  -config path    Path to ddblocal.yaml (default: search upwards)
  -stage name     Active deployment stage
  -host name      Local instance host (default localhost)
  -port n         Local instance port (default 8000)
  -region name    AWS region, required with -online
  -online         Target the real service instead of a local instance
  -migrate        Provision tables during start
  -seed value     "true", "false" or a comma-separated category list`)
}
