// Command mushtara runs a Mushtara table in the terminal, or simulates
// policy-only matches in bulk.
//
// Usage:
//
//	mushtara [play] [-env FILE] [-seed N]
//	mushtara simulate [-env FILE] [-seed N] [-matches N] [-workers N] [-mixed]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jason-s-yu/mushtara/internal/config"
	"github.com/sirupsen/logrus"
)

// Version information (set by build flags)
var Version = "dev"

func main() {
	cmd := "play"
	args := os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cmd {
	case "play":
		err = runPlay(ctx, args)
	case "simulate", "sim":
		err = runSimulate(ctx, args)
	case "version":
		fmt.Printf("mushtara %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want play, simulate or version)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		logrus.WithError(err).Error("mushtara failed")
		os.Exit(1)
	}
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	envFile string
	seed    uint64
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.envFile, "env", ".env", "dotenv file to load before reading MUSHTARA_* variables")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed (0 = MUSHTARA_SEED, then the clock)")
}

// load reads the configuration and sets up the standard logger.
func (c *commonFlags) load() (config.Config, error) {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if c.seed != 0 {
		cfg.Seed = c.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return cfg, nil
}
