package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/celer-network/cosmos-sidecar/codec"
	"github.com/celer-network/cosmos-sidecar/logger"
	"github.com/celer-network/cosmos-sidecar/store/tendermint"
	"github.com/celer-network/cosmos-sidecar/txmanager"
	"github.com/celer-network/cosmos-sidecar/types"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	flagDBDir     = "db-dir"
	flagDBName    = "db-name"
	flagDBBackend = "db-backend"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sidecar-inspect"
	app.Usage = "read transaction records from a cosmos sidecar store"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: flagDBDir, Usage: "directory holding the store"},
		cli.StringFlag{Name: flagDBName, Value: "sidecar", Usage: "database name inside the directory"},
		cli.StringFlag{Name: flagDBBackend, Value: "goleveldb", Usage: "tm-db backend"},
		cli.StringFlag{Name: flagLogLevel, Value: "warn", Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: flagLogFormat, Value: "json", Usage: "json or console"},
	}
	app.Commands = []cli.Command{
		{
			Name:      "search",
			Usage:     "print the resolved result of a transaction as tx_search returns it",
			ArgsUsage: "<hash>",
			Action:    searchAction,
		},
		{
			Name:      "origin",
			Usage:     "print the transaction as submitted by the client",
			ArgsUsage: "<hash>",
			Action:    originAction,
		},
		{
			Name:   "head",
			Usage:  "print the last finalized block whose transactions were resolved",
			Action: headAction,
		},
	}
	return app
}

func openStore(c *cli.Context) (*tendermint.TMStore, *types.Config, error) {
	dir := c.GlobalString(flagDBDir)
	if dir == "" {
		return nil, nil, errors.Errorf("--%s is required", flagDBDir)
	}
	zl, err := newLogger(c)
	if err != nil {
		return nil, nil, err
	}
	config := types.DefaultConfig(zl)
	config.DBDir = dir
	config.DBName = c.GlobalString(flagDBName)
	config.DBBackend = c.GlobalString(flagDBBackend)

	store, err := tendermint.OpenTMStore(config.DBName, config.DBBackend, config.DBDir)
	if err != nil {
		return nil, nil, err
	}
	zl.Debugw("Opened store", "dir", config.DBDir, "name", config.DBName, "backend", config.DBBackend)
	return store, config, nil
}

func newLogger(c *cli.Context) (types.Logger, error) {
	level := c.GlobalString(flagLogLevel)
	var (
		l   types.Logger
		err error
	)
	switch format := c.GlobalString(flagLogFormat); format {
	case "json", "":
		l, err = logger.New(level)
	case "console":
		w := c.App.ErrWriter
		if w == nil {
			w = os.Stderr
		}
		l, err = logger.NewConsole(w, level)
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	return l, nil
}

func hashArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.Errorf("expected exactly one hash argument, got %d", c.NArg())
	}
	return c.Args().First(), nil
}

func searchAction(c *cli.Context) (err error) {
	hash, err := hashArg(c)
	if err != nil {
		return err
	}
	store, config, err := openStore(c)
	if err != nil {
		return err
	}
	defer func() { err = closeStore(store, err) }()

	result, err := txmanager.NewTxSearcher(store, config).SearchByHash(context.Background(), hash)
	if err != nil {
		return err
	}
	return printJSON(c, result)
}

func originAction(c *cli.Context) (err error) {
	hash, err := hashArg(c)
	if err != nil {
		return err
	}
	key, err := codec.NormalizeHash(hash)
	if err != nil {
		return err
	}
	store, _, err := openStore(c)
	if err != nil {
		return err
	}
	defer func() { err = closeStore(store, err) }()

	origin, err := store.GetOrigin(key)
	if err != nil {
		return errors.Wrapf(err, "origin %s", key)
	}
	return printJSON(c, origin)
}

func headAction(c *cli.Context) (err error) {
	store, _, err := openStore(c)
	if err != nil {
		return err
	}
	defer func() { err = closeStore(store, err) }()

	head, err := store.LastHead()
	if err != nil {
		return err
	}
	if head == nil {
		return errors.New("no block has been processed yet")
	}
	return printJSON(c, struct {
		Hash       string `json:"hash"`
		Number     uint64 `json:"number"`
		ParentHash string `json:"parent_hash"`
	}{head.Hash, head.Number, head.ParentHash})
}

func closeStore(store *tendermint.TMStore, err error) error {
	if cerr := store.Close(); cerr != nil && err == nil {
		return errors.Wrap(cerr, "could not close store")
	}
	return err
}

func printJSON(c *cli.Context, v interface{}) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
