// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "bstree"
	app.Usage = "build a binary search tree and operate on it"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " initial keys, overrides configuration `K1,K2,...`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to console as well",
		},
		cli.BoolFlag{
			Name:  "branches, b",
			Usage: " print as a branch list instead of a box drawing",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "print",
			Usage:  "print the tree",
			Action: runPrint,
		},
		{
			Name:      "find",
			Usage:     "find keys and show their sub-trees",
			ArgsUsage: "KEY...",
			Action:    runFind,
		},
		{
			Name:      "insert",
			Usage:     "insert keys then print the tree",
			ArgsUsage: "KEY...",
			Action:    runInsert,
		},
		{
			Name:      "delete",
			Usage:     "delete keys then print the tree",
			ArgsUsage: "KEY...",
			Action:    runDelete,
		},
		{
			Name:   "height",
			Usage:  "show the height of the tree",
			Action: runHeight,
		},
		{
			Name:      "depth",
			Usage:     "show the depth of the nodes holding keys",
			ArgsUsage: "KEY...",
			Action:    runDepth,
		},
		{
			Name:   "balanced",
			Usage:  "show whether the tree is height balanced",
			Action: runBalanced,
		},
		{
			Name:   "rebalance",
			Usage:  "rebalance then print the tree",
			Action: runRebalance,
		},
		{
			Name:  "traverse",
			Usage: "list keys in traversal order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: orderIn,
					Usage: " traversal `ORDER` [level|in|pre|post]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:   "run",
			Usage:  "perform the operations list from the configuration",
			Action: runRun,
		},
	}

	app.Before = func(c *cli.Context) error {

		// to suppress setup for help
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h":
			return nil
		}

		verbose := c.GlobalBool("verbose")

		config, err := getConfiguration(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			config.Logging.Console = true
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		log := logger.New("bstree")
		log.Infof("starting: %s version: %s", app.Name, version)

		keys := config.Keys
		if s := c.GlobalString("keys"); "" != s {
			keys, err = parseKeys(strings.Split(s, ","))
			if nil != err {
				return err
			}
		}

		tree := bst.New(keys)
		log.Infof("tree: count: %d  height: %d", tree.Count(), tree.Height())

		c.App.Metadata["config"] = &metadata{
			config:   config,
			tree:     tree,
			branches: c.GlobalBool("branches"),
			verbose:  verbose,
			log:      log,
			reporter: NewReporter(c.App.Writer),
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}
