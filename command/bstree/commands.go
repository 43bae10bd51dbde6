// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/fault"
)

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return perform(m, OperationType{Op: opPrint})
}

func runHeight(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return perform(m, OperationType{Op: opHeight})
}

func runBalanced(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return perform(m, OperationType{Op: opBalanced})
}

func runRebalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return performAll(m, []OperationType{
		{Op: opRebalance},
		{Op: opPrint},
	})
}

func runTraverse(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return perform(m, OperationType{Op: opTraverse, Order: c.String("order")})
}

func runFind(c *cli.Context) error {
	return runWithKeys(c, opFind, false)
}

func runDepth(c *cli.Context) error {
	return runWithKeys(c, opDepth, false)
}

func runInsert(c *cli.Context) error {
	return runWithKeys(c, opInsert, true)
}

func runDelete(c *cli.Context) error {
	return runWithKeys(c, opDelete, true)
}

func runRun(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if m.verbose {
		m.reporter.Value("operations", len(m.config.Operations))
	}
	return performAll(m, m.config.Operations)
}

// apply an operation to each key argument, optionally print the
// resulting tree
func runWithKeys(c *cli.Context, op string, printTree bool) error {
	m := c.App.Metadata["config"].(*metadata)

	keys, err := parseKeys(c.Args())
	if nil != err {
		return err
	}
	if 0 == len(keys) {
		return fault.ErrInvalidKey
	}

	return performAll(m, keyOperations(op, keys, printTree))
}

func keyOperations(op string, keys []int, printTree bool) []OperationType {
	operations := make([]OperationType, 0, len(keys)+1)
	for _, k := range keys {
		operations = append(operations, OperationType{Op: op, Key: k})
	}
	if printTree {
		operations = append(operations, OperationType{Op: opPrint})
	}
	return operations
}
