// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// operation names
const (
	opBalanced  = "balanced"
	opDelete    = "delete"
	opDepth     = "depth"
	opFind      = "find"
	opHeight    = "height"
	opInsert    = "insert"
	opPrint     = "print"
	opRebalance = "rebalance"
	opTraverse  = "traverse"
)

// traversal orders
const (
	orderLevel = "level"
	orderIn    = "in"
	orderPre   = "pre"
	orderPost  = "post"
)

type metadata struct {
	config   *Configuration
	tree     *bst.Tree[int]
	branches bool
	verbose  bool
	log      *logger.L
	reporter Reporter
}

// apply a single operation to the tree
func perform(m *metadata, op OperationType) error {

	tree := m.tree
	log := m.log

	switch strings.ToLower(op.Op) {

	case opInsert:
		before := tree.Count()
		tree.Insert(op.Key)
		if before == tree.Count() {
			log.Debugf("insert: %d  already present", op.Key)
		} else {
			log.Infof("insert: %d  count: %d  height: %d", op.Key, tree.Count(), tree.Height())
		}

	case opDelete:
		before := tree.Count()
		tree.Delete(op.Key)
		if before == tree.Count() {
			log.Debugf("delete: %d  not present", op.Key)
		} else {
			log.Infof("delete: %d  count: %d  height: %d", op.Key, tree.Count(), tree.Height())
		}

	case opFind:
		node, err := tree.Find(op.Key)
		if nil != err {
			log.Warnf("find: %d  error: %s", op.Key, err)
			return err
		}
		log.Debugf("find: %d  found", op.Key)
		m.reporter.Keys(fmt.Sprintf("find %d", op.Key), slices.Collect(node.PreOrder()))

	case opDepth:
		node, err := tree.Find(op.Key)
		if nil != err {
			log.Warnf("depth: %d  error: %s", op.Key, err)
			return err
		}
		d, err := tree.Depth(node)
		if nil != err {
			log.Errorf("depth: %d  error: %s", op.Key, err)
			return err
		}
		log.Debugf("depth: %d  is: %d", op.Key, d)
		m.reporter.Value(fmt.Sprintf("depth %d", op.Key), d)

	case opHeight:
		log.Debugf("height: %d", tree.Height())
		m.reporter.Value(opHeight, tree.Height())

	case opBalanced:
		balanced := tree.IsBalanced()
		log.Debugf("balanced: %t", balanced)
		m.reporter.Value(opBalanced, balanced)

	case opRebalance:
		before := tree.Height()
		tree.Rebalance()
		log.Infof("rebalance: height: %d -> %d", before, tree.Height())

	case opPrint:
		m.reporter.Print(tree, m.branches)

	case opTraverse:
		keys, err := traverse(tree, op.Order)
		if nil != err {
			log.Errorf("traverse: %q  error: %s", op.Order, err)
			return err
		}
		m.reporter.Keys(strings.ToLower(op.Order)+"-order", keys)

	default:
		log.Errorf("operation: %q  error: %s", op.Op, fault.ErrUnknownOperation)
		return fault.ErrUnknownOperation
	}

	return nil
}

// apply a list of operations, missing keys are reported and do not
// stop the list
func performAll(m *metadata, operations []OperationType) error {
	for i, op := range operations {
		err := perform(m, op)
		if fault.IsErrNotFound(err) {
			m.reporter.Value(fmt.Sprintf("%s %d", op.Op, op.Key), err)
			continue
		}
		if nil != err {
			return fmt.Errorf("operation[%d]: %w", i, err)
		}
	}
	return nil
}

// keys of the tree in the selected order
func traverse(tree *bst.Tree[int], order string) ([]int, error) {
	switch strings.ToLower(order) {
	case orderLevel:
		keys := make([]int, 0, tree.Count())
		err := tree.LevelOrder(func(n *bst.Node[int]) {
			keys = append(keys, n.Key())
		})
		return keys, err
	case orderIn:
		return slices.Collect(tree.InOrder()), nil
	case orderPre:
		return slices.Collect(tree.PreOrder()), nil
	case orderPost:
		return slices.Collect(tree.PostOrder()), nil
	default:
		return nil, fault.ErrUnknownTraversal
	}
}

// convert decimal strings to keys
func parseKeys(arguments []string) ([]int, error) {
	keys := make([]int, 0, len(arguments))
	for _, s := range arguments {
		s = strings.TrimSpace(s)
		if "" == s {
			continue
		}
		k, err := strconv.Atoi(s)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
