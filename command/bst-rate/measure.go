// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/bstree/bst"
)

type operation struct {
	name string
	// set up a tree for the run
	setup func(keys []int) *bst.Tree[int]
	// apply the operation to every key, returns the operations performed
	run func(tree *bst.Tree[int], keys []int) int
}

type result struct {
	name    string
	total   int
	elapsed time.Duration
}

func (r result) rate() float64 {
	if 0 == r.elapsed {
		return 0
	}
	return float64(r.total) / r.elapsed.Seconds()
}

var operations = []operation{
	{
		name:  "build",
		setup: func([]int) *bst.Tree[int] { return nil },
		run: func(_ *bst.Tree[int], keys []int) int {
			bst.New(keys)
			return len(keys)
		},
	},
	{
		name:  "insert",
		setup: func([]int) *bst.Tree[int] { return bst.New[int](nil) },
		run: func(tree *bst.Tree[int], keys []int) int {
			for _, k := range keys {
				tree.Insert(k)
			}
			return len(keys)
		},
	},
	{
		name:  "find",
		setup: bst.New[int],
		run: func(tree *bst.Tree[int], keys []int) int {
			for _, k := range keys {
				_, _ = tree.Find(k)
			}
			return len(keys)
		},
	},
	{
		name:  "delete",
		setup: bst.New[int],
		run: func(tree *bst.Tree[int], keys []int) int {
			for _, k := range keys {
				tree.Delete(k)
			}
			return len(keys)
		},
	},
	{
		name:  "rebalance",
		setup: bst.New[int],
		run: func(tree *bst.Tree[int], _ []int) int {
			tree.Rebalance()
			return 1
		},
	},
}

// repeat an operation until the sample time has passed, each round
// starts from a fresh tree and setup time is not counted
func measure(o operation, keys []int, sampleTime time.Duration) result {
	r := result{
		name: o.name,
	}
	for r.elapsed < sampleTime {
		tree := o.setup(keys)
		start := time.Now()
		r.total += o.run(tree, keys)
		r.elapsed += time.Since(start)
	}
	return r
}
