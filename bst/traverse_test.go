// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

//                         8
//              4                    67
//         3         7          23        6345
//       1         5          9         324
func TestTraversalOrders(t *testing.T) {
	tree := bst.New(exampleKeys)

	orders := []struct {
		name     string
		actual   []int
		expected []int
	}{
		{"in", slices.Collect(tree.InOrder()), exampleUnique},
		{"pre", slices.Collect(tree.PreOrder()), []int{8, 4, 3, 1, 7, 5, 67, 23, 9, 6345, 324}},
		{"post", slices.Collect(tree.PostOrder()), []int{1, 3, 5, 7, 4, 9, 23, 324, 6345, 67, 8}},
		{"sub-tree in", slices.Collect(tree.Root().Left().InOrder()), []int{1, 3, 4, 5, 7}},
	}

	for _, o := range orders {
		if !slices.Equal(o.expected, o.actual) {
			t.Errorf("%s-order: %v  expected: %v", o.name, o.actual, o.expected)
		}
	}
}

func TestTraversalNil(t *testing.T) {
	var p *bst.Node[int]

	count := 0
	for range p.InOrder() {
		count += 1
	}
	for range p.PreOrder() {
		count += 1
	}
	for range p.PostOrder() {
		count += 1
	}
	if 0 != count {
		t.Fatalf("nil node yielded: %d keys", count)
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := bst.New(exampleKeys)

	taken := []int{}
	for k := range tree.InOrder() {
		if len(taken) == 3 {
			break
		}
		taken = append(taken, k)
	}
	assert.Equal(t, []int{1, 3, 4}, taken, "wrong prefix")

	// each call produces a fresh sequence
	assert.Equal(t, exampleUnique, slices.Collect(tree.InOrder()), "sequence not restarted")
}

func TestLevelOrder(t *testing.T) {
	tree := bst.New(exampleKeys)

	visited := []int{}
	err := tree.LevelOrder(func(n *bst.Node[int]) {
		visited = append(visited, n.Key())
	})
	assert.Nil(t, err, "level order error")
	assert.Equal(t, []int{8, 4, 67, 3, 7, 23, 6345, 1, 5, 9, 324}, visited, "wrong level order")
}

func TestLevelOrderNilCallback(t *testing.T) {
	tree := bst.New(exampleKeys)

	err := tree.LevelOrder(nil)
	assert.Equal(t, fault.ErrInvalidCallback, err, "wrong error")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
}

func TestDepth(t *testing.T) {
	tree := bst.New(exampleKeys)

	depths := map[int]int{8: 0, 4: 1, 67: 1, 3: 2, 7: 2, 23: 2, 6345: 2, 1: 3, 5: 3, 9: 3, 324: 3}
	for key, expected := range depths {
		node, err := tree.Find(key)
		if nil != err {
			t.Fatalf("find: %d  error: %s", key, err)
		}
		d, err := tree.Depth(node)
		if nil != err {
			t.Fatalf("depth: %d  error: %s", key, err)
		}
		if expected != d {
			t.Errorf("depth: %d  actual: %d  expected: %d", key, d, expected)
		}
	}
}

func TestDepthUnreachable(t *testing.T) {
	tree := bst.New(exampleKeys)
	other := bst.New(exampleKeys)

	// same key, different instance
	foreign, err := other.Find(23)
	assert.Nil(t, err, "find error")

	d, err := tree.Depth(foreign)
	assert.Equal(t, -1, d, "depth of foreign node")
	assert.Equal(t, fault.ErrNodeNotFound, err, "wrong error")

	d, err = tree.Depth(nil)
	assert.Equal(t, -1, d, "depth of nil node")
	assert.Equal(t, fault.ErrNodeNotFound, err, "wrong error")

	// a node unlinked by delete is no longer reachable
	node, _ := tree.Find(9)
	tree.Delete(9)
	_, err = tree.Depth(node)
	assert.True(t, fault.IsErrNotFound(err), "deleted node still reachable")
}

func TestNodesAtDepth(t *testing.T) {
	tree := bst.New(exampleKeys)

	levels := [][]int{
		{8},
		{4, 67},
		{3, 7, 23, 6345},
		{1, 5, 9, 324},
		{},
	}
	for depth, expected := range levels {
		actual := []int{}
		for _, n := range tree.NodesAtDepth(uint(depth)) {
			actual = append(actual, n.Key())
		}
		if !slices.Equal(expected, actual) {
			t.Errorf("depth: %d  nodes: %v  expected: %v", depth, actual, expected)
		}
	}
}

func TestPrint(t *testing.T) {
	tree := bst.New(exampleKeys)

	expected := `│       ┌── 6345
│       │   └── 324
│   ┌── 67
│   │   └── 23
│   │       └── 9
└── 8
    │   ┌── 7
    │   │   └── 5
    └── 4
        └── 3
            └── 1
`
	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)

	assert.Equal(t, expected, buffer.String(), "wrong output")
	assert.Equal(t, 4, depth, "wrong depth")
}

func TestPrintEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	depth := bst.New[int](nil).Print(buffer)

	assert.Equal(t, "", buffer.String(), "empty tree printed")
	assert.Equal(t, 0, depth, "wrong depth")
}

func TestBranches(t *testing.T) {
	tree := bst.New([]int{3, 1, 2, 4})

	s := tree.Branches().String()
	lines := strings.Split(strings.TrimSpace(s), "\n")

	// root 3, left 2 with left child 1, right leaf 4
	assert.Equal(t, "3", lines[0], "wrong root line")
	assert.Equal(t, 4, len(lines), "wrong line count: %q", s)
	assert.Contains(t, lines[1], "[L]", "left branch not first")
	assert.Contains(t, lines[1], "2", "wrong left branch")
	assert.Contains(t, lines[2], "[L]", "left leaf missing")
	assert.Contains(t, lines[2], "1", "wrong left leaf")
	assert.Contains(t, lines[3], "[R]", "right leaf missing")
	assert.Contains(t, lines[3], "4", "wrong right leaf")
}
