// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
)

func TestTextReporter(t *testing.T) {
	buffer := &bytes.Buffer{}
	r := NewReporter(buffer)

	r.Keys("in-order", []int{1, 2, 3})
	r.Value("height", 1)
	r.Value("balanced", true)

	expected := "in-order: [1 2 3]\nheight: 1\nbalanced: true\n"
	assert.Equal(t, expected, buffer.String(), "wrong output")
}

func TestTextReporterPrint(t *testing.T) {
	tree := bst.New([]int{1, 2, 3})

	buffer := &bytes.Buffer{}
	NewReporter(buffer).Print(tree, false)
	assert.Equal(t, "│   ┌── 3\n└── 2\n    └── 1\n", buffer.String(), "wrong box drawing")

	buffer.Reset()
	NewReporter(buffer).Print(tree, true)
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, 3, len(lines), "wrong branch output: %q", buffer.String())
	assert.Equal(t, "2", lines[0], "wrong root")
}
