// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
)

func TestMeasure(t *testing.T) {
	keys := makeKeys(100)

	for _, o := range operations {
		r := measure(o, keys, 10*time.Millisecond)
		assert.Equal(t, o.name, r.name, "wrong name")
		assert.True(t, r.total > 0, "%s: no operations", o.name)
		assert.True(t, r.elapsed >= 10*time.Millisecond, "%s: stopped early", o.name)
		assert.True(t, r.rate() > 0, "%s: zero rate", o.name)
	}
}

func TestOperationsKeepTreeValid(t *testing.T) {
	keys := makeKeys(500)

	for _, o := range operations {
		tree := o.setup(keys)
		o.run(tree, keys)
		if nil == tree {
			continue
		}
		if !tree.Check() {
			t.Errorf("%s: inconsistent tree", o.name)
		}
	}

	tree := bst.New(keys)
	operations[3].run(tree, keys)
	assert.True(t, tree.IsEmpty(), "delete left keys behind")
}

func TestResultRate(t *testing.T) {
	assert.Equal(t, 0.0, result{total: 10}.rate(), "rate without time")
	assert.Equal(t, 20.0, result{total: 10, elapsed: 500 * time.Millisecond}.rate(), "wrong rate")
}
