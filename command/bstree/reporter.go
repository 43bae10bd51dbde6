// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/bst"
)

// Reporter - destination for the results of operations
type Reporter interface {
	Print(tree *bst.Tree[int], branches bool)
	Keys(title string, keys []int)
	Value(title string, value interface{})
}

type textReporter struct {
	w io.Writer
}

// NewReporter - reporter writing plain text lines
func NewReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Print(tree *bst.Tree[int], branches bool) {
	if branches {
		fmt.Fprint(r.w, tree.Branches().String())
		return
	}
	tree.Print(r.w)
}

func (r *textReporter) Keys(title string, keys []int) {
	fmt.Fprintf(r.w, "%s: %v\n", title, keys)
}

func (r *textReporter) Value(title string, value interface{}) {
	fmt.Fprintf(r.w, "%s: %v\n", title, value)
}
