// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a binary search tree over numeric keys that is
// built balanced and can be rebalanced on demand
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree is created from a list of keys, which are sorted and have
// duplicates removed, then the midpoint of each sub-list becomes the
// root of the corresponding sub-tree giving a tree of minimal height.
//
// Insert and Delete do not rotate nodes, so a run of ordered inserts
// will degrade the tree towards a linked list.  IsBalanced detects
// this and Rebalance rebuilds the tree from its in-order keys.
//
// Nodes do not have parent pointers, so depth is found by searching
// down from the root for a particular node instance.
package bst
