// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree - build a binary search tree from a list of keys and apply
// operations to it
//
// the initial keys come from the configuration file or from the
// --keys option, each invocation starts from a freshly built tree:
//
//   bstree --keys=1,7,4,23,8,9 print
//   bstree --keys=1,2,3 insert 4 5 6 7
//   bstree --config=bstree.conf run
//   bstree --keys=5,3,8 traverse --order=level
//
// the "run" command executes the "operations" list of the
// configuration file in order
package main
