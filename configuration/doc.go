// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed with the base Lua libraries available, so it
// may compute key lists, read other files or use os.getenv to pick up
// environment supplied items.  The file must return a table which is
// then mapped onto the fields of a Go structure using "gluamapper"
// struct tags.
package configuration
