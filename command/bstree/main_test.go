// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logFileName      = "test.log"
	logSizeOfFiles   = 50000
	logNumberOfFiles = 10
)

func TestMain(m *testing.M) {
	logDirectory, err := os.MkdirTemp("", "bstree-test-log")
	if nil != err {
		fmt.Fprintf(os.Stderr, "log directory error: %s\n", err)
		os.Exit(1)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      logFileName,
		Size:      logSizeOfFiles,
		Count:     logNumberOfFiles,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		fmt.Fprintf(os.Stderr, "logger initialise error: %s\n", err)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(logDirectory)
	os.Exit(rc)
}
