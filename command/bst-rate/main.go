// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/util"
)

const (
	defaultCount = 10000
	defaultTime  = 5 * time.Second
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "time", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "log", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--count=N] [--time=N{h|m|s}] [--log=DIR] [--verbose] [--quiet]", program)
	}

	if len(arguments) != 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	count := defaultCount
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	sampleTime := defaultTime
	if len(options["time"]) > 0 {
		sampleTime, err = time.ParseDuration(options["time"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert time error: %s", program, err)
		}
		if sampleTime.Seconds() < 1 {
			exitwithstatus.Message("%s: invalid time: %s", program, sampleTime)
		}
	}

	logDirectory := filepath.Join(os.TempDir(), "bst-rate")
	if len(options["log"]) > 0 {
		logDirectory = options["log"][0]
	}
	workingDirectory, err := os.Getwd()
	if nil != err {
		exitwithstatus.Message("%s: working directory error: %s", program, err)
	}
	logDirectory, err = util.EnsureDirectory(workingDirectory, logDirectory)
	if nil != err {
		exitwithstatus.Message("%s: log directory error: %s", program, err)
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	err = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "bst-rate.log",
		Size:      1024 * 1024,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	})
	if nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("rate")
	log.Infof("count: %d  time: %s", count, sampleTime)

	keys := makeKeys(count)

	if !quiet {
		fmt.Printf("keys: %d  sampling each operation for: %7.1f seconds\n", count, sampleTime.Seconds())
	}

	for _, o := range operations {
		r := measure(o, keys, sampleTime)
		log.Infof("%s: %d operations in: %s", r.name, r.total, r.elapsed)
		fmt.Printf("%-10s total: %10d  rate: %12.1f operations/second\n", r.name, r.total, r.rate())
	}

	if !quiet {
		fmt.Printf("finished\n")
	}
}

// random keys, duplicates are possible and are counted as operations
func makeKeys(count int) []int {
	b := make([]byte, 8*count)
	if _, err := rand.Read(b); nil != err {
		exitwithstatus.Message("random keys error: %s", err)
	}
	keys := make([]int, count)
	for i := range keys {
		keys[i] = int(binary.BigEndian.Uint64(b[8*i:]) >> 2)
	}
	return keys
}
