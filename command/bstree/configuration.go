// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "bstree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// keys of the sample tree, used if neither configuration nor
// command line supply any
var defaultKeys = []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}

// what "run" does when no operations are configured
var defaultOperations = []OperationType{
	{Op: opFind, Key: 23},
	{Op: opHeight},
	{Op: opDepth, Key: 67},
	{Op: opBalanced},
	{Op: opRebalance},
	{Op: opPrint},
}

// OperationType - one step of the "run" command
type OperationType struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   int    `gluamapper:"key" json:"key"`
	Order string `gluamapper:"order" json:"order"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Keys          []int                `gluamapper:"keys" json:"keys"`
	Operations    []OperationType      `gluamapper:"operations" json:"operations"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// a blank file name selects the defaults with logging below the
// temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		// slices stay nil so a configured list replaces the default
		// instead of being merged into it
		Keys:       nil,
		Operations: nil,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}

	dataDirectory := filepath.Join(os.TempDir(), "bstree")

	if "" == configurationFileName {
		if err := os.MkdirAll(dataDirectory, 0700); nil != err {
			return nil, err
		}
	} else {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	if nil == options.Keys {
		options.Keys = defaultKeys
	}
	if nil == options.Operations {
		options.Operations = defaultOperations
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		path, err := util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
		*d = path
	}

	// done
	return options, nil
}
