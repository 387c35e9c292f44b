// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	policyRemove    = "remove"
	policyDecrement = "decrement"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"tree":            "info",
		logger.DefaultTag: "critical",
	}
)

// the traversal names accepted in the traverse list
var traversals = map[string]struct{}{
	"inorder":   {},
	"preorder":  {},
	"postorder": {},
	"level":     {},
}

// Configuration - the workload and logging setup read from a Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	Logging       logger.Configuration `gluamapper:"logging"`
	Limit         int                  `gluamapper:"limit"`
	Policy        string               `gluamapper:"policy"`
	Insert        []int                `gluamapper:"insert"`
	Delete        []int                `gluamapper:"delete"`
	Traverse      []string             `gluamapper:"traverse"`
	Print         bool                 `gluamapper:"print"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Policy:        policyRemove,
		Limit:         0,
		Traverse:      []string{"inorder"},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = filepath.Clean(dataDirectory) // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	options.Policy = strings.ToLower(options.Policy)
	if _, err := options.policy(); nil != err {
		return nil, err
	}

	if options.Limit < 0 {
		return nil, fault.ErrInvalidLimit
	}

	for i, name := range options.Traverse {
		name = strings.ToLower(name)
		if _, ok := traversals[name]; !ok {
			return nil, fmt.Errorf("traverse: %q is not supported", name)
		}
		options.Traverse[i] = name
	}

	return options, nil
}

// map the policy name to the tree setting
func (c *Configuration) policy() (avl.Policy, error) {
	switch c.Policy {
	case policyRemove, "":
		return avl.RemoveNode, nil
	case policyDecrement:
		return avl.DecrementCount, nil
	default:
		return avl.RemoveNode, fault.ErrInvalidPolicy
	}
}
