// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/avltree/fault"
)

// setup command handler
//
// commands that cannot access the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "run", "check", "chk":
		return false

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help           (h)      - display this message\n\n")
		fmt.Printf("  version        (v)      - display version string\n\n")

		fmt.Printf("  run                     - insert and delete the configured keys, verify the tree\n")
		fmt.Printf("                            then display the selected traversals and drawing\n")
		fmt.Printf("                            same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  check          (chk)    - only build and verify the tree\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// workload command handler
//
// returns false if the tree could not be built or failed verification
func processWorkloadCommand(arguments []string, options *Configuration, show display) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	log := logger.New("tree")

	var err error
	switch command {
	case "check", "chk":
		err = checkWorkload(os.Stdout, options, log, show)
	default:
		err = runWorkload(os.Stdout, options, log, show)
	}

	if nil == err {
		return true
	}

	if fault.IsErrProcess(errors.Cause(err)) {
		fault.Criticalf("%s: tree verification failed: %s", command, err)
	} else {
		log.Errorf("%s: %s", command, err)
	}
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", command, err)
	return false
}
