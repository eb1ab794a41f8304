// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/trestle-systems/chainstore/blockdb"
	"github.com/trestle-systems/chainstore/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "tops", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "addresses", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		// print all available tags
		poolType := reflect.TypeOf(storage.Pools{})
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			fmt.Printf("       %s → %s (%s)\n",
				fieldInfo.Name,
				fieldInfo.Tag.Get("database"),
				fieldInfo.Tag.Get("prefix"))
		}
		return
	}

	if len(options["help"]) > 0 || 1 != len(options["directory"]) {
		exitwithstatus.Message("usage: %s [--help] [--version] [--list] [--tops] [--addresses] [--count=N] --directory=DIR [pool]", program)
	}

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	store, err := storage.Initialise(options["directory"][0], storage.Options{
		ReadOnly:       true,
		IndexAddresses: len(options["addresses"]) > 0,
	})
	if nil != err {
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer store.Finalise()

	if len(options["tops"]) > 0 {
		printTops(store)
		return
	}

	if 1 != len(arguments) {
		exitwithstatus.Message("%s: exactly one pool name required, use --list", program)
	}

	dumpPool(program, store, arguments[0], count)
}

func printTops(store *storage.Store) {
	blocks := blockdb.New(store)

	if top, ok := blocks.Top(true); ok {
		result, found := blocks.Get(top, true)
		if found {
			fmt.Printf("candidate top: %d  %v\n", top, result.Digest)
		}
	} else {
		fmt.Printf("candidate top: empty\n")
	}

	if top, ok := blocks.Top(false); ok {
		result, found := blocks.Get(top, false)
		if found {
			fmt.Printf("confirmed top: %d  %v\n", top, result.Digest)
		}
	} else {
		fmt.Printf("confirmed top: empty\n")
	}
}

func dumpPool(program string, store *storage.Store, name string, count int) {
	poolValue := reflect.ValueOf(store.Pool)
	field := poolValue.FieldByName(name)
	if !field.IsValid() || field.IsNil() {
		exitwithstatus.Message("%s: no such pool: %q, use --list", program, name)
	}

	pool := field.Interface().(*storage.PoolHandle)
	cursor := pool.NewFetchCursor()

	elements, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: fetch error: %s", program, err)
	}

	for i, e := range elements {
		fmt.Printf("%d: %x → %x\n", i, e.Key, e.Value)
	}
	fmt.Printf("total: %d element(s)\n", len(elements))
}
