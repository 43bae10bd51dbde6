// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/bstree/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// config must be a pointer to a struct; fields not present in the
// returned table keep their existing values, so defaults can be set
// before calling
func ParseConfigurationFile(fileName string, config interface{}) error {
	if !isStructPointer(config) {
		return fault.ErrInvalidStructPointer
	}

	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ErrMissingConfigFile
		}
		return err
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrInvalidConfiguration
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: gluamapper.Id,
			TagName:  "gluamapper",
		},
	}
	return mapper.Map(table, config)
}

func isStructPointer(config interface{}) bool {
	if nil == config {
		return false
	}
	v := reflect.ValueOf(config)
	return reflect.Ptr == v.Kind() && !v.IsNil() && reflect.Struct == v.Elem().Kind()
}
