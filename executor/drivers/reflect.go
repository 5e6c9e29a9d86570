// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/33cn/coinflip/types"
)

var typeOfError = reflect.TypeOf((*error)(nil)).Elem()
var typeOfMessage = reflect.TypeOf((*types.Message)(nil)).Elem()

// Is this an exported - upper case - name?
func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// ListMethod 列出 action 上所有以 prefix 开头的导出方法
func ListMethod(action interface{}, prefix string) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		if strings.HasPrefix(mname, prefix) {
			methods[mname] = method
		}
	}
	return methods
}

func callQueryFunc(this reflect.Value, f reflect.Method, in types.Message) (types.Message, error) {
	if f.Type.Out(0) != typeOfMessage || f.Type.Out(1) != typeOfError {
		return nil, types.ErrQueryNotSupport
	}
	rets := f.Func.Call([]reflect.Value{this, reflect.ValueOf(in)})
	if errv := rets[1].Interface(); errv != nil {
		return nil, errv.(error)
	}
	if rets[0].IsNil() {
		return nil, types.ErrEmpty
	}
	return rets[0].Interface().(types.Message), nil
}
