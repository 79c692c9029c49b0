package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into readable names, for labelling rings that
// came without one. Names are generated lazily and memoized for the life of
// the process, and no two keys share a name.

var memo = make(map[interface{}]string)
var taken = make(map[string]bool)

// Attempts at a fresh petname before falling back to a numbered one.
const maxNameAttempts = 16

var generateName = func() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}

func Name(key interface{}) string {
	if isNil(key) {
		return "Ø"
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := generateName()
	for attempt := 1; taken[r] && attempt < maxNameAttempts; attempt++ {
		r = generateName()
	}
	if taken[r] {
		// Numbered names are unique, since taken only grows.
		r = fmt.Sprintf("%s%d", r, len(taken))
	}
	taken[r] = true
	memo[key] = r
	return r
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
