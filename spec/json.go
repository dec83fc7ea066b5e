// Copyright 2024 The go-chainspec Authors
// This file is part of the go-chainspec library.
//
// The go-chainspec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainspec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainspec library. If not, see <http://www.gnu.org/licenses/>.

package spec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrDuplicateField is returned when an object names the same member twice.
var ErrDuplicateField = errors.New("duplicate field")

// decodeStrict unmarshals input into v, rejecting object members that have no
// field with exactly the same name and members that appear more than once.
// Custom unmarshalers reached from v receive raw bytes and must call
// decodeStrict themselves.
func decodeStrict(input []byte, v interface{}) error {
	keys, err := objectKeys(input)
	if err != nil {
		return err
	}
	if fields := jsonFields(reflect.TypeOf(v)); fields != nil {
		for _, key := range keys {
			if !fields[key] {
				return fmt.Errorf("json: unknown field %q", key)
			}
		}
	}
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// objectKeys returns the member names of a JSON object in document order. It
// fails on repeated names. Input that is not an object yields no keys.
func objectKeys(input []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, nil
	}
	var (
		keys []string
		seen = make(map[string]bool)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := tok.(string)
		if seen[key] {
			return nil, fmt.Errorf("%w `%s`", ErrDuplicateField, key)
		}
		seen[key] = true
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// jsonFields returns the exact member names accepted by a struct type, or nil
// if t does not point to a struct.
func jsonFields(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	fields := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		fields[name] = true
	}
	return fields
}
