package entities

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds the keys of a free-form object that its struct does not declare.
type Extra map[string]json.RawMessage

// Clone returns a deep copy. A nil or empty Extra clones to nil.
func (e Extra) Clone() Extra {
	if len(e) == 0 {
		return nil
	}
	out := make(Extra, len(e))
	for k, v := range e {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

var declaredKeysCache sync.Map // reflect.Type -> map[string]struct{}

// declaredKeys lists the JSON names of the exported fields of struct type t.
func declaredKeys(t reflect.Type) map[string]struct{} {
	if cached, ok := declaredKeysCache.Load(t); ok {
		return cached.(map[string]struct{})
	}
	keys := make(map[string]struct{}, t.NumField())
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
		keys[name] = struct{}{}
	}
	declaredKeysCache.Store(t, keys)
	return keys
}

// decodeOpen fills known (a pointer to a struct) from data and returns the keys
// known does not declare.
func decodeOpen(data []byte, known any) (Extra, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	declared := declaredKeys(reflect.TypeOf(known).Elem())
	var extra Extra
	for k, v := range all {
		if _, ok := declared[k]; ok {
			continue
		}
		if extra == nil {
			extra = Extra{}
		}
		extra[k] = v
	}
	return extra, nil
}

// encodeOpen writes known with extra merged in. Declared fields win over extra
// keys of the same name.
func encodeOpen(known any, extra Extra) ([]byte, error) {
	if len(extra) == 0 {
		return json.Marshal(known)
	}
	out := make(Fields, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	if err := out.mergeStruct(known); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
