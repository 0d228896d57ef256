package failable

import (
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
	"sort"
	"strings"
)

// Result holds either a success payload of type S or a failure payload of
// type F. The active variant is fixed at construction and never changes;
// every transform produces a new instance.
type Result[S, F any] struct {
	success   S
	failure   F
	isSuccess bool
}

func Success[S, F any](v S) Result[S, F] {
	return Result[S, F]{
		success:   v,
		isSuccess: true,
	}
}

func Failure[S, F any](f F) Result[S, F] {
	return Result[S, F]{
		failure:   f,
		isSuccess: false,
	}
}

func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

// Success returns the success payload. Calling it on a failure is a contract
// violation and panics with *Misuse.
func (r Result[S, F]) Success() S {
	if !r.isSuccess {
		panic(&Misuse{Accessor: "Success", OnSuccess: false})
	}
	return r.success
}

// Failure returns the failure payload. Calling it on a success is a contract
// violation and panics with *Misuse.
func (r Result[S, F]) Failure() F {
	if r.isSuccess {
		panic(&Misuse{Accessor: "Failure", OnSuccess: true})
	}
	return r.failure
}

// Then applies onSuccess and returns its result; a failure is returned
// unchanged and onSuccess is not invoked. For transforms that change the
// success type use the free function Bind.
func (r Result[S, F]) Then(onSuccess func(S) Result[S, F]) Result[S, F] {
	if !r.isSuccess {
		return r
	}
	return onSuccess(r.success)
}

// Equal reports whether both results carry the same tag and their active
// payloads compare equal. Tags are compared first; the inactive payload
// never takes part.
func (r Result[S, F]) Equal(other Result[S, F]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.success, other.success)
	}
	return reflect.DeepEqual(r.failure, other.failure)
}

// Hash derives a 64-bit hash from the tag and the active payload only, so
// results that are Equal hash identically. The payload rendering follows the
// same traversal Equal relies on: pointers are dereferenced and map entries
// are ordered before hashing.
func (r Result[S, F]) Hash() uint64 {
	h := fnv.New64a()
	if r.isSuccess {
		h.Write([]byte{1})
		hashValue(h, reflect.ValueOf(r.success), nil)
	} else {
		h.Write([]byte{0})
		hashValue(h, reflect.ValueOf(r.failure), nil)
	}
	return h.Sum64()
}

// hashValue writes a canonical rendering of v: pointers and interfaces are
// followed to their targets, struct fields and elements are walked in order,
// and map entries are sorted. Already-visited pointers and maps are cut off
// so cyclic payloads terminate.
func hashValue(w io.Writer, v reflect.Value, seen map[uintptr]bool) {
	if !v.IsValid() {
		io.WriteString(w, "<nil>")
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		if seen == nil {
			seen = make(map[uintptr]bool)
		}
		if seen[v.Pointer()] {
			io.WriteString(w, "<cycle>")
			return
		}
		seen[v.Pointer()] = true
		hashValue(w, v.Elem(), seen)
	case reflect.Interface:
		if v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		hashValue(w, v.Elem(), seen)
	case reflect.Struct:
		io.WriteString(w, "{")
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				io.WriteString(w, " ")
			}
			hashValue(w, v.Field(i), seen)
		}
		io.WriteString(w, "}")
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		io.WriteString(w, "[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				io.WriteString(w, " ")
			}
			hashValue(w, v.Index(i), seen)
		}
		io.WriteString(w, "]")
	case reflect.Map:
		if v.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		if seen == nil {
			seen = make(map[uintptr]bool)
		}
		if seen[v.Pointer()] {
			io.WriteString(w, "<cycle>")
			return
		}
		seen[v.Pointer()] = true

		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			var b strings.Builder
			hashValue(&b, iter.Key(), seen)
			b.WriteString(":")
			hashValue(&b, iter.Value(), seen)
			entries = append(entries, b.String())
		}
		sort.Strings(entries)

		io.WriteString(w, "map[")
		for i, e := range entries {
			if i > 0 {
				io.WriteString(w, " ")
			}
			io.WriteString(w, e)
		}
		io.WriteString(w, "]")
	case reflect.String:
		io.WriteString(w, v.String())
	case reflect.Bool:
		fmt.Fprintf(w, "%v", v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fmt.Fprintf(w, "%d", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		fmt.Fprintf(w, "%d", v.Uint())
	case reflect.Float32, reflect.Float64:
		fmt.Fprintf(w, "%v", v.Float())
	case reflect.Complex64, reflect.Complex128:
		fmt.Fprintf(w, "%v", v.Complex())
	default:
		// Chan, Func, UnsafePointer: identity is all DeepEqual sees too.
		fmt.Fprintf(w, "%#x", v.Pointer())
	}
}

func (r Result[S, F]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("success(%v)", r.success)
	}
	return fmt.Sprintf("failure(%v)", r.failure)
}
