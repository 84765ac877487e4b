// SPDX-License-Identifier: MIT
// Package: element
//
// registry.go - closed element-type set and its exhaustive name table.
//
// Contract:
//   - Element is closed: no ~ terms, so only the six listed types satisfy it.
//   - Every Kind below kindCount has exactly one name in kindNames.
//   - kindNames and kindSizes must have exactly kindCount entries; the two
//     zero-length array declarations below fail to compile otherwise.

package element

import (
	"errors"
	"fmt"
)

// ErrUnregistered is the panic payload of KindOf when a type slipped past the
// constraint without a registry entry (e.g. the switch below was not extended).
var ErrUnregistered = errors.New("element: type has no registry entry")

// Element is the closed set of array element types.
type Element interface {
	int32 | uint8 | uint32 | float32 | float64 | Pixel
}

// Numeric is the arithmetic subset of Element (everything except Pixel).
type Numeric interface {
	int32 | uint8 | uint32 | float32 | float64
}

// Kind tags a member of the Element set.
type Kind uint8

// Registered kinds. Keep in the same order as kindNames and kindSizes.
const (
	KindInt32 Kind = iota
	KindUint8
	KindUint32
	KindFloat32
	KindFloat64
	KindPixel

	kindCount // sentinel; not a valid Kind
)

// kindNames maps each Kind to its display name.
var kindNames = [...]string{
	KindInt32:   "int32",
	KindUint8:   "uint8",
	KindUint32:  "uint32",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindPixel:   "pixel",
}

// kindSizes maps each Kind to its size in bytes.
var kindSizes = [...]int{
	KindInt32:   4,
	KindUint8:   1,
	KindUint32:  4,
	KindFloat32: 4,
	KindFloat64: 8,
	KindPixel:   4,
}

// Build-time exhaustiveness: a negative array length is a compile error, so
// both directions must hold and the tables must match kindCount exactly.
var (
	_ [len(kindNames) - int(kindCount)]struct{}
	_ [int(kindCount) - len(kindNames)]struct{}
	_ [len(kindSizes) - int(kindCount)]struct{}
	_ [int(kindCount) - len(kindSizes)]struct{}
)

// Valid reports whether k is a registered kind.
func (k Kind) Valid() bool { return k < kindCount }

// String returns the registered name, or "Kind(n)" for an unregistered value.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Size returns the element size in bytes, or 0 for an unregistered value.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}

	return kindSizes[k]
}

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// KindOf returns the registry tag of T.
// The constraint makes any non-member a compile error; the default branch
// only fires if Element grows without this switch being extended.
func KindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case uint8:
		return KindUint8
	case uint32:
		return KindUint32
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case Pixel:
		return KindPixel
	default:
		panic(fmt.Errorf("KindOf[%T]: %w", zero, ErrUnregistered))
	}
}

// Name returns the registered display name of T.
func Name[T Element]() string {
	return KindOf[T]().String()
}
