// SPDX-License-Identifier: MIT

// Package element defines the closed set of element types an array may hold
// and the registry that names them.
//
// Permitted element types:
//
//	int32    signed 32-bit integer
//	uint8    unsigned byte
//	uint32   unsigned 32-bit integer
//	float32  single-precision float
//	float64  double-precision float
//	Pixel    packed 4-channel colour (R, G, B, A)
//
// The Element constraint lists these types without the ~ operator, so a
// defined type such as `type Celsius float64` is rejected at compile time.
// Every member has a Kind and a registered name:
//
//	element.Name[float64]()      // "float64"
//	element.KindOf[Pixel]()      // KindPixel
//	element.Name[string]()       // does not compile
//
// The Kind table and the name table are kept in lock-step by array-length
// assertions in registry.go (build-time) and by the registry tests (test-time).
package element
