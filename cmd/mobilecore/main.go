// Command mobilecore builds the core as a C shared library:
//
//	go build -buildmode=c-shared -o libmobilecore.so ./cmd/mobilecore
//
// Every fallible export returns a status code from binding.Code (0 is
// success). mobilecore_calculator_new returns a handle; 0 means creation
// failed. Strings returned to the caller are allocated with malloc and
// must be released with mobilecore_string_free.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/mhlabs/mobilecore/binding"
	"github.com/mhlabs/mobilecore/internal/host"
)

func init() {
	_ = host.InstallDefault(os.Stderr)
}

//export mobilecore_say_hi
func mobilecore_say_hi() *C.char {
	return C.CString(binding.SayHi())
}

//export mobilecore_string_free
func mobilecore_string_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export mobilecore_calculator_new
func mobilecore_calculator_new(initial C.int32_t) C.uint64_t {
	h, _ := binding.NewCalculator(int32(initial))
	return C.uint64_t(h)
}

//export mobilecore_calculator_free
func mobilecore_calculator_free(h C.uint64_t) C.int32_t {
	return code(binding.ReleaseCalculator(binding.Handle(h)))
}

//export mobilecore_calculator_reset
func mobilecore_calculator_reset(h C.uint64_t, v C.int32_t) C.int32_t {
	return code(binding.Reset(binding.Handle(h), int32(v)))
}

//export mobilecore_calculator_add
func mobilecore_calculator_add(h C.uint64_t, x C.int32_t) C.int32_t {
	return code(binding.Add(binding.Handle(h), int32(x)))
}

//export mobilecore_calculator_subtract
func mobilecore_calculator_subtract(h C.uint64_t, x C.int32_t) C.int32_t {
	return code(binding.Subtract(binding.Handle(h), int32(x)))
}

//export mobilecore_calculator_multiply
func mobilecore_calculator_multiply(h C.uint64_t, x C.int32_t) C.int32_t {
	return code(binding.Multiply(binding.Handle(h), int32(x)))
}

//export mobilecore_calculator_divide
func mobilecore_calculator_divide(h C.uint64_t, x C.int32_t) C.int32_t {
	return code(binding.Divide(binding.Handle(h), int32(x)))
}

// mobilecore_calculator_get_value stores the register in *out. out is left
// untouched when the handle is invalid.
//
//export mobilecore_calculator_get_value
func mobilecore_calculator_get_value(h C.uint64_t, out *C.int32_t) C.int32_t {
	v, status := binding.Value(binding.Handle(h))
	if status.OK() && out != nil {
		*out = C.int32_t(v)
	}
	return code(status)
}

// mobilecore_jwt_decode returns a JSON envelope:
// {"token":{"header":...,"payload":...,"signature":...}} or
// {"error":{"code":N,"kind":...,"message":...}}.
//
//export mobilecore_jwt_decode
func mobilecore_jwt_decode(token *C.char) *C.char {
	return C.CString(string(binding.DecodeJWTEnvelope(C.GoString(token))))
}

func code(s binding.Status) C.int32_t {
	return C.int32_t(s.Code)
}

func main() {}
