package tccruntime

/*
#cgo LDFLAGS: -ltcc
#cgo linux LDFLAGS: -ldl -lpthread

#include <stdint.h>
#include <stdlib.h>
#include <libtcc.h>

extern void tccDiagTrampoline(void *opaque, char *msg);

// The opaque value travels as uintptr_t so no Go pointer ever lands in
// C memory; the trampoline hands it back to the handle registry. The cast
// bridges the exported signature to libtcc's const-qualified one.
static void tccrt_set_error_func(TCCState *s, uintptr_t opaque) {
	tcc_set_error_func(s, (void *)opaque,
		(void (*)(void *, const char *))tccDiagTrampoline);
}

static void tccrt_clear_error_func(TCCState *s) {
	tcc_set_error_func(s, NULL, NULL);
}
*/
import "C"

import "unsafe"

// Engine output type selectors, as defined by libtcc.
const (
	outputMemory     = int(C.TCC_OUTPUT_MEMORY)
	outputExe        = int(C.TCC_OUTPUT_EXE)
	outputDLL        = int(C.TCC_OUTPUT_DLL)
	outputObj        = int(C.TCC_OUTPUT_OBJ)
	outputPreprocess = int(C.TCC_OUTPUT_PREPROCESS)
)

// The functions below are the entire engine surface the binding touches.
// Handles are opaque *TCCState pointers; every call is synchronous and
// blocks until the engine returns.

func engineNew() unsafe.Pointer {
	return unsafe.Pointer(C.tcc_new())
}

func engineDelete(h unsafe.Pointer) {
	C.tcc_delete((*C.TCCState)(h))
}

func engineSetLibPath(h unsafe.Pointer, path string) {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	C.tcc_set_lib_path((*C.TCCState)(h), cs)
}

func engineSetOptions(h unsafe.Pointer, opts string) {
	cs := C.CString(opts)
	defer C.free(unsafe.Pointer(cs))
	C.tcc_set_options((*C.TCCState)(h), cs)
}

func engineAddIncludePath(h unsafe.Pointer, path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.tcc_add_include_path((*C.TCCState)(h), cs))
}

func engineAddSysIncludePath(h unsafe.Pointer, path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.tcc_add_sysinclude_path((*C.TCCState)(h), cs))
}

func engineAddLibraryPath(h unsafe.Pointer, path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.tcc_add_library_path((*C.TCCState)(h), cs))
}

func engineDefineSymbol(h unsafe.Pointer, name, value string) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	if value == "" {
		C.tcc_define_symbol((*C.TCCState)(h), cn, nil)
		return
	}
	cv := C.CString(value)
	defer C.free(unsafe.Pointer(cv))
	C.tcc_define_symbol((*C.TCCState)(h), cn, cv)
}

func engineUndefineSymbol(h unsafe.Pointer, name string) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	C.tcc_undefine_symbol((*C.TCCState)(h), cn)
}

func engineSetOutputType(h unsafe.Pointer, kind int) int {
	return int(C.tcc_set_output_type((*C.TCCState)(h), C.int(kind)))
}

func engineCompileString(h unsafe.Pointer, src string) int {
	cs := C.CString(src)
	defer C.free(unsafe.Pointer(cs))
	return int(C.tcc_compile_string((*C.TCCState)(h), cs))
}

func engineAddFile(h unsafe.Pointer, path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.tcc_add_file((*C.TCCState)(h), cs))
}

func engineAddLibrary(h unsafe.Pointer, name string) int {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	return int(C.tcc_add_library((*C.TCCState)(h), cn))
}

func engineAddSymbol(h unsafe.Pointer, name string, addr unsafe.Pointer) int {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	return int(C.tcc_add_symbol((*C.TCCState)(h), cn, addr))
}

func engineOutputFile(h unsafe.Pointer, path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.tcc_output_file((*C.TCCState)(h), cs))
}

func engineRun(h unsafe.Pointer, args []string) int {
	if len(args) == 0 {
		return int(C.tcc_run((*C.TCCState)(h), 0, nil))
	}
	argv := make([]*C.char, len(args))
	for i, a := range args {
		argv[i] = C.CString(a)
	}
	defer func() {
		for _, p := range argv {
			C.free(unsafe.Pointer(p))
		}
	}()
	return int(C.tcc_run((*C.TCCState)(h), C.int(len(args)), &argv[0]))
}

// engineRelocateSize is step one of the two-call relocation protocol:
// a null target makes the engine report the buffer size it needs.
func engineRelocateSize(h unsafe.Pointer) int {
	return int(C.tcc_relocate((*C.TCCState)(h), nil))
}

// engineRelocateInto is step two: copy code and data into buf and patch
// addresses. buf must hold exactly the size reported by step one.
func engineRelocateInto(h unsafe.Pointer, buf unsafe.Pointer) int {
	return int(C.tcc_relocate((*C.TCCState)(h), buf))
}

func engineGetSymbol(h unsafe.Pointer, name string) unsafe.Pointer {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	return C.tcc_get_symbol((*C.TCCState)(h), cn)
}

func engineSetDiag(h unsafe.Pointer, opaque uintptr) {
	C.tccrt_set_error_func((*C.TCCState)(h), C.uintptr_t(opaque))
}

func engineClearDiag(h unsafe.Pointer) {
	C.tccrt_clear_error_func((*C.TCCState)(h))
}

// cAlloc allocates size bytes on the C heap. The relocation buffer lives
// there so the Go collector can never move or reclaim it while native
// code addresses point into it.
func cAlloc(size int) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

func cFree(p unsafe.Pointer) {
	C.free(p)
}
