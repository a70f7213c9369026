package tccruntime

import (
	"unsafe"

	"go.uber.org/zap"
)

// RelocatedImage is the execution-ready artifact of a session: the frozen
// engine handle plus the buffer holding relocated code and data. No
// further configuration or compilation is possible; the image only
// resolves symbol addresses.
type RelocatedImage struct {
	handle unsafe.Pointer
	buf    unsafe.Pointer
	size   int
	closed bool
}

// Symbol resolves the address of a named compiled symbol. A miss is a
// normal outcome, reported comma-ok style, not an error.
//
// The returned address is an unsafe capability: invoking it as a function
// or dereferencing it as data requires the caller to independently know
// the correct signature or type, and it is valid only while the image is
// alive. Never retain an address past Close.
func (img *RelocatedImage) Symbol(name string) (unsafe.Pointer, bool) {
	if img.closed {
		panic("tccruntime: Symbol on a closed RelocatedImage")
	}
	addr := engineGetSymbol(img.handle, name)
	if addr == nil {
		Logger().Debug("symbol not found", zap.String("name", name))
		return nil, false
	}
	return addr, true
}

// Size returns the byte size of the relocated code and data buffer.
func (img *RelocatedImage) Size() int {
	return img.size
}

// Close releases the engine handle, then frees the backing buffer; the
// buffer goes last because resolved addresses point into it, while the
// handle is not needed once relocation has happened. Close is idempotent.
// Every address obtained from Symbol is invalid afterward.
func (img *RelocatedImage) Close() {
	if img.closed {
		return
	}
	img.closed = true
	engineDelete(img.handle)
	img.handle = nil
	cFree(img.buf)
	img.buf = nil
	Logger().Debug("relocated image closed")
}
