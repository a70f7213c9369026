package tccruntime

// OutputKind selects what compilation produces. It must be chosen before
// the first compile call and is immutable afterward.
type OutputKind int

const (
	// OutputMemory keeps the result in memory for relocation (default).
	OutputMemory = OutputKind(outputMemory)

	// OutputExecutable emits an executable file.
	OutputExecutable = OutputKind(outputExe)

	// OutputDynamicLibrary emits a shared library.
	OutputDynamicLibrary = OutputKind(outputDLL)

	// OutputObject emits an object file.
	OutputObject = OutputKind(outputObj)

	// OutputPreprocess runs the preprocessor only.
	OutputPreprocess = OutputKind(outputPreprocess)
)

func (k OutputKind) String() string {
	switch k {
	case OutputMemory:
		return "memory"
	case OutputExecutable:
		return "executable"
	case OutputDynamicLibrary:
		return "dynamic-library"
	case OutputObject:
		return "object"
	case OutputPreprocess:
		return "preprocess"
	default:
		return "unknown"
	}
}
