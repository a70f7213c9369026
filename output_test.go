package tccruntime

import "testing"

func TestOutputKindString(t *testing.T) {
	cases := []struct {
		kind OutputKind
		want string
	}{
		{OutputMemory, "memory"},
		{OutputExecutable, "executable"},
		{OutputDynamicLibrary, "dynamic-library"},
		{OutputObject, "object"},
		{OutputPreprocess, "preprocess"},
		{OutputKind(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("OutputKind(%d).String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
