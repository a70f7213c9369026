package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := CompileFailed("main.c", -1)
	assert.Contains(t, err.Error(), "[compile]")
	assert.Contains(t, err.Error(), "compile_failed")
	assert.Contains(t, err.Error(), `"main.c"`)
	assert.Contains(t, err.Error(), "engine returned -1")
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	err := LinkFailed("m", -1, "library not found")
	assert.True(t, stderrors.Is(err, &Error{Phase: PhaseLink, Kind: KindLinkFailed}))
	assert.False(t, stderrors.Is(err, &Error{Phase: PhaseCompile, Kind: KindCompileFailed}))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := New(PhaseLink, KindLinkFailed).
		Name("a.out").
		Cause(cause).
		Build()
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "caused by: permission denied")
}

func TestBuilderDetailFormatting(t *testing.T) {
	err := New(PhaseRelocate, KindRelocationFailed).
		Detail("need %d bytes", 4096).
		Build()
	assert.Equal(t, "need 4096 bytes", err.Detail)
}

func TestRelocationFailedSteps(t *testing.T) {
	size := RelocationFailed("size", -1)
	copied := RelocationFailed("copy", -1)
	assert.Contains(t, size.Error(), "size step")
	assert.Contains(t, copied.Error(), "copy step")
	// Same category: the caller distinguishes steps by detail only.
	assert.True(t, stderrors.Is(size, copied))
}
