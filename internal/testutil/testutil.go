// Package testutil holds helpers shared by tests that drive commands end to
// end.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/climux/internal/ui"
)

// Exit is the panic value raised by PanicExit.
type Exit int

// PanicExit replaces os.Exit in decoders under test. It never returns.
func PanicExit(code int) {
	panic(Exit(code))
}

// CatchExit runs fn and reports the code it passed to PanicExit. Other
// panics are re-raised.
func CatchExit(fn func()) (code int, exited bool) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(Exit)
			if !ok {
				panic(r)
			}
			code, exited = int(e), true
		}
	}()
	fn()
	return 0, false
}

// NewBufferShell returns a shell writing to two buffers, with the pager off.
func NewBufferShell() (*ui.Shell, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return ui.NewShellTo(&out, &errOut, ui.WithPagerDisabled()), &out, &errOut
}

// TempRC returns an rc file path inside a test temp dir. The file is
// created with content unless content is empty.
func TempRC(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "."+name+"rc")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return path
}
