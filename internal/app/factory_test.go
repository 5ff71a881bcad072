package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/climux/internal/log"
	"github.com/footprint-tools/climux/internal/paths"
)

func TestDefaultOptions_FromRCFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	rc := "enable_log=true\nlog_level=error\ncolor=never\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".calcrc"), []byte(rc), 0600))

	opts := DefaultOptions("calc")

	require.Equal(t, "calc", opts.Name)
	require.True(t, opts.LogEnabled)
	require.Equal(t, log.LevelError, opts.LogLevel)
	require.False(t, opts.StyleEnabled)
	require.Equal(t, "default", opts.StyleConfig["theme"])
}

func TestDefaultOptions_NoRCFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := DefaultOptions("calc")

	require.False(t, opts.LogEnabled)
	require.Equal(t, log.LevelDebug, opts.LogLevel)
}

func TestNew_RequiresName(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestNew_WiresDependencies(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out, errOut bytes.Buffer
	application, err := New(Options{Name: "calc", Stdout: &out, Stderr: &errOut, PagerDisabled: true})
	require.NoError(t, err)
	defer func() { require.NoError(t, Close(application)) }()

	require.Equal(t, "calc", application.Name)
	require.IsType(t, log.NopLogger{}, application.Logger)

	require.NoError(t, application.Config.Set("theme", "mono"))
	data, err := os.ReadFile(filepath.Join(home, ".calcrc"))
	require.NoError(t, err)
	require.Contains(t, string(data), "theme=mono")

	application.Shell.Pager("paged\n")
	_, _ = application.Shell.Println("hello")
	application.Shell.Warn("careful")
	require.Equal(t, "paged\nhello\n", out.String())
	require.Equal(t, "warning: careful\n", errOut.String())
}

func TestNew_LogEnabled(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	t.Cleanup(func() { log.SetDefault(nil) })

	application, err := New(Options{Name: "calc", LogEnabled: true, LogLevel: log.LevelInfo})
	require.NoError(t, err)
	require.Same(t, log.GetLogger(), application.Logger)

	application.Logger.Info("started")
	require.NoError(t, application.Config.Set("theme", "mono"))
	require.NoError(t, Close(application))

	data, err := os.ReadFile(paths.LogFilePath("calc"))
	require.NoError(t, err)
	require.Contains(t, string(data), "INFO: started")
	require.Contains(t, string(data), "INFO: config: wrote ")
}

func TestNewForTesting(t *testing.T) {
	var out, errOut bytes.Buffer
	rc := filepath.Join(t.TempDir(), ".calcrc")
	application := NewForTesting("calc", rc, &out, &errOut)

	value, ok := application.Config.Get("pager")
	require.True(t, ok)
	require.Equal(t, "less -FRSX", value)

	application.Shell.Pager("x")
	require.Equal(t, "x", out.String())
	require.False(t, application.Styler.Enabled())
	require.NoError(t, Close(application))
}

func TestClose_Nil(t *testing.T) {
	require.NoError(t, Close(nil))
}
