package dispatchers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const topUsage = `
Tool for tests.

Usage:
  tool [options] help [<command>]
  tool [options] <command> [<args>...]
  tool [options]

Options:
  -h, --help     Show this screen
  -l, --list     List installed commands
  -v, --verbose  Use verbose output
`

type routerFixture struct {
	router    *Router
	decoder   *recordingDecoder
	buildRuns *[]invocation
	echoRuns  *[]invocation
}

func newRouterFixture(t *testing.T, buildErr error) routerFixture {
	t.Helper()
	build, buildRuns := fakeRouteRecording("build", "build", "Builds the project.", buildErr)
	test := fakeRoute("test", "test", "Runs tests.")
	echo, echoRuns := fakeRouteRecording("echo", "", "Echoes its arguments.", nil)

	dec := &recordingDecoder{}
	return routerFixture{
		router: &Router{
			Usage:   topUsage,
			Table:   MustTable(build, test, echo),
			Decoder: dec,
		},
		decoder:   dec,
		buildRuns: buildRuns,
		echoRuns:  echoRuns,
	}
}

func TestResolve_ListPrintsTable(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, out, errOut := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{List: true}, sh)

	require.NoError(t, err)
	require.Equal(t, Outcome{Action: ActionList, ExitCode: ExitEarly}, outcome)
	require.True(t, outcome.Terminate())
	require.Equal(t, FormatList(f.router.Table), out.String())
	require.Contains(t, out.String(), "build   | Builds the project.\n")
	require.Contains(t, out.String(), "test    | Runs tests.\n")
	require.Empty(t, errOut.String())
	require.Empty(t, f.decoder.calls)
}

func TestResolve_HelpForCommand(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, out, _ := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{Help: true, Selected: "build"}, sh)

	require.NoError(t, err)
	require.Equal(t, Outcome{Action: ActionCommandHelp}, outcome)
	require.False(t, outcome.Terminate())
	require.Equal(t, "Builds the project.\n\nUsage:\n  tool build [<args>...]\n", out.String())
	require.Empty(t, *f.buildRuns, "help must not execute the command")
	require.Empty(t, f.decoder.calls)
}

func TestResolve_DispatchNamedPrependsName(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, out, _ := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{Selected: "build", Args: []string{"--release"}}, sh)

	require.NoError(t, err)
	require.Equal(t, Outcome{Action: ActionDispatch}, outcome)
	require.Equal(t, []invocation{{argv: []string{"build", "--release"}}}, *f.buildRuns)
	require.Len(t, f.decoder.calls, 1)
	require.Equal(t, []string{"build", "--release"}, f.decoder.calls[0].argv)
	require.Contains(t, f.decoder.calls[0].usage, "tool build [<args>...]")
	require.Empty(t, out.String())
}

func TestResolve_DispatchAnonymousForwardsUnchanged(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, _, _ := newBufferShell()

	_, err := f.router.Resolve(TopLevel{Selected: "echo", Args: []string{"a", "--b"}}, sh)

	require.NoError(t, err)
	require.Equal(t, []invocation{{argv: []string{"a", "--b"}}}, *f.echoRuns)
}

func TestResolve_NothingSelectedPrintsUsageVerbatim(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, out, _ := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{}, sh)

	require.NoError(t, err)
	require.Equal(t, Outcome{Action: ActionUsage}, outcome)
	require.Equal(t, topUsage+"\n", out.String())
	require.Empty(t, f.decoder.calls)
}

func TestResolve_EmptyTableList(t *testing.T) {
	router := &Router{Usage: topUsage, Table: MustTable(), Decoder: &recordingDecoder{}}
	sh, out, _ := newBufferShell()

	outcome, err := router.Resolve(TopLevel{List: true}, sh)

	require.NoError(t, err)
	require.Equal(t, ExitEarly, outcome.ExitCode)
	require.Equal(t, "Command | Help\n----------\n\n"+ListHint+"\n", out.String())
}

func TestResolve_HelpWithoutCommand(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, out, _ := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{Help: true}, sh)

	require.NoError(t, err)
	require.Equal(t, Outcome{Action: ActionUsage, ExitCode: ExitEarly}, outcome)
	require.NotZero(t, outcome.ExitCode)
	require.Equal(t, "Tool for tests.\n\nUsage:", out.String()[:len("Tool for tests.\n\nUsage:")])
	require.NotContains(t, out.String(), "\n\n\n")
	require.Equal(t, byte('\n'), out.String()[len(out.String())-1])
}

func TestResolve_HelpBeatsList(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, out, _ := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{Help: true, List: true, Selected: "test"}, sh)

	require.NoError(t, err)
	require.Equal(t, ActionCommandHelp, outcome.Action)
	require.NotContains(t, out.String(), "Command | Help")
}

func TestResolve_ListBeatsDispatch(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, _, _ := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{List: true, Selected: "build"}, sh)

	require.NoError(t, err)
	require.Equal(t, ActionList, outcome.Action)
	require.Empty(t, *f.buildRuns)
}

func TestResolve_CommandErrorPropagatesUnchanged(t *testing.T) {
	cause := errors.New("disk full")
	buildErr := fmt.Errorf("write artifact: %w", cause)
	f := newRouterFixture(t, buildErr)
	sh, _, errOut := newBufferShell()

	outcome, err := f.router.Resolve(TopLevel{Selected: "build"}, sh)

	require.Same(t, buildErr, err)
	require.ErrorIs(t, err, cause)
	require.Equal(t, Outcome{Action: ActionDispatch}, outcome)
	require.Empty(t, errOut.String(), "the router does not report errors")
}

func TestResolve_UnvalidatedSelectorPanics(t *testing.T) {
	f := newRouterFixture(t, nil)
	sh, _, _ := newBufferShell()

	require.Panics(t, func() {
		_, _ = f.router.Resolve(TopLevel{Selected: "deploy"}, sh)
	})
	require.Panics(t, func() {
		_, _ = f.router.Resolve(TopLevel{Help: true, Selected: "deploy"}, sh)
	})
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "usage", ActionUsage.String())
	require.Equal(t, "command-help", ActionCommandHelp.String())
	require.Equal(t, "list", ActionList.String())
	require.Equal(t, "dispatch", ActionDispatch.String())
	require.Equal(t, "unknown", Action(42).String())
}
