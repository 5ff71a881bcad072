package dispatchers

import (
	"bytes"

	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/ui"
)

// decodeCall records one Decoder.Decode invocation.
type decodeCall struct {
	usage   string
	argv    []string
	version string
	into    any
}

// recordingDecoder remembers calls and optionally fills the record.
type recordingDecoder struct {
	calls []decodeCall
	fill  func(into any)
}

func (d *recordingDecoder) Decode(usage string, argv []string, version string, into any) {
	d.calls = append(d.calls, decodeCall{usage: usage, argv: argv, version: version, into: into})
	if d.fill != nil {
		d.fill(into)
	}
}

// invocation records what a fake route was invoked with.
type invocation struct {
	argv []string
}

// fakeRoute builds an entry whose usage starts with summary and whose
// invoker only records argv.
func fakeRoute(sel Selector, name, summary string) RouteEntry {
	entry, _ := fakeRouteRecording(sel, name, summary, nil)
	return entry
}

func fakeRouteRecording(sel Selector, name, summary string, err error) (RouteEntry, *[]invocation) {
	calls := &[]invocation{}
	usage := summary + "\n\nUsage:\n  tool " + string(sel) + " [<args>...]\n"
	return RouteEntry{
		Selector: sel,
		Spec:     CommandSpec{Name: name, Usage: usage},
		Invoke: func(dec Decoder, argv []string, sh domain.Shell) error {
			*calls = append(*calls, invocation{argv: argv})
			dec.Decode(usage, argv, "", &struct{}{})
			return err
		},
	}, calls
}

func newBufferShell() (*ui.Shell, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return ui.NewShellTo(&out, &errOut), &out, &errOut
}
