package dispatchers

// Decoder turns a usage text plus tokens into a filled options record.
//
// into is a pointer to a struct whose exported fields are tagged
// `docopt:"<arg>"`, `docopt:"--flag"` and so on. When version is non-empty
// a --version flag prints it. On malformed input the decoder reports the
// problem and terminates the process; Decode never returns in that case.
type Decoder interface {
	Decode(usage string, argv []string, version string, into any)
}
