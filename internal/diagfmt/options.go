package diagfmt

// PrettyOpts configure human-readable diagnostic output.
type PrettyOpts struct {
	// Color включает ANSI-подсветку.
	Color bool
	// Context — сколько строк источника показывать вокруг ошибки.
	Context int
}
