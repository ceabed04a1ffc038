// Package config resolves the CLI surface (§6) into a single Options
// value: flags parsed with the standard flag package, prefixed with
// whatever SKIM_DEFAULT_OPTIONS contributes, the way app.LoadOrCreateConfig
// once prefixed a document's settings from a rule file — here the "file"
// is an environment variable, split into argv with github.com/google/shlex
// instead of read from disk.
package config

// Options holds every resolved CLI/env setting. Zero values are treated as
// "not set" by ApplyOverlay, mirroring config.Config.Apply's non-zero-wins
// convention in the teacher.
type Options struct {
	// Matching
	Exact     bool
	Regex     bool
	Algo      string
	Case      string
	Interactive bool
	Tiebreak  string
	Nth       string
	WithNth   string
	Delimiter string

	// Query
	Query    string
	CmdQuery string
	Cmd      string

	// Input
	Read0  bool
	ANSI   bool
	Tac    bool
	NoSort bool

	// Output
	Print0     bool
	PrintQuery bool
	PrintCmd   bool
	Select1    bool
	Exit0      bool
	Filter     string
	FilterSet  bool

	// UI
	Height         string
	MinHeight      string
	Margin         string
	Reverse        bool
	Border         bool
	InlineInfo     bool
	Header         string
	HeaderLines    int
	Prompt         string
	CmdPrompt      string
	TabStop        int
	NoHscroll      bool
	HscrollOff     int
	NoBold         bool
	Color          string
	Multi          bool
	NoMulti        bool
	NoClearIfEmpty bool

	// Selection
	PreSelectN     int
	PreSelectItems string
	PreSelectPat   string
	PreSelectFile  string

	// Bindings
	Bind    []string
	Expect  string

	// Preview
	Preview       string
	PreviewWindow string
	ReplToken     string

	// History
	History         string
	HistorySize     int
	CmdHistory      string
	CmdHistorySize  int

	// Extras
	SkipToPattern string
	Sync          bool

	// Ambient
	LogFile string
}

// DefaultOptions returns the option values used when neither
// SKIM_DEFAULT_OPTIONS nor the command line set a given field.
func DefaultOptions() Options {
	return Options{
		Case:       "smart",
		Algo:       "skim_v2",
		Prompt:     "> ",
		CmdPrompt:  "c> ",
		TabStop:    8,
		HscrollOff: 0,
		Color:      "dark",
		ReplToken:  "{}",
		HistorySize:    1000,
		CmdHistorySize: 1000,
	}
}

// ApplyOverlay copies every non-zero-valued field of overlay onto o,
// following config.Config.Apply's shape in the teacher: the overlay wins
// field by field, not wholesale. Bind is cumulative (appended, not
// replaced) since --bind may be given multiple times and by both the env
// default string and the real command line.
func (o *Options) ApplyOverlay(overlay Options) {
	if overlay.Exact {
		o.Exact = true
	}
	if overlay.Regex {
		o.Regex = true
	}
	if overlay.Algo != "" {
		o.Algo = overlay.Algo
	}
	if overlay.Case != "" {
		o.Case = overlay.Case
	}
	if overlay.Interactive {
		o.Interactive = true
	}
	if overlay.Tiebreak != "" {
		o.Tiebreak = overlay.Tiebreak
	}
	if overlay.Nth != "" {
		o.Nth = overlay.Nth
	}
	if overlay.WithNth != "" {
		o.WithNth = overlay.WithNth
	}
	if overlay.Delimiter != "" {
		o.Delimiter = overlay.Delimiter
	}
	if overlay.Query != "" {
		o.Query = overlay.Query
	}
	if overlay.CmdQuery != "" {
		o.CmdQuery = overlay.CmdQuery
	}
	if overlay.Cmd != "" {
		o.Cmd = overlay.Cmd
	}
	if overlay.Read0 {
		o.Read0 = true
	}
	if overlay.ANSI {
		o.ANSI = true
	}
	if overlay.Tac {
		o.Tac = true
	}
	if overlay.NoSort {
		o.NoSort = true
	}
	if overlay.Print0 {
		o.Print0 = true
	}
	if overlay.PrintQuery {
		o.PrintQuery = true
	}
	if overlay.PrintCmd {
		o.PrintCmd = true
	}
	if overlay.Select1 {
		o.Select1 = true
	}
	if overlay.Exit0 {
		o.Exit0 = true
	}
	if overlay.FilterSet {
		o.Filter = overlay.Filter
		o.FilterSet = true
	}
	if overlay.Height != "" {
		o.Height = overlay.Height
	}
	if overlay.MinHeight != "" {
		o.MinHeight = overlay.MinHeight
	}
	if overlay.Margin != "" {
		o.Margin = overlay.Margin
	}
	if overlay.Reverse {
		o.Reverse = true
	}
	if overlay.Border {
		o.Border = true
	}
	if overlay.InlineInfo {
		o.InlineInfo = true
	}
	if overlay.Header != "" {
		o.Header = overlay.Header
	}
	if overlay.HeaderLines > 0 {
		o.HeaderLines = overlay.HeaderLines
	}
	if overlay.Prompt != "" {
		o.Prompt = overlay.Prompt
	}
	if overlay.CmdPrompt != "" {
		o.CmdPrompt = overlay.CmdPrompt
	}
	if overlay.TabStop > 0 {
		o.TabStop = overlay.TabStop
	}
	if overlay.NoHscroll {
		o.NoHscroll = true
	}
	if overlay.HscrollOff > 0 {
		o.HscrollOff = overlay.HscrollOff
	}
	if overlay.NoBold {
		o.NoBold = true
	}
	if overlay.Color != "" {
		o.Color = overlay.Color
	}
	if overlay.Multi {
		o.Multi = true
	}
	if overlay.NoMulti {
		o.NoMulti = true
	}
	if overlay.NoClearIfEmpty {
		o.NoClearIfEmpty = true
	}
	if overlay.PreSelectN > 0 {
		o.PreSelectN = overlay.PreSelectN
	}
	if overlay.PreSelectItems != "" {
		o.PreSelectItems = overlay.PreSelectItems
	}
	if overlay.PreSelectPat != "" {
		o.PreSelectPat = overlay.PreSelectPat
	}
	if overlay.PreSelectFile != "" {
		o.PreSelectFile = overlay.PreSelectFile
	}
	if len(overlay.Bind) > 0 {
		o.Bind = append(o.Bind, overlay.Bind...)
	}
	if overlay.Expect != "" {
		o.Expect = overlay.Expect
	}
	if overlay.Preview != "" {
		o.Preview = overlay.Preview
	}
	if overlay.PreviewWindow != "" {
		o.PreviewWindow = overlay.PreviewWindow
	}
	if overlay.ReplToken != "" {
		o.ReplToken = overlay.ReplToken
	}
	if overlay.History != "" {
		o.History = overlay.History
	}
	if overlay.HistorySize > 0 {
		o.HistorySize = overlay.HistorySize
	}
	if overlay.CmdHistory != "" {
		o.CmdHistory = overlay.CmdHistory
	}
	if overlay.CmdHistorySize > 0 {
		o.CmdHistorySize = overlay.CmdHistorySize
	}
	if overlay.SkipToPattern != "" {
		o.SkipToPattern = overlay.SkipToPattern
	}
	if overlay.Sync {
		o.Sync = true
	}
	if overlay.LogFile != "" {
		o.LogFile = overlay.LogFile
	}

	// Bools only ever turn on here, so once any overlay source sets
	// --no-multi/--no-bold/--no-sort/--no-hscroll, a later overlay cannot
	// clear it; --multi and --no-multi are reconciled by ResolveMultiSelect.
}

// ResolveMultiSelect applies --no-multi's override of --multi: when both
// are set, --no-multi wins regardless of which was given last.
func ResolveMultiSelect(o Options) bool {
	if o.NoMulti {
		return false
	}
	return o.Multi
}
