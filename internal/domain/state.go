package domain

// State is the position of one uploaded file in the processing lifecycle:
// uploaded -> parsed -> [cleaned] -> [projected] -> [exported] -> downloaded.
type State string

const (
	StateUploaded   State = "uploaded"
	StateParsed     State = "parsed"
	StateCleaned    State = "cleaned"
	StateProjected  State = "projected"
	StateExported   State = "exported"
	StateDownloaded State = "downloaded"

	StateUnsupported  State = "unsupported"
	StateParseFailure State = "parse_failure"
	StateFailed       State = "failed"
)

func (s State) Failed() bool {
	return s == StateUnsupported || s == StateParseFailure || s == StateFailed
}
