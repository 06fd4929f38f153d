package domain

// Status of an inbox file in the conversion ledger.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

func (s Status) Final() bool {
	return s == StatusDone || s == StatusError
}
