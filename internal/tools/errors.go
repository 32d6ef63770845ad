package tools

// InvalidArgumentError marks a malformed or incomplete tool-call payload. It
// is surfaced to the model as a structured failure, never as a crashed turn.
type InvalidArgumentError struct {
	Tool   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Tool == "" {
		return "invalid tool arguments: " + e.Reason
	}
	return "invalid arguments for " + e.Tool + ": " + e.Reason
}
