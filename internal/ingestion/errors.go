package ingestion

// ExtractionError indicates HTML content could not be turned into text.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return "ingestion: " + e.Message + ": " + e.Cause.Error()
	}
	return "ingestion: " + e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
