package domain

import "errors"

// ErrExternalTool indicates the package manager command is missing, exited
// without usable output, or emitted malformed structured data. Callers
// recover by continuing with an empty result set.
var ErrExternalTool = errors.New("external tool error")

// ErrMissingDocument indicates the target document does not exist. Callers
// recover by skipping the document update.
var ErrMissingDocument = errors.New("document not found")
