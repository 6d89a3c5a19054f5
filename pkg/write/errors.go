package write

import "errors"

var (
	errNilEncoder       = errors.New("write: scalar encoder cannot be nil")
	errEmptyDelimiter   = errors.New("write: delimiter cannot be empty")
	errEqualDelimiters  = errors.New("write: field and row delimiters are equal")
	errQuoteInDelimiter = errors.New("write: quote character appears in a delimiter")
)
