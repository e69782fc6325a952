package ispl

import "fmt"

// TextRange is a half-open byte range into the scanned source,
// [Start, End).
type TextRange struct {
	Start, End int
}

// ParseError is the closed taxonomy of errors a full ISPL parser would
// report, built on top of this package's token stream. The tokenizer
// itself never returns a ParseError (its errors are error-kind Tokens);
// these parser-level variants are declared here as one closed
// vocabulary so a parser built on this tokenizer has named errors to
// return instead of ad hoc strings.
type ParseError struct {
	Kind       ParseErrorKind
	Range      TextRange
	Got        Kind
	Wanted     []Kind
	Name       string
	HasGot     bool
	HasWanted  bool
}

// ParseErrorKind discriminates the shape of a ParseError.
type ParseErrorKind int

const (
	Unexpected ParseErrorKind = iota
	UnexpectedTopLevel
	UnexpectedBlock
	UnexpectedWanted
	UnexpectedEnding
	UnexpectedEOF
	UnexpectedEOFWanted
	DuplicatedNames
	RecursionLimitExceeded
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case Unexpected:
		return fmt.Sprintf("unexpected token at %d..%d", e.Range.Start, e.Range.End)
	case UnexpectedTopLevel:
		return fmt.Sprintf("unexpected top-level construct at %d..%d", e.Range.Start, e.Range.End)
	case UnexpectedBlock:
		return fmt.Sprintf("unexpected block at %d..%d", e.Range.Start, e.Range.End)
	case UnexpectedWanted:
		return fmt.Sprintf("unexpected %s at %d..%d, wanted one of %v", e.Got, e.Range.Start, e.Range.End, e.Wanted)
	case UnexpectedEnding:
		return fmt.Sprintf("unexpected block ending at %d..%d", e.Range.Start, e.Range.End)
	case UnexpectedEOF:
		return "unexpected end of input"
	case UnexpectedEOFWanted:
		return fmt.Sprintf("unexpected end of input, wanted one of %v", e.Wanted)
	case DuplicatedNames:
		return fmt.Sprintf("duplicated name %q at %d..%d", e.Name, e.Range.Start, e.Range.End)
	case RecursionLimitExceeded:
		return "recursion limit exceeded"
	default:
		return "parse error"
	}
}
