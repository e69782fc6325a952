// Package ispl tokenizes ISPL (Interpreted Systems Programming Language)
// source text, the input format MCMAS-style multi-agent system
// descriptions are written in. Only the lexer lives here: a full
// parser/AST for ISPL is a separate, larger surface that this module
// does not provide.
package ispl

import "fmt"

// Kind identifies what a Token is: a keyword, punctuation, literal, or
// one of the lexer's own error tokens. The error kinds let a caller
// recover from malformed input one token at a time instead of aborting
// the whole scan.
type Kind uint16

const (
	Whitespace Kind = iota
	Comment

	// lexical errors
	ErrUnexpectedKeyword
	ErrExpectedName
	ErrInvalidCloseBlock
	ErrUnexpectedTopLevel
	ErrUnexpectedBlock
	ErrUndefinedName
	ErrDuplicatedName
	Error

	Varname

	// punctuation
	LParen
	RParen
	Colon
	Semicolon
	Comma
	Dot
	DoubleDot
	And
	Or
	If
	Neg
	Le
	Lt
	Ge
	Gt
	Eq
	Neq
	Plus
	Minus
	Times
	Devide
	ImpliesR
	ImpliesL
	ImpliesBi
	BitAnd
	BitOr
	BitNot
	BitXor

	True
	False
	BooleanLiteral

	// modal operators
	AG
	EG
	AX
	EX
	X
	F
	G
	AF
	EF
	A
	E
	U
	K
	GK
	GCK
	O
	DK

	Groupname
	StartGroupExpr
	EndGroupExpr
	GroupOpenCurly
	GroupCloseCurly
	GroupsAssign

	EnumLiteral
	EnumOpenCurly
	EnumCloseCurly

	IntLiteral

	SetOpenCurly
	SetCloseCurly

	Environment
	Other
	Action
	None
	RedStates
	GreenStates
	Actions
	Protocol
	Evolution
	Obsvars
	Lobsvars
	Vars

	BeginInnerBlock
	EndInnerBlock
	EndInnerBlockName
	InnerBlockAssign

	SemanticsSA
	SemanticsMA

	BeginAgent
	AgentName

	BeginEvaluation
	BeginInitStates
	BeginGroups
	BeginFairness
	BeginFormulae

	EndOuterBlock
	EndOuterBlockName
)

var kindNames = map[Kind]string{
	Whitespace: "WHITESPACE", Comment: "COMMENT",
	ErrUnexpectedKeyword: "ERR_UNEXPECTED_KEYWORD", ErrExpectedName: "ERR_EXPECTED_NAME",
	ErrInvalidCloseBlock: "ERR_INVALID_CLOSE_BLOCK", ErrUnexpectedTopLevel: "ERR_UNEXPECTED_TOPLEVEL",
	ErrUnexpectedBlock: "ERR_UNEXPECTED_BLOCK", ErrUndefinedName: "ERR_UNDEFINED_NAME",
	ErrDuplicatedName: "ERR_DUPLICATED_NAME", Error: "ERROR",
	Varname: "VARNAME",
	LParen:  "L_PAREN", RParen: "R_PAREN", Colon: "COLON", Semicolon: "SEMICOLON", Comma: "COMMA",
	Dot: "DOT", DoubleDot: "DOUBLEDOT", And: "AND", Or: "OR", If: "IF", Neg: "NEG",
	Le: "LE", Lt: "LT", Ge: "GE", Gt: "GT", Eq: "EQ", Neq: "NEQ",
	Plus: "PLUS", Minus: "MINUS", Times: "TIMES", Devide: "DEVIDE",
	ImpliesR: "IMPLIES_R", ImpliesL: "IMPLIES_L", ImpliesBi: "IMPLIES_BI",
	BitAnd: "BITAND", BitOr: "BITOR", BitNot: "BITNOT", BitXor: "BITXOR",
	True: "TRUE", False: "FALSE", BooleanLiteral: "BOOLEAN_LITERAL",
	AG: "AG", EG: "EG", AX: "AX", EX: "EX", X: "X", F: "F", G: "G", AF: "AF", EF: "EF",
	A: "A", E: "E", U: "U", K: "K", GK: "GK", GCK: "GCK", O: "O", DK: "DK",
	Groupname: "GROUPNAME", StartGroupExpr: "START_GROUPEXPR", EndGroupExpr: "END_GROUPEXPR",
	GroupOpenCurly: "GROUP_OPENCURLY", GroupCloseCurly: "GROUP_CLOSECURLY", GroupsAssign: "GROUPS_ASSIGN",
	EnumLiteral: "ENUM_LITERAL", EnumOpenCurly: "ENUM_OPENCURLY", EnumCloseCurly: "ENUM_CLOSECURLY",
	IntLiteral: "INT_LITERAL", SetOpenCurly: "SET_OPENCURLY", SetCloseCurly: "SET_CLOSECURLY",
	Environment: "ENVIRONMENT", Other: "OTHER", Action: "ACTION", None: "NONE",
	RedStates: "REDSTATES", GreenStates: "GREENSTATES", Actions: "ACTIONS",
	Protocol: "PROTOCOL", Evolution: "EVOLUTION", Obsvars: "OBSVARS", Lobsvars: "LOBSVARS", Vars: "VARS",
	BeginInnerBlock: "BEGIN_INNER_BLOCK", EndInnerBlock: "END_INNER_BLOCK",
	EndInnerBlockName: "END_INNER_BLOCK_NAME", InnerBlockAssign: "INNER_BLOCK_ASSIGN",
	SemanticsSA: "SEMANTICS_SA", SemanticsMA: "SEMANTICS_MA",
	BeginAgent: "BEGIN_AGENT", AgentName: "AGENT_NAME",
	BeginEvaluation: "BEGIN_EVALUATION", BeginInitStates: "BEGIN_INIT_STATES",
	BeginGroups: "BEGIN_GROUPS", BeginFairness: "BEGIN_FAIRNESS", BeginFormulae: "BEGIN_FORMULAE",
	EndOuterBlock: "END_OUTER_BLOCK", EndOuterBlockName: "END_OUTER_BLOCK_NAME",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsErr reports whether k is one of the lexer's error kinds.
func (k Kind) IsErr() bool {
	switch k {
	case ErrUnexpectedKeyword, ErrExpectedName, ErrInvalidCloseBlock, ErrUnexpectedTopLevel,
		ErrUnexpectedBlock, ErrUndefinedName, ErrDuplicatedName, Error:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether k should usually be skipped by a consumer
// that only cares about meaningful tokens: whitespace, comments, and
// error tokens are all trivia in this sense.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment || k.IsErr()
}
