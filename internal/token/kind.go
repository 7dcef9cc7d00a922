package token

// Kind identifies the category of a lexed token.
//
// The numeric values are a compatibility contract: they are stable across
// releases and match the codes any out-of-process consumer sees, so new
// kinds may only be appended after Semicolon. Classification works on
// contiguous ranges (FirstKeyword/FirstOperator/FirstPunctuation).
type Kind uint8

const (
	// Whitespace is a maximal run of spaces, tabs, and line terminators.
	Whitespace Kind = iota
	// Comment is a '#' comment running to end of line (newline excluded).
	Comment
	// Ident is an identifier token.
	Ident
	// Number is a 64-bit floating point literal token.
	Number

	// Def represents the 'def' keyword.
	Def
	// Else represents the 'else' keyword.
	Else
	// Extern represents the 'extern' keyword.
	Extern
	// For represents the 'for' keyword.
	For
	// If represents the 'if' keyword.
	If
	// Then represents the 'then' keyword.
	Then

	// Assign represents the assignment operator.
	Assign // =
	// Eq represents the equality operator.
	Eq // ==
	// Ne represents the inequality operator.
	Ne // !=
	// Gt represents the greater-than operator.
	Gt // >
	// Ge represents the greater-or-equal operator.
	Ge // >=
	// Lt represents the less-than operator.
	Lt // <
	// Le represents the less-or-equal operator.
	Le // <=
	// Add represents the addition operator.
	Add // +
	// Sub represents the subtraction operator.
	Sub // -
	// Mul represents the multiplication operator.
	Mul // *
	// Div represents the division operator.
	Div // /
	// Mod represents the remainder operator.
	Mod // %
	// And represents the logical-and operator.
	And // &&
	// Or represents the logical-or operator.
	Or // ||
	// Not represents the logical-not operator.
	Not // !

	// OpenParen represents '('.
	OpenParen // (
	// CloseParen represents ')'.
	CloseParen // )
	// Semicolon represents ';'.
	Semicolon // ;
)

// Границы категорий в плоском пространстве кодов.
const (
	FirstKeyword     = Def
	FirstOperator    = Assign
	FirstPunctuation = OpenParen
	lastKind         = Semicolon
)

// IsValid reports whether k is an in-range kind code. Useful when a code
// crossed a process or serialization boundary.
func (k Kind) IsValid() bool {
	return k <= lastKind
}

// IsKeyword reports whether k is one of the keyword kinds.
func (k Kind) IsKeyword() bool {
	return k >= FirstKeyword && k < FirstOperator
}

// IsOperator reports whether k is one of the operator kinds.
func (k Kind) IsOperator() bool {
	return k >= FirstOperator && k < FirstPunctuation
}

// IsPunctuation reports whether k is one of the punctuation kinds.
func (k Kind) IsPunctuation() bool {
	return k >= FirstPunctuation && k <= lastKind
}

// IsTrivia reports whether k is a whitespace or comment token.
// Лексер их эмитит наравне с остальными; фильтрация — политика вызывающего.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// String returns the coarse category name of the kind.
func (k Kind) String() string {
	switch {
	case k == Whitespace:
		return "Whitespace"
	case k == Comment:
		return "Comment"
	case k == Ident:
		return "Ident"
	case k == Number:
		return "Number"
	case k.IsKeyword():
		return "Keyword"
	case k.IsOperator():
		return "Operator"
	case k.IsPunctuation():
		return "Punctuation"
	}
	return "Unknown"
}

// Lexeme returns the fixed spelling of keyword, operator, and punctuation
// kinds, and "" for kinds without one.
func (k Kind) Lexeme() string {
	switch k {
	case Def:
		return "def"
	case Else:
		return "else"
	case Extern:
		return "extern"
	case For:
		return "for"
	case If:
		return "if"
	case Then:
		return "then"
	case Assign:
		return "="
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case And:
		return "&&"
	case Or:
		return "||"
	case Not:
		return "!"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case Semicolon:
		return ";"
	default:
		return ""
	}
}
