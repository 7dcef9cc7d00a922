package token

var keywords = map[string]Kind{
	"def":    Def,
	"else":   Else,
	"extern": Extern,
	"for":    For,
	"if":     If,
	"then":   Then,
}

// LookupKeyword возвращает тип и bool если lexeme — ключевое слово.
// Сравнение регистрозависимое и требует полного совпадения: "definition"
// остаётся идентификатором.
func LookupKeyword(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}
