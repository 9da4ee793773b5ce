// Package token defines the lexical tokens of the Lina language.
package token

type TokenType string

// Token is a single lexical unit with its source position.
type Token struct {
	Type    TokenType
	Lexeme  string // exact source text
	Literal string // parsed literal value (numbers, strings)
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	FLOAT  TokenType = "FLOAT"
	STRING TokenType = "STRING"

	// Operators
	ASSIGN         TokenType = ":="
	PLUS           TokenType = "+"
	MINUS          TokenType = "-"
	STAR           TokenType = "*"
	SLASH          TokenType = "/"
	PERCENT        TokenType = "%"
	POW            TokenType = "**"
	PLUS_ASSIGN    TokenType = "+="
	MINUS_ASSIGN   TokenType = "-="
	STAR_ASSIGN    TokenType = "*="
	SLASH_ASSIGN   TokenType = "/="
	PERCENT_ASSIGN TokenType = "%="
	POW_ASSIGN     TokenType = "**="

	EQ TokenType = "=="
	NE TokenType = "!="
	LT TokenType = "<"
	LE TokenType = "<="
	GT TokenType = ">"
	GE TokenType = ">="

	// Delimiters
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	NEWLINE   TokenType = "NEWLINE"

	// Keywords
	SE         TokenType = "SE"         // se (if)
	ENQUANTO   TokenType = "ENQUANTO"   // enquanto (while)
	PARA       TokenType = "PARA"       // para (for)
	ATE        TokenType = "ATE"        // até (to, inclusive limit)
	FACA       TokenType = "FACA"       // faça (do, opens a block)
	FIM        TokenType = "FIM"        // fim (end of block)
	IMPRIMA    TokenType = "IMPRIMA"    // imprima (print)
	E          TokenType = "E"          // e (logical and)
	OU         TokenType = "OU"         // ou (logical or)
	COMO       TokenType = "COMO"       // como (cast)
	VERDADEIRO TokenType = "VERDADEIRO" // verdadeiro (true)
	FALSO      TokenType = "FALSO"      // falso (false)
	NULO       TokenType = "NULO"       // nulo (nil)

	// Type names (annotations and cast targets)
	TIPO_INTEIRO  TokenType = "INTEIRO"
	TIPO_REAL     TokenType = "REAL"
	TIPO_TEXTO    TokenType = "TEXTO"
	TIPO_BOOLEANO TokenType = "BOOLEANO"
)

var keywords = map[string]TokenType{
	"se":         SE,
	"enquanto":   ENQUANTO,
	"para":       PARA,
	"até":        ATE,
	"ate":        ATE,
	"faça":       FACA,
	"faca":       FACA,
	"fim":        FIM,
	"imprima":    IMPRIMA,
	"e":          E,
	"ou":         OU,
	"como":       COMO,
	"verdadeiro": VERDADEIRO,
	"falso":      FALSO,
	"nulo":       NULO,
	"inteiro":    TIPO_INTEIRO,
	"real":       TIPO_REAL,
	"texto":      TIPO_TEXTO,
	"booleano":   TIPO_BOOLEANO,
}

// LookupIdent returns the keyword type for ident, or IDENT if it is not
// a reserved word. Accented keywords accept their ASCII spellings too.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
