package lexer

import (
	"testing"

	"github.com/linalang/lina/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `x := 10
x: inteiro := 2
enquanto x < 3 faça
	x += 1.5
fim
imprima "olá" # comentário
para i até 2 faça fim
verdadeiro e falso ou nulo
x ** 2; x **= 2
(x) como texto
`

	tests := []struct {
		wantType   token.TokenType
		wantLexeme string
	}{
		{token.IDENT, "x"},
		{token.ASSIGN, ":="},
		{token.INT, "10"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "x"},
		{token.COLON, ":"},
		{token.TIPO_INTEIRO, "inteiro"},
		{token.ASSIGN, ":="},
		{token.INT, "2"},
		{token.NEWLINE, "\n"},

		{token.ENQUANTO, "enquanto"},
		{token.IDENT, "x"},
		{token.LT, "<"},
		{token.INT, "3"},
		{token.FACA, "faça"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "x"},
		{token.PLUS_ASSIGN, "+="},
		{token.FLOAT, "1.5"},
		{token.NEWLINE, "\n"},

		{token.FIM, "fim"},
		{token.NEWLINE, "\n"},

		{token.IMPRIMA, "imprima"},
		{token.STRING, "olá"},
		{token.NEWLINE, "\n"},

		{token.PARA, "para"},
		{token.IDENT, "i"},
		{token.ATE, "até"},
		{token.INT, "2"},
		{token.FACA, "faça"},
		{token.FIM, "fim"},
		{token.NEWLINE, "\n"},

		{token.VERDADEIRO, "verdadeiro"},
		{token.E, "e"},
		{token.FALSO, "falso"},
		{token.OU, "ou"},
		{token.NULO, "nulo"},
		{token.NEWLINE, "\n"},

		{token.IDENT, "x"},
		{token.POW, "**"},
		{token.INT, "2"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "x"},
		{token.POW_ASSIGN, "**="},
		{token.INT, "2"},
		{token.NEWLINE, "\n"},

		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.RPAREN, ")"},
		{token.COMO, "como"},
		{token.TIPO_TEXTO, "texto"},
		{token.NEWLINE, "\n"},

		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %q, want %q (lexeme %q)", i, tok.Type, tt.wantType, tok.Lexeme)
		}
		if tok.Lexeme != tt.wantLexeme {
			t.Fatalf("token %d: lexeme = %q, want %q", i, tok.Lexeme, tt.wantLexeme)
		}
	}
}

func TestOperatorDisambiguation(t *testing.T) {
	tests := []struct {
		input string
		want  []token.TokenType
	}{
		{"* *= ** **=", []token.TokenType{token.STAR, token.STAR_ASSIGN, token.POW, token.POW_ASSIGN}},
		{": :=", []token.TokenType{token.COLON, token.ASSIGN}},
		{"< <= > >=", []token.TokenType{token.LT, token.LE, token.GT, token.GE}},
		{"== !=", []token.TokenType{token.EQ, token.NE}},
		{"+ += - -= / /= % %=", []token.TokenType{
			token.PLUS, token.PLUS_ASSIGN, token.MINUS, token.MINUS_ASSIGN,
			token.SLASH, token.SLASH_ASSIGN, token.PERCENT, token.PERCENT_ASSIGN,
		}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for i, want := range tt.want {
			if tok := l.NextToken(); tok.Type != want {
				t.Errorf("%q token %d: got %q, want %q", tt.input, i, tok.Type, want)
			}
		}
	}
}

func TestAsciiKeywordFallbacks(t *testing.T) {
	l := New("ate faca")
	if tok := l.NextToken(); tok.Type != token.ATE {
		t.Errorf("ate = %q, want ATE", tok.Type)
	}
	if tok := l.NextToken(); tok.Type != token.FACA {
		t.Errorf("faca = %q, want FACA", tok.Type)
	}
}

func TestPositions(t *testing.T) {
	l := New("x := 1\n  y := 2")

	tests := []struct {
		line, column int
	}{
		{1, 1}, // x
		{1, 3}, // :=
		{1, 6}, // 1
		{1, 7}, // newline
		{2, 3}, // y
		{2, 5}, // :=
		{2, 8}, // 2
	}

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("token %d (%q): at %d:%d, want %d:%d", i, tok.Lexeme, tok.Line, tok.Column, tt.line, tt.column)
		}
	}
}

func TestCommentsRunToEndOfLine(t *testing.T) {
	l := New("# só comentário\nx # resto := ignorado\n")

	want := []token.TokenType{token.NEWLINE, token.IDENT, token.NEWLINE, token.EOF}
	for i, w := range want {
		if tok := l.NextToken(); tok.Type != w {
			t.Errorf("token %d: got %q, want %q", i, tok.Type, w)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("x @ 1")
	l.NextToken() // x
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %q, want ILLEGAL", tok.Type)
	}
	if tok.Lexeme != "@" {
		t.Errorf("lexeme = %q, want \"@\"", tok.Lexeme)
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	l := New("variável_1 := 2")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Lexeme != "variável_1" {
		t.Errorf("got %q %q, want IDENT \"variável_1\"", tok.Type, tok.Lexeme)
	}
}
