/*
File : impyc/lexer/lexer_utils.go
Character-class helpers, grounded on the teacher's lexer_utils.go
(isDigitASCII, isAlpha, isWhitespace) but restricted to ASCII per spec.md
§4.1's "leading letter (A-Z or a-z)" rule -- no Unicode letter classes.
*/
package lexer

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
