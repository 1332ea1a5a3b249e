package frontend

import "fmt"

func (i item) String() string {
	switch i.typ {
	case itemError:
		return i.val
	case itemEOF:
		return "EOF"
	case itemWhitespace:
		return "WHITESPACE"
	}

	// limit to 10 characters if it's too long
	if len(i.val) > 10 {
		return fmt.Sprintf("%.10q...", i.val)
	}

	return fmt.Sprintf("%q", i.val)
}

func (it itemType) String() string {
	switch it {
	case itemError:
		return "Error"
	case itemEOF:
		return "EOF"
	case itemWhitespace:
		return "WHITESPACE"

	// literals
	case itemNumber:
		return "Number"
	case itemVariable:
		return "Variable"

	// symbols
	case itemLeftParen:
		return "LeftParen"
	case itemRightParen:
		return "RightParen"

	// operators
	case itemPlus:
		return "Plus"
	case itemMinus:
		return "Minus"
	case itemAsterisk:
		return "Asterisk"
	case itemSlash:
		return "Slash"
	}

	return ""
}
