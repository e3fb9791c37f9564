package domain

import "strings"

type Pair struct {
	Base  string
	Quote string
}

// NewPair builds a case-normalized pair.
func NewPair(base, quote string) Pair {
	return Pair{Base: NormalizeSymbol(base), Quote: NormalizeSymbol(quote)}
}

func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (p Pair) Reversed() Pair {
	return Pair{
		Base:  p.Quote,
		Quote: p.Base,
	}
}

func (p Pair) String() string { return p.Base + "/" + p.Quote }
