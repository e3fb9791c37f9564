package chat

import (
	"regexp"
	"strconv"
	"strings"

	"fxalerts/internal/domain"
)

var (
	convertPattern = regexp.MustCompile(
		`(?i)^\s*(?P<amount>[\d_.,]+)\s*(?P<base>[A-Za-z]{2,6})\s*(?:to|в|->)\s*(?P<quote>[A-Za-z]{2,6})\s*$`)
	alertPattern = regexp.MustCompile(
		`(?i)^\s*(?:уведоми|alert|notify)\s*,?\s*(?:если|когда|when|if)\s+(?P<base>[A-Za-z]{2,6})\s*(?P<op>[<>]=?|==)\s*(?P<value>[\d_.,]+)\s*(?:to|в|->)\s*(?P<quote>[A-Za-z]{2,6})\s*$`)
)

// ConvertQuery is "100 USD to EUR".
type ConvertQuery struct {
	Amount float64
	Base   string
	Quote  string
}

// AlertQuery is "notify when BTC > 50000 to USD".
type AlertQuery struct {
	Base      string
	Quote     string
	Operator  string
	Threshold float64
}

func ParseConvert(text string) (ConvertQuery, bool) {
	m := convertPattern.FindStringSubmatch(text)
	if m == nil {
		return ConvertQuery{}, false
	}
	amount, ok := parseAmount(m[convertPattern.SubexpIndex("amount")])
	if !ok {
		return ConvertQuery{}, false
	}
	return ConvertQuery{
		Amount: amount,
		Base:   domain.NormalizeSymbol(m[convertPattern.SubexpIndex("base")]),
		Quote:  domain.NormalizeSymbol(m[convertPattern.SubexpIndex("quote")]),
	}, true
}

func ParseAlert(text string) (AlertQuery, bool) {
	m := alertPattern.FindStringSubmatch(text)
	if m == nil {
		return AlertQuery{}, false
	}
	value, ok := parseAmount(m[alertPattern.SubexpIndex("value")])
	if !ok {
		return AlertQuery{}, false
	}
	return AlertQuery{
		Base:      domain.NormalizeSymbol(m[alertPattern.SubexpIndex("base")]),
		Quote:     domain.NormalizeSymbol(m[alertPattern.SubexpIndex("quote")]),
		Operator:  m[alertPattern.SubexpIndex("op")],
		Threshold: value,
	}, true
}

// normalizeAmount drops digit separators. A lone comma is a decimal comma,
// otherwise commas are thousands separators.
func normalizeAmount(s string) string {
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		return strings.Replace(s, ",", ".", 1)
	}
	return strings.ReplaceAll(s, ",", "")
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(normalizeAmount(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
