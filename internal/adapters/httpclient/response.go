package httpclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"fxalerts/internal/domain"

	"github.com/go-resty/resty/v2"
)

func decodeBody(resp *resty.Response, provider string, v any) error {
	if !resp.IsSuccess() {
		return fmt.Errorf("%s: unexpected status code %d: %s", provider, resp.StatusCode(), resp.Status())
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", provider, err)
	}
	return nil
}

// pickRate looks quote up in a code->rate map returned by a provider.
func pickRate(rates map[string]float64, quote string) (float64, error) {
	v, ok := rates[strings.ToUpper(quote)]
	if !ok {
		return 0, fmt.Errorf("%w: %q missing in payload", domain.ErrRateNotFound, quote)
	}
	return v, nil
}
