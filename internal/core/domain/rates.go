package domain

import "fmt"

// ConversionRates expresses the funnel ratios as percentages rendered to
// two decimal places. A zero denominator yields "0", never NaN.
type ConversionRates struct {
	CookieToFTD string `json:"cookieToFtd"`
	RegToFTD    string `json:"regToFtd"`
}

// RatesFor computes the conversion rates for the given counts.
func RatesFor(cookieSets, registrations, ftds int64) ConversionRates {
	return ConversionRates{
		CookieToFTD: Rate(ftds, cookieSets),
		RegToFTD:    Rate(ftds, registrations),
	}
}

// Rate renders n/d as a percentage with two decimals. It returns "0" when
// the denominator is zero.
func Rate(n, d int64) string {
	if d == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", float64(n)/float64(d)*100)
}
