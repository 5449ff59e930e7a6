// Package amountwords spells monetary amounts for printed payment requests,
// e.g. 2500.50 -> "Two Thousand Five Hundred and 50/100".
package amountwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var scales = []string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion"}

var thousand = decimal.NewFromInt(1000)

// Spell renders amount in words with the fractional part as a /100 suffix.
// Amounts are rounded to two decimal places. Negative amounts are spelled by magnitude.
// Whole parts past the largest scale are written in digits.
func Spell(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Mul(decimal.NewFromInt(100)).IntPart()

	words, ok := spellWhole(whole)
	if !ok {
		words = whole.String()
	}
	if words == "" {
		words = "Zero"
	}
	if cents == 0 {
		return words + " Only"
	}
	return words + " and " + twoDigits(cents) + "/100"
}

func spellWhole(n decimal.Decimal) (string, bool) {
	var groups []string
	for i := 0; n.IsPositive(); i++ {
		if i == len(scales) {
			return "", false
		}
		chunk := n.Mod(thousand).IntPart()
		n = n.Div(thousand).Truncate(0)
		if chunk == 0 {
			continue
		}
		part := spellHundreds(chunk)
		if scales[i] != "" {
			part += " " + scales[i]
		}
		groups = append([]string{part}, groups...)
	}
	return strings.Join(groups, " "), true
}

func spellHundreds(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, ones[h]+" Hundred")
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 20:
		parts = append(parts, ones[rest])
	default:
		t := tens[rest/10]
		if u := rest % 10; u > 0 {
			t += "-" + ones[u]
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " ")
}

func twoDigits(n int64) string {
	const digits = "0123456789"
	return string([]byte{digits[n/10], digits[n%10]})
}
