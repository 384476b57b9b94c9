// pkg/utils/format/price.go
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Price fiyat etiketini üretir: "AED 5,000,000".
// Binlik ayracı eski sitedeki toLocaleString çıktısıyla aynı.
func Price(currency string, amount float64) string {
	return currency + " " + Number(amount)
}

// Number sayıyı binlik gruplu yazar, tam sayılarda ondalık göstermez
func Number(amount float64) string {
	if amount == math.Trunc(amount) {
		return printer.Sprintf("%d", int64(amount))
	}
	return printer.Sprintf("%.2f", amount)
}

// Area metrekare göstergesi; eski site bu alanı gruplamadan basıyordu
func Area(sqm float64) string {
	return strconv.FormatFloat(sqm, 'f', -1, 64)
}
