// pkg/utils/slugify/slugify.go
package slugify

import (
	"regexp"
	"strings"
)

var (
	specialChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[\s_-]+`)
)

// Make ilan başlığından URL slug'ı üretir.
// Paylaşılan eski detay linkleriyle birebir aynı sonucu vermek zorunda,
// bu yüzden dönüşüm sırası sabittir: lowercase, özel karakterleri at,
// boşluk/alt çizgi/tire dizilerini tek tireye indir, baştaki ve
// sondaki tireleri kırp.
func Make(title string) string {
	s := strings.ToLower(title)
	s = specialChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
