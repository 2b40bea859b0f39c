package turkishsearch

import (
	"strings"
	"unicode"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// upperToLower SQL tarafında LOWER'dan önce uygulanan eşlemelerdir. İ, I'dan
// önce gelmelidir. SQLite LOWER yalnızca ASCII harfleri, Postgres LOWER ise
// I harfini i'ye çevirir.
var upperToLower = [][2]string{
	{"İ", "i"},
	{"I", "ı"},
	{"Ç", "ç"},
	{"Ş", "ş"},
	{"Ğ", "ğ"},
	{"Ü", "ü"},
	{"Ö", "ö"},
	{"Â", "â"},
	{"Î", "î"},
	{"Û", "û"},
}

// Normalize aramayı Türkçe büyük/küçük harf kurallarıyla küçültür (İ→i, I→ı).
func Normalize(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(s))
}

// FoldColumn sütunu Normalize ile aynı kurallarla küçülten SQL ifadesini döndürür.
func FoldColumn(column string) string {
	expr := column
	for _, pair := range upperToLower {
		expr = "REPLACE(" + expr + ", '" + pair[0] + "', '" + pair[1] + "')"
	}
	return "LOWER(" + expr + ")"
}

// SQLFilterAny sütunlardan herhangi birinde geçen terimi arayan OR koşulu üretir.
func SQLFilterAny(columns []string, term string) (string, []interface{}) {
	pattern := "%" + likeEscaper.Replace(Normalize(term)) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, FoldColumn(col)+` LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
