package turkishsearch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Deniz ", "deniz"},
		{"ISITMA", "ısıtma"},
		{"İSTANBUL", "istanbul"},
		{"ÇAĞLAYAN ŞÜKRÜ ÖZ", "çağlayan şükrü öz"},
		{"Îmar", "îmar"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestSQLFilterAny_EscapesWildcards(t *testing.T) {
	fragment, args := SQLFilterAny([]string{"name", "code"}, "50%_x")

	assert.Contains(t, fragment, " OR ")
	assert.Contains(t, fragment, "REPLACE(name, 'İ', 'i')")
	assert.Equal(t, []interface{}{`%50\%\_x%`, `%50\%\_x%`}, args)
}

type place struct {
	ID   uint
	Name string
}

func TestSQLFilterAny_MatchesTurkishNames(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "search.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&place{}))
	names := []string{"Isıtma Merkezi", "İstanbul Evleri", "Çamlık Sitesi", "Güneş Şöminesi", "Indigo"}
	for _, n := range names {
		require.NoError(t, db.Create(&place{Name: n}).Error)
	}

	tests := []struct {
		term string
		want []string
	}{
		{"Isıtma", []string{"Isıtma Merkezi"}},
		{"İstanbul", []string{"İstanbul Evleri"}},
		{"istanbul evleri", []string{"İstanbul Evleri"}},
		{"ÇAMLIK", []string{"Çamlık Sitesi"}},
		{"şömine", []string{"Güneş Şöminesi"}},
		{"GÜNEŞ", []string{"Güneş Şöminesi"}},
		{"ındigo", []string{"Indigo"}},
		{"yok", nil},
	}
	for _, tt := range tests {
		fragment, args := SQLFilterAny([]string{"name"}, tt.term)
		var found []place
		require.NoError(t, db.Where(fragment, args...).Order("id").Find(&found).Error, tt.term)
		var got []string
		for _, p := range found {
			got = append(got, p.Name)
		}
		assert.Equal(t, tt.want, got, tt.term)
	}
}
