package queryparams

import (
	"fmt"
	"strings"
	"time"
)

// ListParams liste uç noktalarının ortak sorgu parametreleridir.
// Sayısal kimliklerde 0 "filtre yok" anlamına gelir.
type ListParams struct {
	Search       string `query:"q"`
	Status       string `query:"status"`
	Type         string `query:"type"`
	Priority     string `query:"priority"`
	Category     string `query:"category"`
	Role         string `query:"role"`
	MeterNumber  string `query:"meterNumber"`
	SiteID       uint   `query:"siteId"`
	BlockID      uint   `query:"blockId"`
	FloorID      uint   `query:"floorId"`
	CommonAreaID uint   `query:"commonAreaId"`
	AssignedToID uint   `query:"assignedToId"`
	StartDate    string `query:"startDate"`
	EndDate      string `query:"endDate"`
}

// DateRange StartDate/EndDate alanlarını zaman aralığına çevirir.
func (p ListParams) DateRange() (*time.Time, *time.Time, error) {
	from, err := ParseDate(p.StartDate, false)
	if err != nil {
		return nil, nil, err
	}
	to, err := ParseDate(p.EndDate, true)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

const dateLayout = "2006-01-02"

// ParseDate "2006-01-02" veya RFC3339 biçimindeki tarihi çözer. Boş değer nil döner.
// Sadece gün verilmişse ve endOfDay true ise günün son anı döndürülür (kapsayıcı bitiş).
func ParseDate(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("geçersiz tarih: %q", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
