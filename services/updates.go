package services

import (
	"fmt"
	"strings"
	"time"

	"siteyonetim.app/pkg/optional"
	"siteyonetim.app/pkg/queryparams"
)

// changeSet kısmi güncellemede yalnızca gövdede gelen alanların sütun karşılıklarını toplar.
type changeSet map[string]interface{}

// text metin alanını uygular; null boş metin olarak yazılır.
func (c changeSet) text(column string, f optional.Field[string]) {
	if f.Set {
		c[column] = strings.TrimSpace(f.Value)
	}
}

// requiredText boş veya null olamayacak metin alanını uygular.
func (c changeSet) requiredText(column, field string, f optional.Field[string]) error {
	if !f.Set {
		return nil
	}
	v := strings.TrimSpace(f.Value)
	if f.Null || v == "" {
		return fmt.Errorf("%w: %s boş olamaz", ErrInvalidInput, field)
	}
	c[column] = v
	return nil
}

// enum izinli değerlerden biri olması gereken alanı uygular.
func (c changeSet) enum(column, field string, f optional.Field[string], oneof string) error {
	if !f.Set {
		return nil
	}
	if f.Null {
		return fmt.Errorf("%w: %s boş olamaz", ErrInvalidInput, field)
	}
	if err := validateField(field, f.Value, "oneof="+oneof); err != nil {
		return err
	}
	c[column] = f.Value
	return nil
}

// date tarih alanını uygular; null değeri temizler.
func (c changeSet) date(column, field string, f optional.Field[string], nullable bool) error {
	if !f.Set {
		return nil
	}
	if f.Null || strings.TrimSpace(f.Value) == "" {
		if !nullable {
			return fmt.Errorf("%w: %s boş olamaz", ErrInvalidInput, field)
		}
		c[column] = nil
		return nil
	}
	t, err := queryparams.ParseDate(f.Value, false)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}
	c[column] = *t
	return nil
}

// nullable null gönderildiğinde NULL yazılan alanı uygular.
func nullable[T any](c changeSet, column string, f optional.Field[T]) {
	if !f.Set {
		return
	}
	if f.Null {
		c[column] = nil
		return
	}
	c[column] = f.Value
}

// value null kabul etmeyen değer alanını uygular.
func value[T any](c changeSet, column, field string, f optional.Field[T]) error {
	if !f.Set {
		return nil
	}
	if f.Null {
		return fmt.Errorf("%w: %s boş olamaz", ErrInvalidInput, field)
	}
	c[column] = f.Value
	return nil
}

// parseDateInput oluşturma girdilerindeki tarih metnini çözer.
func parseDateInput(field, v string) (*time.Time, error) {
	t, err := queryparams.ParseDate(v, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}
	return t, nil
}

// dateRange liste filtresindeki tarih aralığını 400 hatasıyla çözer.
func dateRange(params queryparams.ListParams) (*time.Time, *time.Time, error) {
	from, to, err := params.DateRange()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return from, to, nil
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
