// Package optional kısmi güncelleme gövdelerinde "alan hiç gönderilmedi",
// "alan null gönderildi" ve "alan değerle gönderildi" durumlarını ayırt eder.
package optional

import "encoding/json"

// Field JSON gövdesinde isteğe bağlı bir alandır.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of değeri gönderilmiş bir alan üretir.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON alan gövdede yer aldığında çağrılır (null dahil).
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON gönderilmemiş veya null alanları null olarak yazar.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Present alan değerle gönderildiyse true döner.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}
