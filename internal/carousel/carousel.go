// internal/carousel/carousel.go
//
// Detay sayfası galeri carousel'inin saf durum makinesi. Geçişler yeni
// bir State döner, render katmanı bu duruma bakarak kaydırma ofsetini
// ve nokta göstergelerini üretir.
package carousel

import (
	"fmt"
	"strconv"
)

type State struct {
	Current int
	Count   int
}

// New ilk slaytta duran bir carousel kurar
func New(count int) State {
	return State{Current: 0, Count: count}
}

// FromQuery URL'deki img parametresinden durumu kurar. Tek resimli
// galeride ve geçersiz indekslerde ilk slaytta kalınır.
func FromQuery(raw string, count int) State {
	s := New(count)
	if raw == "" {
		return s
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return s
	}
	return s.GoTo(idx)
}

// HasControls tek resimli galeride gezinme kontrolleri gizlenir
func (s State) HasControls() bool {
	return s.Count > 1
}

// Next dairesel olarak sonraki slayta geçer
func (s State) Next() State {
	if !s.HasControls() {
		return s
	}
	s.Current = (s.Current + 1) % s.Count
	return s
}

// Prev dairesel olarak önceki slayta döner
func (s State) Prev() State {
	if !s.HasControls() {
		return s
	}
	s.Current = (s.Current - 1 + s.Count) % s.Count
	return s
}

// GoTo nokta göstergesinden doğrudan seçim. Nokta indeksleri yapısal
// olarak geçerli ama indeks URL'den geldiği için aralık dışı değerler
// yok sayılır.
func (s State) GoTo(index int) State {
	if index < 0 || index >= s.Count {
		return s
	}
	s.Current = index
	return s
}

// Offset slayt şeridinin yatay kayması: -current*100%
func (s State) Offset() string {
	return fmt.Sprintf("-%d%%", s.Current*100)
}

// Dots nokta göstergeleri için indeks/aktiflik çiftleri
func (s State) Dots() []Dot {
	if s.Count == 0 {
		return nil
	}
	dots := make([]Dot, s.Count)
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == s.Current}
	}
	return dots
}

type Dot struct {
	Index  int
	Active bool
}
