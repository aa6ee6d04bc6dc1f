package ui

import tea "github.com/charmbracelet/bubbletea"

// Spotlight tracks and rotates keyboard focus across buttons.
// Disabled buttons are skipped.
type Spotlight struct {
	Order    []*Button
	OnChange func(from, to *Button)
	current  *Button
}

// NewSpotlight creates a spotlight over buttons, focusing the first one
// that can take it.
func NewSpotlight(buttons ...*Button) *Spotlight {
	s := &Spotlight{Order: buttons}
	s.Next()
	return s
}

// Current returns the focused button, or nil.
func (s *Spotlight) Current() *Button {
	return s.current
}

// Next advances focus to the next button in order.
func (s *Spotlight) Next() *Button {
	return s.step(1)
}

// Prev moves focus to the previous button in order.
func (s *Spotlight) Prev() *Button {
	return s.step(-1)
}

func (s *Spotlight) step(dir int) *Button {
	n := len(s.Order)
	if n == 0 {
		return nil
	}
	idx := s.indexOf(s.current)
	if idx < 0 && dir < 0 {
		idx = 0
	}
	for i := 1; i <= n; i++ {
		j := ((idx+dir*i)%n + n) % n
		if b := s.Order[j]; b.Active() {
			s.move(b)
			return b
		}
	}
	return s.current
}

// Focus moves focus to b. Returns false if b is not in order or is disabled.
func (s *Spotlight) Focus(b *Button) bool {
	if s.indexOf(b) < 0 || !b.Active() {
		return false
	}
	s.move(b)
	return true
}

// Activate clicks the focused button.
func (s *Spotlight) Activate() tea.Cmd {
	if s.current == nil {
		return nil
	}
	return s.current.Activate()
}

func (s *Spotlight) indexOf(b *Button) int {
	if b == nil {
		return -1
	}
	for i, o := range s.Order {
		if o == b {
			return i
		}
	}
	return -1
}

func (s *Spotlight) move(to *Button) {
	from := s.current
	if from == to {
		return
	}
	if from != nil {
		from.SetFocused(false)
	}
	to.SetFocused(true)
	s.current = to
	if s.OnChange != nil {
		s.OnChange(from, to)
	}
}
