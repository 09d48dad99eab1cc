package domain

// Page параметры пагинации
type Page struct {
	Offset uint64
	Limit  uint64
}

// Normalize подставляет лимит по умолчанию и ограничивает максимальный
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
