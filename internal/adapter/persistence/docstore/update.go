package docstore

type assignment struct {
	field string
	value any
}

// Update describes the changes UpdateOne applies to a single document.
type Update struct {
	sets   []assignment
	incs   []assignment
	pushes []assignment
}

func NewUpdate() *Update {
	return &Update{}
}

// Set replaces an attribute.
func (u *Update) Set(field string, v any) *Update {
	u.sets = append(u.sets, assignment{field: field, value: v})
	return u
}

// Inc adds delta to a numeric attribute, treating a missing attribute as 0.
func (u *Update) Inc(field string, delta int) *Update {
	u.incs = append(u.incs, assignment{field: field, value: delta})
	return u
}

// Push appends items to a list attribute, creating it when missing.
func (u *Update) Push(field string, items ...any) *Update {
	u.pushes = append(u.pushes, assignment{field: field, value: items})
	return u
}

func (u *Update) empty() bool {
	return u == nil || len(u.sets)+len(u.incs)+len(u.pushes) == 0
}
