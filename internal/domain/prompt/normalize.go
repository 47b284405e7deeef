package prompt

import "github.com/google/uuid"

// IDGenerator produces a fresh unique identifier. Injected so tests can
// substitute a deterministic generator.
type IDGenerator func() string

// NewID is the default generator.
var NewID IDGenerator = uuid.NewString

// listItem is implemented by pointers to every ordered content entity.
type listItem interface {
	ident() string
	setIdent(string)
	setOrder(int)
}

func (s *Segment) ident() string   { return s.ID }
func (s *Segment) setIdent(id string) { s.ID = id }
func (s *Segment) setOrder(n int)  { s.Order = n }

func (s *Section) ident() string   { return s.ID }
func (s *Section) setIdent(id string) { s.ID = id }
func (s *Section) setOrder(n int)  { s.Order = n }

func (m *Module) ident() string    { return m.ID }
func (m *Module) setIdent(id string) { m.ID = id }
func (m *Module) setOrder(n int)   { m.Order = n }

func (b *Block) ident() string     { return b.ID }
func (b *Block) setIdent(id string) { b.ID = id }
func (b *Block) setOrder(n int)    { b.Order = n }

func (a *Asset) ident() string     { return a.ID }
func (a *Asset) setIdent(id string) { a.ID = id }
func (a *Asset) setOrder(int)      {} // assets carry no order field

// normalizeList assigns ids to items that lack one and recomputes dense
// zero-based order from position. Existing ids are never overwritten, so
// repeated normalization is idempotent.
func normalizeList[T any, P interface {
	*T
	listItem
}](items []T, gen IDGenerator) {
	for i := range items {
		p := P(&items[i])
		if p.ident() == "" {
			p.setIdent(gen())
		}
		p.setOrder(i)
	}
}

// Insert appends an item to the list, assigning it a fresh id (unless it
// already has one) and order = previous length.
func Insert[T any, P interface {
	*T
	listItem
}](items []T, item T, gen IDGenerator) []T {
	p := P(&item)
	if p.ident() == "" {
		p.setIdent(gen())
	}
	p.setOrder(len(items))
	return append(items, item)
}

// Remove deletes the item with the given id and re-indexes the remainder.
func Remove[T any, P interface {
	*T
	listItem
}](items []T, id string) []T {
	out := items[:0]
	for i := range items {
		if P(&items[i]).ident() != id {
			out = append(out, items[i])
		}
	}
	for i := range out {
		P(&out[i]).setOrder(i)
	}
	return out
}

// Reorder moves the item with the given id to position target (clamped to
// list bounds) and recomputes every order field.
func Reorder[T any, P interface {
	*T
	listItem
}](items []T, id string, target int) []T {
	from := -1
	for i := range items {
		if P(&items[i]).ident() == id {
			from = i
			break
		}
	}
	if from < 0 {
		return items
	}
	if target < 0 {
		target = 0
	}
	if target >= len(items) {
		target = len(items) - 1
	}

	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items[:target], append([]T{moved}, items[target:]...)...)
	for i := range items {
		P(&items[i]).setOrder(i)
	}
	return items
}

// Normalize repairs a content tree loaded from an external source: items
// missing an id get a fresh one, order fields are recomputed dense and
// zero-based, and nested modules and assets inside blocks are normalized
// the same way. Only the shape selected by the structure type is touched.
func Normalize(c *Content, st StructureType, gen IDGenerator) {
	if gen == nil {
		gen = NewID
	}
	switch st {
	case StructureStandard:
		normalizeList[Segment](c.Segments, gen)
	case StructureStructured:
		normalizeList[Section](c.Sections, gen)
	case StructureModulized:
		normalizeList[Module](c.Modules, gen)
	case StructureAdvanced:
		normalizeList[Block](c.Blocks, gen)
		for i := range c.Blocks {
			normalizeList[Module](c.Blocks[i].Modules, gen)
			normalizeList[Asset](c.Blocks[i].Assets, gen)
		}
	}
}
