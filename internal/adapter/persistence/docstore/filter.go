package docstore

// Op is a filter predicate.
type Op int

const (
	OpEq Op = iota
	OpIn
	OpGte
	OpLte
	OpExists
	OpNotExists
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpIn:
		return "in"
	case OpGte:
		return "gte"
	case OpLte:
		return "lte"
	case OpExists:
		return "exists"
	case OpNotExists:
		return "not_exists"
	}
	return "unknown"
}

// Cond is a single predicate on a top-level attribute.
type Cond struct {
	Field  string
	Op     Op
	Values []any
}

// Filter is a conjunction of conditions. The empty filter matches every
// document.
type Filter []Cond

func Eq(field string, v any) Cond {
	return Cond{Field: field, Op: OpEq, Values: []any{v}}
}

func In[T any](field string, vs ...T) Cond {
	values := make([]any, 0, len(vs))
	for _, v := range vs {
		values = append(values, v)
	}
	return Cond{Field: field, Op: OpIn, Values: values}
}

func Gte(field string, v any) Cond {
	return Cond{Field: field, Op: OpGte, Values: []any{v}}
}

func Lte(field string, v any) Cond {
	return Cond{Field: field, Op: OpLte, Values: []any{v}}
}

func Exists(field string) Cond {
	return Cond{Field: field, Op: OpExists}
}

func NotExists(field string) Cond {
	return Cond{Field: field, Op: OpNotExists}
}

// Where builds a filter from conditions.
func Where(conds ...Cond) Filter {
	return Filter(conds)
}

// ByID matches the document stored under key.
func ByID(key string) Filter {
	return Filter{Eq(KeyField, key)}
}

// And returns a new filter with extra conditions appended.
func (f Filter) And(conds ...Cond) Filter {
	out := make(Filter, 0, len(f)+len(conds))
	out = append(out, f...)
	return append(out, conds...)
}

// key reports the store key when the filter pins one with an equality.
func (f Filter) key() (string, bool) {
	for _, c := range f {
		if c.Field == KeyField && c.Op == OpEq && len(c.Values) == 1 {
			if s, ok := c.Values[0].(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}
