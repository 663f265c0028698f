package docstore

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// expressionBuilder turns filters and updates into DynamoDB expressions with
// #nX / :vX placeholders.
type expressionBuilder struct {
	names  map[string]string
	values map[string]types.AttributeValue
	byName map[string]string
}

func newExpressionBuilder() *expressionBuilder {
	return &expressionBuilder{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
		byName: map[string]string{},
	}
}

func (b *expressionBuilder) name(field string) string {
	if ph, ok := b.byName[field]; ok {
		return ph
	}
	ph := fmt.Sprintf("#n%d", len(b.byName))
	b.byName[field] = ph
	b.names[ph] = field
	return ph
}

func (b *expressionBuilder) value(av types.AttributeValue) string {
	ph := fmt.Sprintf(":v%d", len(b.values))
	b.values[ph] = av
	return ph
}

func (b *expressionBuilder) marshal(v any) (string, error) {
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return "", err
	}
	return b.value(av), nil
}

func (b *expressionBuilder) condition(f Filter) (string, error) {
	parts := make([]string, 0, len(f))
	for _, c := range f {
		n := b.name(c.Field)
		switch c.Op {
		case OpExists:
			parts = append(parts, fmt.Sprintf("attribute_exists(%s)", n))
		case OpNotExists:
			parts = append(parts, fmt.Sprintf("attribute_not_exists(%s)", n))
		case OpEq, OpGte, OpLte:
			v, err := b.marshal(c.Values[0])
			if err != nil {
				return "", fmt.Errorf("docstore: marshal %s: %w", c.Field, err)
			}
			op := map[Op]string{OpEq: "=", OpGte: ">=", OpLte: "<="}[c.Op]
			parts = append(parts, fmt.Sprintf("%s %s %s", n, op, v))
		case OpIn:
			if len(c.Values) == 0 {
				return "", fmt.Errorf("docstore: empty IN on %s", c.Field)
			}
			phs := make([]string, 0, len(c.Values))
			for _, raw := range c.Values {
				v, err := b.marshal(raw)
				if err != nil {
					return "", fmt.Errorf("docstore: marshal %s: %w", c.Field, err)
				}
				phs = append(phs, v)
			}
			parts = append(parts, fmt.Sprintf("%s IN (%s)", n, strings.Join(phs, ", ")))
		default:
			return "", fmt.Errorf("docstore: unsupported op %s", c.Op)
		}
	}
	return strings.Join(parts, " AND "), nil
}

func (b *expressionBuilder) update(u *Update) (string, error) {
	var clauses []string
	for _, s := range u.sets {
		v, err := b.marshal(s.value)
		if err != nil {
			return "", fmt.Errorf("docstore: marshal %s: %w", s.field, err)
		}
		clauses = append(clauses, fmt.Sprintf("%s = %s", b.name(s.field), v))
	}
	for _, inc := range u.incs {
		n := b.name(inc.field)
		zero := b.value(&types.AttributeValueMemberN{Value: "0"})
		delta := b.value(&types.AttributeValueMemberN{Value: fmt.Sprintf("%d", inc.value.(int))})
		clauses = append(clauses, fmt.Sprintf("%s = if_not_exists(%s, %s) + %s", n, n, zero, delta))
	}
	for _, p := range u.pushes {
		n := b.name(p.field)
		items := make([]types.AttributeValue, 0, len(p.value.([]any)))
		for _, it := range p.value.([]any) {
			av, err := attributevalue.Marshal(it)
			if err != nil {
				return "", fmt.Errorf("docstore: marshal %s item: %w", p.field, err)
			}
			items = append(items, av)
		}
		empty := b.value(&types.AttributeValueMemberL{Value: []types.AttributeValue{}})
		list := b.value(&types.AttributeValueMemberL{Value: items})
		clauses = append(clauses, fmt.Sprintf("%s = list_append(if_not_exists(%s, %s), %s)", n, n, empty, list))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "SET " + strings.Join(clauses, ", "), nil
}

func (b *expressionBuilder) attributeNames() map[string]string {
	if len(b.names) == 0 {
		return nil
	}
	return b.names
}

func (b *expressionBuilder) attributeValues() map[string]types.AttributeValue {
	if len(b.values) == 0 {
		return nil
	}
	return b.values
}
