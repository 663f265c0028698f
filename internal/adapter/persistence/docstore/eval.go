package docstore

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// match evaluates f against a marshalled document.
func match(item map[string]types.AttributeValue, f Filter) (bool, error) {
	for _, c := range f {
		ok, err := matchCond(item, c)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchCond(item map[string]types.AttributeValue, c Cond) (bool, error) {
	current, present := item[c.Field]
	switch c.Op {
	case OpExists:
		return present, nil
	case OpNotExists:
		return !present, nil
	}
	if !present {
		return false, nil
	}

	for _, v := range c.Values {
		want, err := attributevalue.Marshal(v)
		if err != nil {
			return false, fmt.Errorf("docstore: marshal %s value: %w", c.Field, err)
		}
		switch c.Op {
		case OpEq, OpIn:
			if equalAV(current, want) {
				return true, nil
			}
		case OpGte:
			cmp, ok := compareAV(current, want)
			return ok && cmp >= 0, nil
		case OpLte:
			cmp, ok := compareAV(current, want)
			return ok && cmp <= 0, nil
		default:
			return false, fmt.Errorf("docstore: unsupported op %s", c.Op)
		}
	}
	return false, nil
}

func equalAV(a, b types.AttributeValue) bool {
	if cmp, ok := compareAV(a, b); ok {
		return cmp == 0
	}
	switch av := a.(type) {
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberNULL:
		_, ok := b.(*types.AttributeValueMemberNULL)
		return ok
	}
	return reflect.DeepEqual(a, b)
}

// compareAV orders two scalars of the same kind. Numbers compare by value.
func compareAV(a, b types.AttributeValue) (int, bool) {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		if !ok {
			return 0, false
		}
		return strings.Compare(av.Value, bv.Value), true
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		if !ok {
			return 0, false
		}
		x, err := decimal.NewFromString(av.Value)
		if err != nil {
			return 0, false
		}
		y, err := decimal.NewFromString(bv.Value)
		if err != nil {
			return 0, false
		}
		return x.Cmp(y), true
	}
	return 0, false
}

// apply returns a copy of item with u applied.
func apply(item map[string]types.AttributeValue, u *Update) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}

	for _, s := range u.sets {
		av, err := attributevalue.Marshal(s.value)
		if err != nil {
			return nil, fmt.Errorf("docstore: marshal %s: %w", s.field, err)
		}
		out[s.field] = av
	}

	for _, inc := range u.incs {
		current := decimal.Zero
		if n, ok := out[inc.field].(*types.AttributeValueMemberN); ok {
			v, err := decimal.NewFromString(n.Value)
			if err != nil {
				return nil, fmt.Errorf("docstore: %s is not numeric: %w", inc.field, err)
			}
			current = v
		} else if existing, ok := out[inc.field]; ok {
			if _, isNull := existing.(*types.AttributeValueMemberNULL); !isNull {
				return nil, fmt.Errorf("docstore: %s is not numeric", inc.field)
			}
		}
		delta := decimal.NewFromInt(int64(inc.value.(int)))
		out[inc.field] = &types.AttributeValueMemberN{Value: current.Add(delta).String()}
	}

	for _, p := range u.pushes {
		var list []types.AttributeValue
		if l, ok := out[p.field].(*types.AttributeValueMemberL); ok {
			list = append(list, l.Value...)
		}
		for _, it := range p.value.([]any) {
			av, err := attributevalue.Marshal(it)
			if err != nil {
				return nil, fmt.Errorf("docstore: marshal %s item: %w", p.field, err)
			}
			list = append(list, av)
		}
		out[p.field] = &types.AttributeValueMemberL{Value: list}
	}
	return out, nil
}

func keyOf(item map[string]types.AttributeValue) (string, bool) {
	s, ok := item[KeyField].(*types.AttributeValueMemberS)
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}
