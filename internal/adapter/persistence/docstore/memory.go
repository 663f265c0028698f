package docstore

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemoryStore keeps documents in process, encoded the same way the DynamoDB
// store encodes them. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	colls map[string]*memoryCollection
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.colls[name]
	if !ok {
		c = &memoryCollection{name: name, docs: make(map[string]map[string]types.AttributeValue)}
		s.colls[name] = c
	}
	return c
}

type memoryCollection struct {
	name  string
	mu    sync.RWMutex
	docs  map[string]map[string]types.AttributeValue
	order []string
}

func (c *memoryCollection) Name() string { return c.name }

func (c *memoryCollection) scan(f Filter) ([]map[string]types.AttributeValue, error) {
	if key, ok := f.key(); ok {
		item, found := c.docs[key]
		if !found {
			return nil, nil
		}
		ok, err := match(item, f)
		if err != nil || !ok {
			return nil, err
		}
		return []map[string]types.AttributeValue{item}, nil
	}

	var out []map[string]types.AttributeValue
	for _, key := range c.order {
		item, found := c.docs[key]
		if !found {
			continue
		}
		ok, err := match(item, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *memoryCollection) Find(_ context.Context, f Filter, out any) error {
	c.mu.RLock()
	items, err := c.scan(f)
	c.mu.RUnlock()
	if err != nil {
		return err
	}
	if items == nil {
		items = []map[string]types.AttributeValue{}
	}
	return attributevalue.UnmarshalListOfMaps(items, out)
}

func (c *memoryCollection) FindOne(_ context.Context, f Filter, out any) (bool, error) {
	c.mu.RLock()
	items, err := c.scan(f)
	c.mu.RUnlock()
	if err != nil || len(items) == 0 {
		return false, err
	}
	return true, attributevalue.UnmarshalMap(items[0], out)
}

func (c *memoryCollection) InsertOne(_ context.Context, doc any) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return err
	}
	key, ok := keyOf(item)
	if !ok {
		return ErrMissingKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.docs[key]; exists {
		return ErrDuplicateKey
	}
	c.docs[key] = item
	c.order = append(c.order, key)
	return nil
}

func (c *memoryCollection) UpdateOne(_ context.Context, f Filter, u *Update, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.scan(f)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrNoMatch
	}
	current := items[0]
	key, _ := keyOf(current)

	updated := current
	if !u.empty() {
		updated, err = apply(current, u)
		if err != nil {
			return err
		}
		c.docs[key] = updated
	}
	if out == nil {
		return nil
	}
	return attributevalue.UnmarshalMap(updated, out)
}

func (c *memoryCollection) DeleteOne(_ context.Context, f Filter) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.scan(f)
	if err != nil || len(items) == 0 {
		return false, err
	}
	key, _ := keyOf(items[0])
	delete(c.docs, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (c *memoryCollection) CountDocuments(_ context.Context, f Filter) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, err := c.scan(f)
	return len(items), err
}
