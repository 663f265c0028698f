package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"rental_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Business-id prefixes.
const (
	PrefixEnquiry    = "ENQ"
	PrefixRental     = "RC"
	PrefixQuotation  = "QT"
	PrefixSalesOrder = "SO"
	PrefixContract   = "CNT"
	PrefixInvoice    = "INV"
	PrefixLead       = "LEAD"
	PrefixDispatch   = "DSP"
)

const maxMintAttempts = 5

var ErrBusinessIDExhausted = errors.New("could not mint an unused business id")

// prefixAliases lists legacy prefixes sharing a number space with a prefix.
// Rentals minted as RC-YYYY-NNN become ENQ-YYYY-NNNN when canonicalised.
var prefixAliases = map[string][]string{
	PrefixEnquiry: {PrefixRental},
}

var businessIDPattern = regexp.MustCompile(`^([A-Z]+)-(?:(\d{4})-)?(\d+)$`)

// BusinessID is a parsed PREFIX-YEAR-NNNN identifier. Year is 0 for legacy
// ids without a year segment.
type BusinessID struct {
	Prefix string
	Year   int
	Seq    int64
}

// ParseBusinessID accepts both PREFIX-YYYY-N and the legacy PREFIX-N form.
func ParseBusinessID(id string) (BusinessID, bool) {
	m := businessIDPattern.FindStringSubmatch(id)
	if m == nil {
		return BusinessID{}, false
	}
	seq, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return BusinessID{}, false
	}
	out := BusinessID{Prefix: m[1], Seq: seq}
	if m[2] != "" {
		out.Year, _ = strconv.Atoi(m[2])
	}
	return out, true
}

func FormatBusinessID(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

type IIDMinter interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// IDMinter allocates PREFIX-YEAR-NNNN ids from an atomic counter per prefix
// and year. The first allocation of a (prefix, year) in a process raises the
// counter above every id already stored, so counters survive data imported
// from older deployments.
type IDMinter struct {
	seq     interfaces.ISequencer
	log     *zap.Logger
	now     func() time.Time
	mu      sync.Mutex
	sources map[string][]interfaces.IBusinessIDSource
	seeded  map[string]bool
}

var _ IIDMinter = (*IDMinter)(nil)

func NewIDMinter(seq interfaces.ISequencer, log *zap.Logger) *IDMinter {
	return &IDMinter{
		seq:     seq,
		log:     log.Named("ids"),
		now:     time.Now,
		sources: make(map[string][]interfaces.IBusinessIDSource),
		seeded:  make(map[string]bool),
	}
}

// Register adds a collection whose ids belong to prefix.
func (m *IDMinter) Register(prefix string, src interfaces.IBusinessIDSource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[prefix] = append(m.sources[prefix], src)
}

func (m *IDMinter) Next(ctx context.Context, prefix string) (string, error) {
	year := m.now().Year()
	key := fmt.Sprintf("%s#%d", prefix, year)
	if err := m.seed(ctx, prefix, year, key); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		n, err := m.seq.Next(ctx, key)
		if err != nil {
			return "", err
		}
		id := FormatBusinessID(prefix, year, n)
		taken, err := m.taken(ctx, prefix, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
		m.log.Warn("minted id already in use", zap.String("id", id), zap.Int("attempt", attempt+1))
	}
	return "", ErrBusinessIDExhausted
}

func (m *IDMinter) seed(ctx context.Context, prefix string, year int, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seeded[key] {
		return nil
	}

	accepted := map[string]bool{prefix: true}
	for _, alias := range prefixAliases[prefix] {
		accepted[alias] = true
	}

	var highest int64
	for _, src := range m.sources[prefix] {
		ids, err := src.ListBusinessIDs(ctx)
		if err != nil {
			return err
		}
		for _, raw := range ids {
			id, ok := ParseBusinessID(raw)
			if !ok || !accepted[id.Prefix] {
				continue
			}
			if id.Year != 0 && id.Year != year {
				continue
			}
			if id.Seq > highest {
				highest = id.Seq
			}
		}
	}
	if highest > 0 {
		if err := m.seq.Floor(ctx, key, highest); err != nil {
			return err
		}
		m.log.Info("sequence seeded", zap.String("key", key), zap.Int64("floor", highest))
	}
	m.seeded[key] = true
	return nil
}

func (m *IDMinter) taken(ctx context.Context, prefix, id string) (bool, error) {
	m.mu.Lock()
	sources := m.sources[prefix]
	m.mu.Unlock()
	for _, src := range sources {
		exists, err := src.BusinessIDExists(ctx, id)
		if err != nil || exists {
			return exists, err
		}
	}
	return false, nil
}
