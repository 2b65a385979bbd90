package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/VenturaVini/barbearia/internal/domain/appointment"
)

// AvailabilityCache guarda grades de horários livres por
// (barbeiro, serviço, data). Com rdb nulo o cache vira no-op, então a API
// funciona sem Redis configurado.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func slotsKey(barberID, serviceID uint, date time.Time) string {
	return fmt.Sprintf("availability:%d:%d:%s", barberID, serviceID, date.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotsKey(in.BarberID, in.ServiceID, in.Date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	in domain.AvailabilityInput,
	slots []domain.TimeSlot,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, slotsKey(in.BarberID, in.ServiceID, in.Date), raw, c.ttl)
}

// Invalidate descarta todas as grades do barbeiro na data; chamado após
// criar, remarcar ou cancelar um agendamento.
func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:*:%s", barberID, date.Format("2006-01-02"))

	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	c.rdb.Del(ctx, keys...)
}
