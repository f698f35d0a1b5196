package metrics

import (
	"math"
	"sync/atomic"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered      uint64
	LoginsSucceeded      uint64
	LoginsFailed         uint64
	CartItemsAdded       uint64
	CartUnitsAdded       uint64
	CheckoutsCompleted   uint64
	CheckoutsRejected    uint64
	OrderValueCount      uint64
	OrderValueSum        float64
	OrderEventsPublished uint64
	OrderEventsDropped   uint64
	RateLimited          uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered      uint64
	loginsSucceeded      uint64
	loginsFailed         uint64
	cartItemsAdded       uint64
	cartUnitsAdded       uint64
	checkoutsCompleted   uint64
	checkoutsRejected    uint64
	orderValueCount      uint64
	orderValueSumBits    uint64
	orderEventsPublished uint64
	orderEventsDropped   uint64
	rateLimited          uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:      atomic.LoadUint64(&m.usersRegistered),
		LoginsSucceeded:      atomic.LoadUint64(&m.loginsSucceeded),
		LoginsFailed:         atomic.LoadUint64(&m.loginsFailed),
		CartItemsAdded:       atomic.LoadUint64(&m.cartItemsAdded),
		CartUnitsAdded:       atomic.LoadUint64(&m.cartUnitsAdded),
		CheckoutsCompleted:   atomic.LoadUint64(&m.checkoutsCompleted),
		CheckoutsRejected:    atomic.LoadUint64(&m.checkoutsRejected),
		OrderValueCount:      atomic.LoadUint64(&m.orderValueCount),
		OrderValueSum:        math.Float64frombits(atomic.LoadUint64(&m.orderValueSumBits)),
		OrderEventsPublished: atomic.LoadUint64(&m.orderEventsPublished),
		OrderEventsDropped:   atomic.LoadUint64(&m.orderEventsDropped),
		RateLimited:          atomic.LoadUint64(&m.rateLimited),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLogin increments the login counter for status.
func (m *InMemoryRecorder) IncLogin(status string) {
	if status == "success" {
		atomic.AddUint64(&m.loginsSucceeded, 1)
		return
	}
	atomic.AddUint64(&m.loginsFailed, 1)
}

// IncCartItemAdded records one add-to-cart call of quantity units.
func (m *InMemoryRecorder) IncCartItemAdded(quantity int) {
	atomic.AddUint64(&m.cartItemsAdded, 1)
	if quantity > 0 {
		atomic.AddUint64(&m.cartUnitsAdded, uint64(quantity))
	}
}

// IncCheckoutCompleted increments the completed checkout counter.
func (m *InMemoryRecorder) IncCheckoutCompleted() {
	atomic.AddUint64(&m.checkoutsCompleted, 1)
}

// IncCheckoutRejected increments the rejected checkout counter.
func (m *InMemoryRecorder) IncCheckoutRejected() {
	atomic.AddUint64(&m.checkoutsRejected, 1)
}

// ObserveOrderValue records the total of a placed order.
func (m *InMemoryRecorder) ObserveOrderValue(value float64) {
	atomic.AddUint64(&m.orderValueCount, 1)
	for {
		old := atomic.LoadUint64(&m.orderValueSumBits)
		sum := math.Float64frombits(old) + value
		if atomic.CompareAndSwapUint64(&m.orderValueSumBits, old, math.Float64bits(sum)) {
			return
		}
	}
}

// IncRateLimited increments the rate limited request counter.
func (m *InMemoryRecorder) IncRateLimited() {
	atomic.AddUint64(&m.rateLimited, 1)
}

// IncOrderEventPublished counts order event publish outcomes.
func (m *InMemoryRecorder) IncOrderEventPublished(status string) {
	if status == "success" {
		atomic.AddUint64(&m.orderEventsPublished, 1)
		return
	}
	atomic.AddUint64(&m.orderEventsDropped, 1)
}
