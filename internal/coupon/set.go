package coupon

// mapCouponSet implements CouponSet using a map for O(1) lookups.
type mapCouponSet struct {
	coupons map[string]Coupon
}

// NewMapCouponSet creates a new map-based coupon set.
func NewMapCouponSet(capacity int) CouponSet {
	return &mapCouponSet{
		coupons: make(map[string]Coupon, capacity),
	}
}

// Get returns the coupon stored under code.
func (s *mapCouponSet) Get(code string) (Coupon, bool) {
	c, exists := s.coupons[code]
	return c, exists
}

// Size returns the number of coupons in the set.
func (s *mapCouponSet) Size() int {
	return len(s.coupons)
}

// Add stores c. A repeated code keeps the larger percentage.
func (s *mapCouponSet) Add(c Coupon) {
	if existing, ok := s.coupons[c.Code]; ok && existing.Percent >= c.Percent {
		return
	}
	s.coupons[c.Code] = c
}
