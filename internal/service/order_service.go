package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/checkout"
	"storefront/internal/coupon"
	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	coupons   coupon.Catalog
	intake    *checkout.Intake
	policy    checkout.Policy
	numbers   *checkout.NumberGenerator
	now       func() time.Time
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	coupons coupon.Catalog,
	policy checkout.Policy,
	numbers *checkout.NumberGenerator,
	logger zerolog.Logger,
) OrderService {
	if numbers == nil {
		numbers = checkout.NewNumberGenerator(nil)
	}
	return &orderService{
		orderRepo: orderRepo,
		coupons:   coupons,
		intake:    checkout.NewIntake(),
		policy:    policy,
		numbers:   numbers,
		now:       time.Now,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder validates the submission, prices it and stores the order with
// its items in one transaction. Nothing is written when validation fails.
func (s *orderService) PlaceOrder(ctx context.Context, user *model.User, req *model.OrderRequest) (*model.OrderConfirmation, error) {
	if user == nil {
		return nil, model.ErrUnauthorised
	}

	sub, err := s.intake.Validate(req)
	if err != nil {
		s.logger.Warn().
			Str("user_id", user.ID).
			Err(err).
			Msg("order submission rejected")
		return nil, err
	}

	var couponPercent float64
	var couponCode *string
	if sub.CouponCode != "" {
		c, err := s.lookupCoupon(ctx, sub.CouponCode)
		if err != nil {
			return nil, err
		}
		couponPercent = c.Percent
		couponCode = &c.Code
	}

	quote := s.policy.Quote(checkout.QuoteInput{
		Items:         sub.Items,
		TotalAmount:   sub.TotalAmount,
		Discount:      sub.Discount,
		CouponPercent: couponPercent,
	})

	number, err := s.numbers.Next()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate order number")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	now := s.now().UTC()
	order := &model.Order{
		ID:              uuid.New(),
		OrderNumber:     number,
		UserID:          user.ID,
		Items:           quote.Lines,
		ShippingAddress: sub.ShippingAddress,
		Payment: model.Payment{
			Method:  sub.Payment.Method(),
			Status:  model.PaymentStatusCompleted,
			Details: sub.Payment.Mask(),
		},
		CouponCode:   couponCode,
		Subtotal:     quote.Subtotal,
		Discount:     quote.Discount,
		ShippingCost: quote.ShippingCost,
		Tax:          quote.Tax,
		Total:        quote.Total,
		Status:       model.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}

	if err := s.persist(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("user_id", user.ID).
		Str("payment_method", string(order.Payment.Method)).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created successfully")

	return &model.OrderConfirmation{
		Success: true,
		Order: model.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Total:       order.Total,
			Status:      order.Status,
		},
	}, nil
}

func (s *orderService) lookupCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	if s.coupons == nil {
		return nil, model.ErrInvalidCoupon
	}

	c, err := s.coupons.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCoupon) {
			s.logger.Warn().Str("coupon_code", code).Msg("invalid coupon code")
			return nil, err
		}
		s.logger.Error().Err(err).Str("coupon_code", code).Msg("coupon lookup failed")
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}

	s.logger.Debug().
		Str("coupon_code", c.Code).
		Float64("percent", c.Percent).
		Msg("coupon code applied")

	return c, nil
}

func (s *orderService) persist(ctx context.Context, order *model.Order) (err error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.Items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(order.Items)).
			Msg("failed to create order items")
		return fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// GetByID returns the order when user owns it or is an admin.
// Orders owned by someone else are reported as not found.
func (s *orderService) GetByID(ctx context.Context, user *model.User, id uuid.UUID) (*model.Order, error) {
	if user == nil {
		return nil, model.ErrUnauthorised
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil || (order.UserID != user.ID && !user.IsAdmin()) {
		s.logger.Debug().
			Str("order_id", id.String()).
			Str("user_id", user.ID).
			Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// ListForUser retrieves the user's own orders.
func (s *orderService) ListForUser(ctx context.Context, user *model.User, limit, offset int) ([]model.Order, error) {
	if user == nil {
		return nil, model.ErrUnauthorised
	}

	limit, offset = clampPage(limit, offset, 20)

	orders, err := s.orderRepo.ListByUser(ctx, user.ID, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus applies an admin status change if the lifecycle allows it.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.IsValid() {
		return nil, model.ErrInvalidStatus
	}

	current, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if current == nil {
		return nil, model.ErrOrderNotFound
	}

	if !current.Status.CanTransitionTo(status) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(current.Status)).
			Str("to", string(status)).
			Msg("order status transition rejected")
		return nil, model.ErrStatusTransition
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, current.Status, status)
	if err != nil {
		if errors.Is(err, model.ErrStatusTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return updated, nil
}
