// Package carrier provides the outbound adapter for physical shipment dispatch.
// Dispatch is recorded as a consignment row; the carrier integration picks
// consignments up from there.
package carrier

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsignmentDTO represents a handover of one order to the carrier.
// Each dispatch gets its own tracking identifier, independent of order ids.
type ConsignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      int       `gorm:"uniqueIndex"`
	DispatchedAt time.Time
}

// TableName specifies the database table name for consignments.
func (ConsignmentDTO) TableName() string {
	return "consignments"
}

// CarrierShipmentService implements ShipmentService against the carrier's
// consignment store. It performs the order's Ship transition before recording
// the consignment, so an order the status refuses to ship never reaches the
// carrier, and the unique order index keeps a double dispatch out even under
// concurrent requests.
type CarrierShipmentService struct {
	db *gorm.DB
}

// NewCarrierShipmentService creates a shipment service backed by the given
// database connection. When called inside a unit of work, pass the
// transaction handle so the consignment commits atomically with the order.
func NewCarrierShipmentService(db *gorm.DB) *CarrierShipmentService {
	return &CarrierShipmentService{db: db}
}

// Ship transitions the order to Shipped and records the consignment.
// A refused transition propagates unchanged and nothing is recorded.
func (s *CarrierShipmentService) Ship(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := aggregate.Ship(); err != nil {
		return err
	}

	dto := ConsignmentDTO{
		ID:           uuid.New(),
		OrderID:      aggregate.ID(),
		DispatchedAt: time.Now().UTC(),
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}
