package pricing

import "restaurant/internal/core/domain/model/kernel"

// FeeBreakdown itemizes a computed delivery fee. Every component is always
// present; components that did not apply are zero. When Waived is true the
// fee was dropped by a free-delivery threshold and every component,
// including Total, is zero.
type FeeBreakdown struct {
	BaseFee           kernel.Money `json:"base_fee"`
	DistanceFee       kernel.Money `json:"distance_fee"`
	PeakSurcharge     kernel.Money `json:"peak_surcharge"`
	WeekendSurcharge  kernel.Money `json:"weekend_surcharge"`
	HolidaySurcharge  kernel.Money `json:"holiday_surcharge"`
	MinOrderSurcharge kernel.Money `json:"min_order_surcharge"`
	Total             kernel.Money `json:"total"`
	Waived            bool         `json:"waived"`
}
