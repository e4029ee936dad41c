package domain

import "strings"

// Cost - рассчитанная стоимость обслуживания заказа буксиром.
// Ключ составной: (TugboatID, OrderID)
type Cost struct {
	TugboatID       string  `json:"tugboatId" db:"tugboat_id"`
	OrderID         string  `json:"orderId" db:"order_id"`
	Time            float64 `json:"time" db:"time"`
	Distance        float64 `json:"distance" db:"distance"`
	ConsumptionRate float64 `json:"consumptionRate" db:"consumption_rate"`
	Cost            float64 `json:"cost" db:"cost"`
	TotalLoad       float64 `json:"totalLoad" db:"total_load"`
}

// CostKey - структурированный составной ключ
type CostKey struct {
	TugboatID string
	OrderID   string
}

// String возвращает ключ в строковом формате "tugboatId-orderId"
func (k CostKey) String() string {
	return k.TugboatID + "-" + k.OrderID
}

// ParseCostKey разбирает строковый ключ "tugboatId-orderId" по ПЕРВОМУ дефису.
// Для идентификаторов буксира с дефисом результат неоднозначен.
func ParseCostKey(s string) (CostKey, bool) {
	tugboatID, orderID, ok := strings.Cut(s, "-")
	if !ok || tugboatID == "" || orderID == "" {
		return CostKey{}, false
	}
	return CostKey{TugboatID: tugboatID, OrderID: orderID}, true
}
