package enum

// AuditAction identifies the kind of event recorded in the audit log
type AuditAction string

const (
	ActionSale            AuditAction = "sale"
	ActionStockAdjustment AuditAction = "stock_adjustment"
	ActionProductAdded    AuditAction = "product_added"
	ActionProductUpdated  AuditAction = "product_updated"
	ActionLogin           AuditAction = "login"
	ActionLogout          AuditAction = "logout"
	ActionCustomerAdded   AuditAction = "customer_added"
	ActionDebtUpdated     AuditAction = "debt_updated"
)

// Valid reports whether the action is a known value
func (a AuditAction) Valid() bool {
	switch a {
	case ActionSale, ActionStockAdjustment, ActionProductAdded, ActionProductUpdated,
		ActionLogin, ActionLogout, ActionCustomerAdded, ActionDebtUpdated:
		return true
	}
	return false
}

func (a AuditAction) String() string {
	return string(a)
}
