package enum

// SaleStatus tracks the lifecycle of a ledger record. Records are never
// physically removed; deletion only flips the status.
type SaleStatus int

const (
	SaleStatusActive  SaleStatus = 0
	SaleStatusDeleted SaleStatus = 2
)

func (s SaleStatus) String() string {
	switch s {
	case SaleStatusDeleted:
		return "Deleted"
	default:
		return "Active"
	}
}

// IsDeleted reports whether the record has been soft-deleted.
func (s SaleStatus) IsDeleted() bool {
	return s == SaleStatusDeleted
}
