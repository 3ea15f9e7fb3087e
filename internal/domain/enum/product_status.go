package enum

// ProductStatus represents a product's lifecycle state.
// Products are never physically deleted; archiving removes them from
// active inventory while historical sales keep their captured name.
type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
)

func (s ProductStatus) String() string {
	return string(s)
}
