package entities

// Line is a production line. Its work-center sequence is carried by the
// versioned LineWorkCenterRoute rows, not by the line itself.
type Line struct {
	ID      int
	Name    string
	Enabled bool
}

// ProductAvailability links a product to a line that may produce it.
type ProductAvailability struct {
	ID        int
	ProductID int
	LineID    int
	Enabled   bool
}
