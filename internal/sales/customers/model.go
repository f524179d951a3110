package customers

// CustomerType classifies the buying organization.
type CustomerType string

const (
	TypeHospital    CustomerType = "Hospital"
	TypePharmacy    CustomerType = "Pharmacy"
	TypeDistributor CustomerType = "Distributor"
	TypeClinic      CustomerType = "Clinic"
)

// Customer is a registered buying organization. Records are immutable after
// creation; inquiries and quotations reference them by id and keep their own
// name snapshots.
//
// JSON tags follow the historical snapshot schema (camelCase) so existing
// pharmaflow_customers blobs rehydrate unchanged.
type Customer struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ContactPerson string       `json:"contactPerson"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Type          CustomerType `json:"type"`
	Address       string       `json:"address"`
}
