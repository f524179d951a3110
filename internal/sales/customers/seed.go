package customers

// Seed returns the default customer registry used when no snapshot exists.
func Seed() []Customer {
	return []Customer{
		{ID: "C1", Name: "St. Mary's General Hospital", ContactPerson: "Dr. Sarah Wilson", Email: "wilson@stmarys.org", Phone: "+1 555-0101", Type: TypeHospital, Address: "123 Medical Plaza, NY"},
		{ID: "C2", Name: "HealthFirst Pharmacy", ContactPerson: "Mark Miller", Email: "mark@healthfirst.com", Phone: "+1 555-0102", Type: TypePharmacy, Address: "456 Main St, CA"},
		{ID: "C3", Name: "Global Pharma Distributors", ContactPerson: "Emma Davis", Email: "e.davis@globaldist.com", Phone: "+1 555-0103", Type: TypeDistributor, Address: "789 Logistics Way, NJ"},
	}
}
