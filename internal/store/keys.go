// Package store holds the entity-store persistence contract: the snapshot
// keys each collection serializes under and the generic collection codec.
// Domain repositories own the in-memory state; this package only moves
// JSON blobs in and out of the key-value store.
package store

// Snapshot keys. The pharmaflow_ prefix and the first six names are the
// historical contract consumed by existing deployments; the remaining
// collections follow the same convention.
const (
	KeyActiveUser = "pharmaflow_active_user"
	KeyCustomers  = "pharmaflow_customers"
	KeyProducts   = "pharmaflow_products"
	KeyUsers      = "pharmaflow_users"
	KeyBranding   = "pharmaflow_branding"
	KeyDBConfig   = "pharmaflow_db_config"

	KeyInquiries  = "pharmaflow_inquiries"
	KeyQuotations = "pharmaflow_quotations"
	KeyLeads      = "pharmaflow_leads"
	KeyBatches    = "pharmaflow_batches"
	KeyInventory  = "pharmaflow_inventory"
)
