package services

// Policy controls which blog mutations demand an authenticated owner.
// Create always requires a valid token. Update and delete are permissive in
// the default configuration, matching the current API contract; flipping a
// field tightens the contract without touching the mutation flow.
type Policy struct {
	OwnerUpdate bool
	OwnerDelete bool
}

func DefaultPolicy() Policy {
	return Policy{}
}
