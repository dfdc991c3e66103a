package entities

// UpdateDescriptor carries a partial ride update. Each non-nil field replaces
// the corresponding field of the ride it is applied to.
type UpdateDescriptor struct {
	Name        *string
	Maintenance *int
	WaitTime    *int
	Address     *string
	Tags        *[]string
	Status      *Status
}

// IsAnyFieldSet reports whether the descriptor would change anything.
func (d UpdateDescriptor) IsAnyFieldSet() bool {
	return d.Name != nil || d.Maintenance != nil || d.WaitTime != nil ||
		d.Address != nil || d.Tags != nil || d.Status != nil
}

// Apply merges the descriptor onto r and validates the result.
// r itself is left untouched.
func (d UpdateDescriptor) Apply(r Ride) (Ride, error) {
	out := r.Clone()
	if d.Name != nil {
		out.Name = *d.Name
	}
	if d.Maintenance != nil {
		out.Maintenance = *d.Maintenance
	}
	if d.WaitTime != nil {
		out.WaitTime = *d.WaitTime
	}
	if d.Address != nil {
		out.Address = *d.Address
	}
	if d.Tags != nil {
		out.Tags = *d.Tags
	}
	if d.Status != nil {
		out.Status = *d.Status
	}
	return NewRide(out.Name, out.Maintenance, out.WaitTime, out.Address, out.Status, out.Tags)
}
