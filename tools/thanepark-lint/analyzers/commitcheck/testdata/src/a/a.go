package a

type Ride struct{ Name string }

type Model interface {
	AddRide(r Ride) error
	DeleteRide(r Ride) error
	ResetData(rides []Ride) error
	ShowAll()
	Commit()
}

func addWithoutCommit(m Model, r Ride) error {
	return m.AddRide(r) // want "AddRide without Commit in addWithoutCommit"
}

func clearWithoutCommit(m Model) error {
	if err := m.ResetData(nil); err != nil { // want "ResetData without Commit in clearWithoutCommit"
		return err
	}
	m.ShowAll()
	return nil
}

func deleteAndCommit(m Model, r Ride) error {
	if err := m.DeleteRide(r); err != nil {
		return err
	}
	m.Commit()
	return nil
}

func readOnly(m Model) {
	m.ShowAll()
}
