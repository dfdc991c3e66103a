package a

import "context"

type Ride struct{ Name string }

type Store interface {
	SaveRides(ctx context.Context, rides []Ride) error
	LogCommand(ctx context.Context, input string) error
}

func saveEach(ctx context.Context, s Store, rides []Ride) {
	for i := range rides {
		s.SaveRides(ctx, rides[:i+1]) // want "SaveRides called inside loop"
	}
}

func nested(ctx context.Context, s Store, batches [][]Ride) {
	for _, batch := range batches {
		for range batch {
			s.SaveRides(ctx, batch) // want "SaveRides called inside loop"
		}
	}
}

func logEach(ctx context.Context, s Store, inputs []string) {
	// One log row per command is expected.
	for _, in := range inputs {
		s.LogCommand(ctx, in)
	}
}

func saveOnce(ctx context.Context, s Store, rides []Ride) {
	for range rides {
	}
	s.SaveRides(ctx, rides)
}
