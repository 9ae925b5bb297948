package workout

import (
	"fmt"
	"math"
)

type constructor struct {
	kind  Kind
	arity int
	build func(args []float64) (Workout, error)
}

var constructors = map[string]constructor{
	"RUN": {
		kind:  KindRunning,
		arity: 3,
		build: func(args []float64) (Workout, error) {
			action, err := count("action", args[0])
			if err != nil {
				return nil, err
			}
			return NewRunning(action, args[1], args[2])
		},
	},
	"WLK": {
		kind:  KindWalking,
		arity: 4,
		build: func(args []float64) (Workout, error) {
			action, err := count("action", args[0])
			if err != nil {
				return nil, err
			}
			return NewWalking(action, args[1], args[2], args[3])
		},
	},
	"SWM": {
		kind:  KindSwimming,
		arity: 5,
		build: func(args []float64) (Workout, error) {
			action, err := count("action", args[0])
			if err != nil {
				return nil, err
			}
			laps, err := count("pool laps", args[4])
			if err != nil {
				return nil, err
			}
			return NewSwimming(action, args[1], args[2], args[3], laps)
		},
	},
}

// ParseKind maps a sensor type code to its workout kind.
func ParseKind(code string) (Kind, error) {
	c, ok := constructors[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	return c.kind, nil
}

// Build binds args positionally to the constructor registered for code.
func Build(code string, args []float64) (Workout, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(args) != c.arity {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d", ErrInvalidArity, code, c.arity, len(args))
	}
	return c.build(args)
}

func count(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidMeasurement, name, v)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s %v is negative", ErrInvalidMeasurement, name, v)
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s %v is out of range", ErrInvalidMeasurement, name, v)
	}
	return int(v), nil
}
