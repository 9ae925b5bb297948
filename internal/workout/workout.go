package workout

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownWorkoutType = errors.New("unrecognized workout type")
	ErrInvalidArity       = errors.New("invalid argument count")
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

const (
	mInKm  = 1000
	minInH = 60

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesSpeedMultiplier = 18
	runningCaloriesSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesSpeedShift       = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

type Kind int

const (
	KindRunning Kind = iota + 1
	KindWalking
	KindSwimming
)

func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Workout is implemented by the running, walking and swimming variants only.
// Values come from the constructors and are read-only after validation.
type Workout interface {
	Kind() Kind
	Action() int
	Duration() float64
	Weight() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64

	sealed()
}

// training carries the measurements every workout shares. It has no
// SpentCalories, so a variant must define one to satisfy Workout.
type training struct {
	action   int
	hours    float64
	weightKg float64

	step float64
}

func (t training) Action() int       { return t.action }
func (t training) Duration() float64 { return t.hours }
func (t training) Weight() float64   { return t.weightKg }
func (training) sealed()             {}

func (t training) Distance() float64 {
	return float64(t.action) * t.step / mInKm
}

func (t training) MeanSpeed() float64 {
	return t.Distance() / t.hours
}

func (t training) validate() error {
	if t.action < 0 {
		return fmt.Errorf("%w: action count %d is negative", ErrInvalidMeasurement, t.action)
	}
	if err := positive("duration", t.hours); err != nil {
		return err
	}
	return positive("weight", t.weightKg)
}

type running struct {
	training
}

func NewRunning(action int, hours, weightKg float64) (Workout, error) {
	r := running{training{action: action, hours: hours, weightKg: weightKg, step: lenStep}}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (running) Kind() Kind { return KindRunning }

func (r running) SpentCalories() float64 {
	return (runningCaloriesSpeedMultiplier*r.MeanSpeed() - runningCaloriesSpeedShift) *
		r.weightKg / mInKm * (r.hours * minInH)
}

type walking struct {
	training
	heightCm float64
}

func NewWalking(action int, hours, weightKg, heightCm float64) (Workout, error) {
	w := walking{
		training: training{action: action, hours: hours, weightKg: weightKg, step: lenStep},
		heightCm: heightCm,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	if err := positive("height", heightCm); err != nil {
		return nil, err
	}
	return w, nil
}

func (walking) Kind() Kind { return KindWalking }

func (w walking) Height() float64 { return w.heightCm }

func (w walking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.weightKg +
		floorDiv(speed*speed, w.heightCm)*walkingSpeedHeightMultiplier*w.weightKg) *
		(w.hours * minInH)
}

type swimming struct {
	training
	poolLengthM float64
	poolLaps    int
}

func NewSwimming(action int, hours, weightKg, poolLengthM float64, poolLaps int) (Workout, error) {
	s := swimming{
		training:    training{action: action, hours: hours, weightKg: weightKg, step: swimmingLenStep},
		poolLengthM: poolLengthM,
		poolLaps:    poolLaps,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if err := positive("pool length", poolLengthM); err != nil {
		return nil, err
	}
	if poolLaps < 0 {
		return nil, fmt.Errorf("%w: pool laps %d is negative", ErrInvalidMeasurement, poolLaps)
	}
	return s, nil
}

func (swimming) Kind() Kind { return KindSwimming }

func (s swimming) PoolLength() float64 { return s.poolLengthM }
func (s swimming) PoolLaps() int       { return s.poolLaps }

// MeanSpeed is derived from the pool geometry; the action count only feeds Distance.
func (s swimming) MeanSpeed() float64 {
	return s.poolLengthM * float64(s.poolLaps) / mInKm / s.hours
}

func (s swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesSpeedShift) * swimmingCaloriesWeightMultiplier * s.weightKg
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidMeasurement, name, v)
	}
	return nil
}
