package workout

import "fmt"

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message is the computed summary of a single workout.
type Message struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

func Info(w Workout) Message {
	return Message{
		TrainingType: w.Kind().String(),
		Duration:     w.Duration(),
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

func (m Message) String() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
