package utils

import "time"

// DateOnly descarta o horário de um timestamp, normalizando para a
// meia-noite UTC. Toda a aritmética de recência usa datas, nunca horários.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween retorna o número de dias inteiros entre duas datas já
// normalizadas com DateOnly
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
