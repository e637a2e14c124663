package domain

import (
	"fmt"
	"time"
)

// MenuDaytime representa uma faixa de horário configurada (dim_menu_daytimes),
// ex: "Lunch" de 12:30:00 até 14:29:59. Os limites são inclusivos nas duas
// pontas e as faixas não precisam cobrir as 24 horas do dia.
type MenuDaytime struct {
	DaytimeID int    `json:"daytime_id"`
	Label     string `json:"daytime_label"`
	StartTime string `json:"start_time"` // Formato HH:MM:SS
	EndTime   string `json:"end_time"`   // Formato HH:MM:SS
}

// StartSeconds retorna o início da faixa em segundos desde a meia-noite
func (d MenuDaytime) StartSeconds() (int, error) {
	return parseTimeOfDay(d.StartTime)
}

// EndSeconds retorna o fim da faixa em segundos desde a meia-noite
func (d MenuDaytime) EndSeconds() (int, error) {
	return parseTimeOfDay(d.EndTime)
}

// SecondsOfDay converte um timestamp para segundos desde a meia-noite
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func parseTimeOfDay(value string) (int, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return 0, fmt.Errorf("horário inválido %q: %w", value, err)
	}
	return SecondsOfDay(t), nil
}
