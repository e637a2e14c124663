// Package recommending implementa o motor de recomendação de cardápio por
// faixa de horário: ranking top-N de itens por volume de vendas em cada
// faixa configurada.
package recommending

import (
	"errors"
	"fmt"

	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

// ErrNoDaytimesConfigured indica que não há faixas de horário configuradas.
// Falha de pré-condição: sem faixas não existe agregação possível.
var ErrNoDaytimesConfigured = errors.New("nenhuma faixa de horário configurada")

// DaytimeWindow é uma faixa de horário pré-resolvida para segundos do dia
type DaytimeWindow struct {
	DaytimeID    int
	StartSeconds int
	EndSeconds   int
}

// DaytimeWindows é o conjunto ordenado de faixas usado na atribuição
type DaytimeWindows []DaytimeWindow

// NewDaytimeWindows resolve as faixas configuradas uma única vez. Horário
// inválido na configuração aborta a execução (entrada malformada).
func NewDaytimeWindows(daytimes []*domain.MenuDaytime) (DaytimeWindows, error) {
	if len(daytimes) == 0 {
		return nil, ErrNoDaytimesConfigured
	}

	windows := make(DaytimeWindows, 0, len(daytimes))
	for _, daytime := range daytimes {
		start, err := daytime.StartSeconds()
		if err != nil {
			return nil, fmt.Errorf("daytime_id %d: %w", daytime.DaytimeID, err)
		}
		end, err := daytime.EndSeconds()
		if err != nil {
			return nil, fmt.Errorf("daytime_id %d: %w", daytime.DaytimeID, err)
		}
		windows = append(windows, DaytimeWindow{
			DaytimeID:    daytime.DaytimeID,
			StartSeconds: start,
			EndSeconds:   end,
		})
	}

	return windows, nil
}

// Assign retorna o daytime_id da primeira faixa cujo intervalo inclusivo
// [start, end] contém o horário. Varredura linear na ordem configurada: com
// faixas sobrepostas a primeira vence, isso é contrato com o operador. Um
// horário fora de todas as faixas não é erro, a venda apenas fica de fora da
// agregação.
func (w DaytimeWindows) Assign(secondsOfDay int) (int, bool) {
	for _, window := range w {
		if secondsOfDay >= window.StartSeconds && secondsOfDay <= window.EndSeconds {
			return window.DaytimeID, true
		}
	}
	return 0, false
}
