package domain

import "time"

// PushFailure registra a rejeição de um registro individual pelo destino.
// Key identifica o registro (mobile_id ou daytime_id/item_id).
type PushFailure struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// SyncReport é o relatório final de uma execução de pipeline em lote:
// quantas linhas entraram, quantas saíram e quais envios falharam.
// Falhas individuais de envio não abortam a execução.
type SyncReport struct {
	InputRows  int           `json:"input_rows"`
	OutputRows int           `json:"output_rows"`
	Pushed     int           `json:"pushed"`
	Unassigned int           `json:"unassigned"`
	Failures   []PushFailure `json:"failures,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Summary retorna os contadores do relatório em um mapa para logs e status
func (r *SyncReport) Summary() map[string]any {
	return map[string]any{
		"input_rows":  r.InputRows,
		"output_rows": r.OutputRows,
		"pushed":      r.Pushed,
		"unassigned":  r.Unassigned,
		"failures":    len(r.Failures),
		"duration_ms": r.FinishedAt.Sub(r.StartedAt).Milliseconds(),
	}
}
