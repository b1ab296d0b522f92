package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/serranorte/serraria-api/internal/application/alerts"
)

// Scheduler roda a varredura periódica de estoque baixo.
type Scheduler struct {
	cron     *cron.Cron
	alertsUC *alerts.UseCase
	spec     string
	log      zerolog.Logger
}

// New cria o agendador. spec é uma expressão cron de 5 campos; vazia
// desativa a varredura.
func New(spec string, alertsUC *alerts.UseCase, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		alertsUC: alertsUC,
		spec:     spec,
		log:      log,
	}
}

// Start registra o job e inicia o cron.
func (s *Scheduler) Start() {
	if s.spec == "" {
		s.log.Info().Msg("agendador desativado (ALERTS_CRON vazio)")
		return
	}
	if _, err := s.cron.AddFunc(s.spec, s.runSweep); err != nil {
		s.log.Error().Err(err).Str("spec", s.spec).Msg("falha ao agendar varredura de estoque baixo")
		return
	}
	s.log.Info().Str("spec", s.spec).Msg("agendador iniciado")
	s.cron.Start()
}

// Stop para o cron e espera os jobs em andamento.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("parando agendador")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	s.alertsUC.SweepAll(ctx)
}
