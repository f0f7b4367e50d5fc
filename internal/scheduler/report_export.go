// Package scheduler contém os serviços de agendamento de tarefas recorrentes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/zyra-app/zyra-api/internal/config"
	"github.com/zyra-app/zyra-api/internal/usecases/reporting"
)

type ReportExportConfig struct {
	CronSchedule string
	OutputDir    string
	Format       string
	Enabled      bool
}

// ReportExportService agenda a geração periódica de relatórios e grava o
// resultado no diretório configurado.
type ReportExportService struct {
	scheduler          *gocron.Scheduler
	exporter           reporting.Exporter
	config             ReportExportConfig
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunError       error
}

func NewReportExportService(
	exporter reporting.Exporter,
	cfg *config.Config,
) *ReportExportService {
	exportConfig := ReportExportConfig{
		CronSchedule: cfg.ReportExport.CronSchedule, // Default: 7h da manhã todos os dias
		OutputDir:    cfg.ReportExport.OutputDir,
		Format:       cfg.ReportExport.Format,
		Enabled:      cfg.ReportExport.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"output_dir":    exportConfig.OutputDir,
		"format":        exportConfig.Format,
	}).Info("Configuração do agendador de exportação de relatórios carregada")

	return &ReportExportService{
		scheduler: scheduler,
		exporter:  exporter,
		config:    exportConfig,
	}
}

func (s *ReportExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de exportação de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de exportação de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunExport(); err != nil {
			logrus.WithError(err).Error("Erro na exportação agendada de relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de relatórios: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de exportação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunExport gera o relatório no formato configurado e grava em disco.
// Execuções simultâneas são ignoradas.
func (s *ReportExportService) RunExport() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.running {
		logrus.Warn("Exportação agendada de relatório já está em execução")
		return nil
	}

	s.running = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.running = false
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando exportação agendada de relatório")

	format, err := reporting.ParseFormat(s.config.Format)
	if err != nil {
		s.lastRunError = err
		logrus.WithError(err).Error("Formato de exportação inválido na configuração")
		return err
	}

	result, err := s.exporter.Export(format)
	if err != nil {
		s.lastRunError = err
		logrus.WithError(err).Error("Erro ao gerar relatório agendado")
		return err
	}

	path, err := reporting.WriteFile(s.config.OutputDir, result)
	if err != nil {
		s.lastRunError = err
		logrus.WithError(err).Error("Erro ao gravar relatório agendado em disco")
		return err
	}

	s.lastRunError = nil

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(result.Content),
	}).Info("Exportação agendada de relatório concluída")

	return nil
}

// TriggerManualRun inicia manualmente uma exportação de relatório
func (s *ReportExportService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Exportação de relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando exportação manual de relatório")
	go s.RunExport()
}

// Status retorna informações sobre a última execução do cron
func (s *ReportExportService) Status() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]interface{}{
		"running":       s.running,
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"format":        s.config.Format,
	}

	if !s.lastRunStartedAt.IsZero() {
		status["last_run_started_at"] = s.lastRunStartedAt.Format(time.RFC3339)
	}
	if !s.lastRunCompletedAt.IsZero() {
		status["last_run_completed_at"] = s.lastRunCompletedAt.Format(time.RFC3339)
	}
	if s.lastRunError != nil {
		status["last_run_error"] = s.lastRunError.Error()
	}

	return status
}
