package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/config"
	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/usecases/chatting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// SessionSweepConfig representa a configuração do agendador de limpeza de sessões
type SessionSweepConfig struct {
	CronSchedule string
	Enabled      bool
}

// SessionSweepService remove periodicamente sessões de chat expiradas e
// registra o tamanho do cache
type SessionSweepService struct {
	scheduler     *gocron.Scheduler
	config        SessionSweepConfig
	sessions      *chatting.SessionStore
	sweepMutex    sync.Mutex
	lastSweepAt   time.Time
	lastSweepSize int
}

// NewSessionSweepService cria o serviço de limpeza de sessões
func NewSessionSweepService(sessions *chatting.SessionStore, appConfig *config.Config) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: appConfig.SessionSweep.CronSchedule,
		Enabled:      appConfig.SessionSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"enabled":       sweepConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler: scheduler,
		config:    sweepConfig,
		sessions:  sessions,
	}
}

// Start inicia o agendador
func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSweep()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop interrompe o agendador
func (s *SessionSweepService) Stop() {
	s.scheduler.Stop()
	logrus.Info("Agendador de limpeza de sessões interrompido")
}

// RunSweep executa a limpeza imediatamente
func (s *SessionSweepService) RunSweep() {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	before := s.sessions.ActiveSessions()
	s.sessions.DeleteExpired()
	after := s.sessions.ActiveSessions()

	s.lastSweepAt = time.Now()
	s.lastSweepSize = after

	logrus.WithFields(logrus.Fields{
		"sessions_before": before,
		"sessions_after":  after,
		"removed":         before - after,
	}).Info("Limpeza de sessões de chat executada")
}

// LastSweep retorna o horário e o tamanho do cache na última execução
func (s *SessionSweepService) LastSweep() (time.Time, int) {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()
	return s.lastSweepAt, s.lastSweepSize
}
