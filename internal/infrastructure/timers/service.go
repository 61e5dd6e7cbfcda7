// Package timers exposes pkg/timer through the usecase port.
package timers

import (
	"smartcheckout/internal/usecase/interfaces"
	"smartcheckout/pkg/timer"
)

type Service struct {
	svc *timer.Service
}

func New() *Service {
	return &Service{svc: timer.New()}
}

var _ interfaces.ITimerService = (*Service)(nil)

func (s *Service) Start(seconds int, onTick func(remaining int), onExpire func()) interfaces.ITimerHandle {
	return s.svc.Start(seconds, onTick, onExpire)
}
