package usecase

import (
	"health-info-bot/internal/bot"
	"health-info-bot/internal/memory/repository"
	pkgLog "health-info-bot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	who        bot.WHOGateway
	translator bot.Translator
	detector   bot.LanguageDetector
	nlu        bot.IntentDetector
}

// New creates a new bot UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	who bot.WHOGateway,
	translator bot.Translator,
	detector bot.LanguageDetector,
	nlu bot.IntentDetector,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		who:        who,
		translator: translator,
		detector:   detector,
		nlu:        nlu,
	}
}
