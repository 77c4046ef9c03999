package bot

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -aux_files=github.com/DanRulev/vocaquiz/internal/bot=quiz.go,github.com/DanRulev/vocaquiz/internal/bot=flashcards.go,github.com/DanRulev/vocaquiz/internal/bot=settings.go

type ServiceI interface {
	QuizSI
	FlashcardSI
	SettingsSI
}
