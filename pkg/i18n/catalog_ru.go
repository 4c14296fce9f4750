package i18n

// Русский каталог переведён частично: отсутствующие ключи берутся из en.
var tableRU = map[Key]string{
	KeyFullNameRequired:   "Укажите полное имя.",
	KeyEmailRequired:      "Укажите электронную почту.",
	KeyPhoneRequired:      "Укажите номер телефона.",
	KeyWhyJoinRequired:    "Расскажите, почему вы хотите присоединиться.",
	KeyEmailValidationErr: "Введите корректный адрес электронной почты.",
	KeyFileValidationErr:  "Выберите не менее %d изображений (выбрано: %d).",
	KeyHasAccountErr:      "Укажите, есть ли у вас аккаунт на платформе.",
	KeyIsVerifiedErr:      "Укажите, верифицирован ли ваш аккаунт.",
	KeyVerifiedPaymentErr: "Укажите, подтверждён ли способ выплат.",
	KeyUnknownSubmitErr:   "Произошла неизвестная ошибка.",
	KeyUploadStarting:     "Начинаем загрузку...",
	KeyUploadProgress:     "Загрузка изображения %d из %d...",
	KeyUploadFinishing:    "Завершаем отправку...",
	KeyUploadFileErr:      "Не удалось загрузить файл: %s.",
	KeySubmissionSuccess:  "Заявка успешно отправлена! Мы скоро свяжемся с вами.",
	KeyNeedMoreImages:     "(Нужно ещё %d)",

	KeyHeroTitle:    "МЫ ПОМОГАЕМ КРЕАТОРАМ ВОЙТИ В ТОП 1%.",
	KeyHeroSubtitle: "Занимайтесь контентом — остальное мы берём на себя. Профессиональный менеджмент, продвижение и стратегии роста.",
	KeyAboutTitle:   "О нас",
	KeyFAQTitle:     "Частые вопросы",
	KeyApplyNow:     "Оставить заявку",
}
