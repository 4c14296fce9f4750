package i18n

var tableES = map[Key]string{
	KeyFullNameRequired:    "El nombre completo es obligatorio.",
	KeyEmailRequired:       "El correo electrónico es obligatorio.",
	KeyPhoneRequired:       "El número de teléfono es obligatorio.",
	KeyWhyJoinRequired:     "Cuéntanos por qué quieres unirte.",
	KeyEmailValidationErr:  "Introduce una dirección de correo válida.",
	KeyFileValidationErr:   "Selecciona al menos %d imágenes (%d seleccionadas).",
	KeyHasAccountErr:       "Indica si tienes una cuenta en la plataforma.",
	KeyIsVerifiedErr:       "Indica si tu cuenta está verificada.",
	KeyVerifiedPaymentErr:  "Indica si has verificado un método de pago.",
	KeyPreferredContactErr: "Elige un método de contacto preferido.",
	KeyUnknownSubmitErr:    "Ocurrió un error desconocido.",
	KeyUploadStarting:      "Iniciando la subida...",
	KeyUploadProgress:      "Subiendo imagen %d de %d...",
	KeyUploadFinishing:     "Finalizando el envío...",
	KeyUploadFileErr:       "No se pudo subir el archivo: %s.",
	KeySubmissionSuccess:   "¡Solicitud enviada con éxito! Te contactaremos pronto.",
	KeyNeedMoreImages:      "(Faltan %d)",

	KeyHeroTitle:       "AYUDAMOS A CREADORAS A LLEGAR AL TOP 1%.",
	KeyHeroSubtitle:    "Concéntrate en tu contenido, nosotros nos encargamos del resto. Gestión experta, promoción y estrategias de crecimiento.",
	KeyAboutTitle:      "Sobre Nosotros",
	KeyAboutBody:       "Vivid es una agencia de gestión líder enfocada en impulsar a las creadoras hacia el máximo éxito. Nos especializamos en la economía de creadores, con soporte dedicado y estrategias expertas para maximizar tus ingresos y tu audiencia.",
	KeyServicesTitle:   "Nuestros Servicios",
	KeyServicesBody:    "Gestión de cuentas, estrategia de contenido, promoción en todos los canales, operación de chats y acuerdos de marca.",
	KeyWhyUsTitle:      "Por Qué Nosotros",
	KeyWhyUsBody:       "Un equipo dedicado, reportes transparentes y planes de crecimiento hechos a tu medida.",
	KeyHowItWorksTitle: "Cómo Funciona",
	KeyHowItWorksBody:  "Postúlate con un formulario corto, pasa una breve llamada de revisión y empieza a ganar con un manager personal en días.",
	KeyFAQTitle:        "Preguntas Frecuentes",
	KeyApplyNow:        "Postúlate Ahora",
}
