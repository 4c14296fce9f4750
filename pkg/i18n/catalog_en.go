package i18n

var tableEN = map[Key]string{
	KeyFullNameRequired:    "Full name is required.",
	KeyEmailRequired:       "Email is required.",
	KeyPhoneRequired:       "Phone number is required.",
	KeyWhyJoinRequired:     "Please tell us why you want to join.",
	KeyEmailValidationErr:  "Please enter a valid email address.",
	KeyFileValidationErr:   "Please select at least %d images (%d selected).",
	KeyHasAccountErr:       "Please specify if you have a platform account.",
	KeyIsVerifiedErr:       "Please specify if your platform account is verified.",
	KeyVerifiedPaymentErr:  "Please specify if you have verified a payment method.",
	KeyPreferredContactErr: "Please choose a preferred contact method.",
	KeyUnknownSubmitErr:    "An unknown error occurred.",
	KeyUploadStarting:      "Starting upload...",
	KeyUploadProgress:      "Uploading image %d of %d...",
	KeyUploadFinishing:     "Finishing submission...",
	KeyUploadFileErr:       "Failed to upload file: %s.",
	KeySubmissionSuccess:   "Application submitted successfully! We will contact you soon.",
	KeyNeedMoreImages:      "(Need %d more)",

	KeyHeroTitle:       "WE HELP CREATORS REACH THE TOP 1%.",
	KeyHeroSubtitle:    "Focus on your content, we'll handle the rest. Expert management, promotion, and growth strategies.",
	KeyAboutTitle:      "About Us",
	KeyAboutBody:       "Vivid is a leading management agency laser-focused on empowering creators to achieve peak success. We specialize in navigating the unique landscape of the creator economy, providing dedicated support and expert strategies designed to maximize your earnings and audience growth.",
	KeyServicesTitle:   "Our Services",
	KeyServicesBody:    "Account management, content strategy, promotion across every major channel, chat operations and brand deals.",
	KeyWhyUsTitle:      "Why Us",
	KeyWhyUsBody:       "A dedicated team, transparent reporting, and growth plans built around you.",
	KeyHowItWorksTitle: "How It Works",
	KeyHowItWorksBody:  "Apply with a short form, pass a quick review call, and start earning with a personal manager within days.",
	KeyFAQTitle:        "Frequently Asked Questions",
	KeyApplyNow:        "Apply Now",
}
