package domain

// PrimaryLanguages 表单主语言下拉的枚举列表
var PrimaryLanguages = []string{
	"English", "Spanish", "French", "German", "Portuguese", "Italian",
	"Russian", "Chinese (Mandarin)", "Japanese", "Korean", "Hindi", "Arabic",
	"Turkish", "Vietnamese", "Thai", "Indonesian", "Dutch", "Polish",
	"Ukrainian", "Hebrew", "Greek", "Hungarian", "Czech", "Danish",
	"Finnish", "Swedish", "Norwegian", "Malay", "Filipino (Tagalog)",
	"Romanian", "Bulgarian", "Serbian", "Croatian", "Slovak", "Lithuanian",
	"Latvian", "Estonian", "Swahili", "Afrikaans", "Zulu", "Xhosa",
	"Bengali", "Urdu", "Farsi (Persian)", "Tamil", "Telugu", "Kannada",
	"Gujarati", "Punjabi", "Sinhala", "Khmer", "Lao", "Burmese", "Nepali",
	"Pashto", "Somali", "Amharic", "Other",
}

// ContactMethods 首选联系方式枚举
var ContactMethods = []ContactMethod{ContactTelegram, ContactWhatsApp}

// Countries 出生国家下拉的枚举列表，ISO 3166-1 国家的英文名，按字母序
var Countries = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola",
	"Antigua and Barbuda", "Argentina", "Armenia", "Australia", "Austria",
	"Azerbaijan", "Bahamas", "Bahrain", "Bangladesh", "Barbados",
	"Belarus", "Belgium", "Belize", "Benin", "Bhutan",
	"Bolivia", "Bosnia and Herzegovina", "Botswana", "Brazil", "Brunei",
	"Bulgaria", "Burkina Faso", "Burundi", "Cabo Verde", "Cambodia",
	"Cameroon", "Canada", "Central African Republic", "Chad", "Chile",
	"China", "Colombia", "Comoros", "Congo - Brazzaville", "Congo - Kinshasa",
	"Costa Rica", "Côte d'Ivoire", "Croatia", "Cuba", "Cyprus",
	"Czechia", "Denmark", "Djibouti", "Dominica", "Dominican Republic",
	"Ecuador", "Egypt", "El Salvador", "Equatorial Guinea", "Eritrea",
	"Estonia", "Eswatini", "Ethiopia", "Fiji", "Finland",
	"France", "Gabon", "Gambia", "Georgia", "Germany",
	"Ghana", "Greece", "Grenada", "Guatemala", "Guinea",
	"Guinea-Bissau", "Guyana", "Haiti", "Honduras", "Hungary",
	"Iceland", "India", "Indonesia", "Iran", "Iraq",
	"Ireland", "Israel", "Italy", "Jamaica", "Japan",
	"Jordan", "Kazakhstan", "Kenya", "Kiribati", "Kuwait",
	"Kyrgyzstan", "Laos", "Latvia", "Lebanon", "Lesotho",
	"Liberia", "Libya", "Liechtenstein", "Lithuania", "Luxembourg",
	"Madagascar", "Malawi", "Malaysia", "Maldives", "Mali",
	"Malta", "Marshall Islands", "Mauritania", "Mauritius", "Mexico",
	"Micronesia", "Moldova", "Monaco", "Mongolia", "Montenegro",
	"Morocco", "Mozambique", "Myanmar (Burma)", "Namibia", "Nauru",
	"Nepal", "Netherlands", "New Zealand", "Nicaragua", "Niger",
	"Nigeria", "North Korea", "North Macedonia", "Norway", "Oman",
	"Pakistan", "Palau", "Panama", "Papua New Guinea", "Paraguay",
	"Peru", "Philippines", "Poland", "Portugal", "Qatar",
	"Romania", "Russia", "Rwanda", "Saint Kitts and Nevis", "Saint Lucia",
	"Saint Vincent and the Grenadines", "Samoa", "San Marino",
	"São Tomé and Príncipe", "Saudi Arabia", "Senegal", "Serbia",
	"Seychelles", "Sierra Leone", "Singapore", "Slovakia", "Slovenia",
	"Solomon Islands", "Somalia", "South Africa", "South Korea",
	"South Sudan", "Spain", "Sri Lanka", "Sudan", "Suriname",
	"Sweden", "Switzerland", "Syria", "Taiwan", "Tajikistan",
	"Tanzania", "Thailand", "Timor-Leste", "Togo", "Tonga",
	"Trinidad and Tobago", "Tunisia", "Turkey", "Turkmenistan", "Tuvalu",
	"Uganda", "Ukraine", "United Arab Emirates", "United Kingdom",
	"United States", "Uruguay", "Uzbekistan", "Vanuatu",
	"Vatican City", "Venezuela", "Vietnam", "Yemen", "Zambia", "Zimbabwe",
}
