package i18n

type Lang string

const (
	LangArabic  Lang = "ar"
	LangEnglish Lang = "en"
)

const (
	MsgNetworkError       = "error.network"
	MsgInvalidCredentials = "error.invalid_credentials"
	MsgServerError        = "error.server"
	MsgUnauthenticated    = "error.unauthenticated"
	MsgUnauthorized       = "error.unauthorized"
)

var messages = map[string]map[Lang]string{
	MsgNetworkError: {
		LangEnglish: "could not reach the server, check your connection",
		LangArabic:  "تعذر الوصول إلى الخادم، تحقق من اتصالك",
	},
	MsgInvalidCredentials: {
		LangEnglish: "invalid email or password",
		LangArabic:  "البريد الإلكتروني أو كلمة المرور غير صحيحة",
	},
	MsgServerError: {
		LangEnglish: "the server returned an unexpected error",
		LangArabic:  "أعاد الخادم خطأ غير متوقع",
	},
	MsgUnauthenticated: {
		LangEnglish: "your session has expired, please sign in again",
		LangArabic:  "انتهت صلاحية جلستك، يرجى تسجيل الدخول مرة أخرى",
	},
	MsgUnauthorized: {
		LangEnglish: "you do not have permission for this operation",
		LangArabic:  "ليس لديك صلاحية لتنفيذ هذه العملية",
	},
}

// Catalog resolves message keys in one display language. The console
// defaults to Arabic, matching the public site.
type Catalog struct {
	lang Lang
}

func NewCatalog(lang Lang) *Catalog {
	if lang != LangEnglish {
		lang = LangArabic
	}
	return &Catalog{lang: lang}
}

func (c *Catalog) Lang() Lang {
	return c.lang
}

// T returns the translation for key, falling back to the key itself when
// no translation exists.
func (c *Catalog) T(key string) string {
	if byLang, ok := messages[key]; ok {
		if msg, ok := byLang[c.lang]; ok {
			return msg
		}
	}
	return key
}
