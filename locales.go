package glotlint

// Gettext-style plural index functions. Each maps a cardinal value to the
// grammatical-number index that governs it.

// pluralOneForm: languages without plural morphology (Japanese, Korean,
// Chinese, Thai, Vietnamese).
func pluralOneForm(n int) int {
	return 0
}

// pluralTwoFormsNotOne: the common Germanic/Romance rule (English, German,
// Spanish, Italian, Dutch): 1 is singular, everything else plural.
func pluralTwoFormsNotOne(n int) int {
	if n != 1 {
		return 1
	}
	return 0
}

// pluralTwoFormsGreaterOne: French and Brazilian Portuguese treat 0 and 1
// as singular.
func pluralTwoFormsGreaterOne(n int) int {
	if n > 1 {
		return 1
	}
	return 0
}

// pluralRussian: three forms shared by Russian, Ukrainian, Serbian,
// Croatian.
func pluralRussian(n int) int {
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

// pluralCzech: three forms for Czech and Slovak.
func pluralCzech(n int) int {
	if n == 1 {
		return 0
	}
	if n >= 2 && n <= 4 {
		return 1
	}
	return 2
}

// pluralPolish: singular for 1, paucal for 2-4 outside the teens.
func pluralPolish(n int) int {
	if n == 1 {
		return 0
	}
	if n%10 >= 2 && n%10 <= 4 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

// pluralLithuanian: three forms.
func pluralLithuanian(n int) int {
	if n%10 == 1 && n%100 != 11 {
		return 0
	}
	if n%10 >= 2 && (n%100 < 10 || n%100 >= 20) {
		return 1
	}
	return 2
}

// pluralRomanian: three forms with a large "few" bucket.
func pluralRomanian(n int) int {
	if n == 1 {
		return 0
	}
	if n == 0 || (n%100 > 0 && n%100 < 20) {
		return 1
	}
	return 2
}

// pluralArabic: six forms.
func pluralArabic(n int) int {
	switch {
	case n == 0:
		return 0
	case n == 1:
		return 1
	case n == 2:
		return 2
	case n%100 >= 3 && n%100 <= 10:
		return 3
	case n%100 >= 11:
		return 4
	default:
		return 5
	}
}

// Locales is the built-in locale catalog, keyed by slug. It covers the
// languages the built-in rules special-case plus the common European and
// Asian targets; callers with other targets construct their own Locale.
var Locales = map[string]*Locale{
	"ar":    {Slug: "ar", Name: "Arabic", Nplurals: 6, PluralIndex: pluralArabic},
	"ca":    {Slug: "ca", Name: "Catalan", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"cs":    {Slug: "cs", Name: "Czech", Nplurals: 3, PluralIndex: pluralCzech},
	"da":    {Slug: "da", Name: "Danish", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"de":    {Slug: "de", Name: "German", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"el":    {Slug: "el", Name: "Greek", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"en":    {Slug: "en", Name: "English", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"es":    {Slug: "es", Name: "Spanish", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"fi":    {Slug: "fi", Name: "Finnish", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"fr":    {Slug: "fr", Name: "French", Nplurals: 2, PluralIndex: pluralTwoFormsGreaterOne},
	"he":    {Slug: "he", Name: "Hebrew", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"hr":    {Slug: "hr", Name: "Croatian", Nplurals: 3, PluralIndex: pluralRussian},
	"hu":    {Slug: "hu", Name: "Hungarian", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"id":    {Slug: "id", Name: "Indonesian", Nplurals: 1, PluralIndex: pluralOneForm},
	"it":    {Slug: "it", Name: "Italian", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"ja":    {Slug: "ja", Name: "Japanese", Nplurals: 1, PluralIndex: pluralOneForm},
	"ko":    {Slug: "ko", Name: "Korean", Nplurals: 1, PluralIndex: pluralOneForm},
	"lt":    {Slug: "lt", Name: "Lithuanian", Nplurals: 3, PluralIndex: pluralLithuanian},
	"nl":    {Slug: "nl", Name: "Dutch", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"pl":    {Slug: "pl", Name: "Polish", Nplurals: 3, PluralIndex: pluralPolish},
	"pt":    {Slug: "pt", Name: "Portuguese", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"pt-br": {Slug: "pt-br", Name: "Portuguese (Brazil)", Nplurals: 2, PluralIndex: pluralTwoFormsGreaterOne},
	"ro":    {Slug: "ro", Name: "Romanian", Nplurals: 3, PluralIndex: pluralRomanian},
	"ru":    {Slug: "ru", Name: "Russian", Nplurals: 3, PluralIndex: pluralRussian},
	"sk":    {Slug: "sk", Name: "Slovak", Nplurals: 3, PluralIndex: pluralCzech},
	"sr":    {Slug: "sr", Name: "Serbian", Nplurals: 3, PluralIndex: pluralRussian},
	"sv":    {Slug: "sv", Name: "Swedish", Nplurals: 2, PluralIndex: pluralTwoFormsNotOne},
	"th":    {Slug: "th", Name: "Thai", Nplurals: 1, PluralIndex: pluralOneForm},
	"tr":    {Slug: "tr", Name: "Turkish", Nplurals: 2, PluralIndex: pluralTwoFormsGreaterOne},
	"uk":    {Slug: "uk", Name: "Ukrainian", Nplurals: 3, PluralIndex: pluralRussian},
	"vi":    {Slug: "vi", Name: "Vietnamese", Nplurals: 1, PluralIndex: pluralOneForm},
	"zh-cn": {Slug: "zh-cn", Name: "Chinese (Simplified)", Nplurals: 1, PluralIndex: pluralOneForm},
	"zh-tw": {Slug: "zh-tw", Name: "Chinese (Traditional)", Nplurals: 1, PluralIndex: pluralOneForm},
}

// LocaleBySlug looks up a built-in locale. The second return value is false
// for unknown slugs.
func LocaleBySlug(slug string) (*Locale, bool) {
	l, ok := Locales[slug]
	return l, ok
}
