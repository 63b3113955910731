package pickview

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Text keys shared by the registry and the localized tables.
const (
	TextLoadingPicking               = "loadingDialogTextForPicking"
	TextLoadingUnpicking             = "loadingDialogTextForUnpicking"
	TextInitialGuideline             = "initialGuidelineText"
	TextMoveCloserGuideline          = "moveCloserGuidelineText"
	TextTapShutterToPauseGuideline   = "tapShutterToPauseGuidelineText"
	TextFirstItemToPickFoundHint     = "onFirstItemToPickFoundHintText"
	TextFirstItemPickCompletedHint   = "onFirstItemPickCompletedHintText"
	TextFirstUnmarkedItemPickedHint  = "onFirstUnmarkedItemPickCompletedHintText"
	TextFirstItemUnpickCompletedHint = "onFirstItemUnpickCompletedHintText"
)

// languages lists the locales with translated texts. The first entry is
// the fallback and holds the registry values.
var languages = []language.Tag{language.English, language.German, language.French, language.Spanish}

// Languages returns the locales with translated texts, fallback first.
func Languages() []language.Tag { return slices.Clone(languages) }

var textTables = []map[string]string{
	{
		TextLoadingPicking:               "Picking...",
		TextLoadingUnpicking:             "Unpicking...",
		TextInitialGuideline:             "Point camera at items to start scanning",
		TextMoveCloserGuideline:          "Move closer to items",
		TextTapShutterToPauseGuideline:   "Tap shutter button to pause",
		TextFirstItemToPickFoundHint:     "Tap an item to pick it",
		TextFirstItemPickCompletedHint:   "Item picked. Tap again to unpick",
		TextFirstUnmarkedItemPickedHint:  "Item picked, although it was not on the list",
		TextFirstItemUnpickCompletedHint: "Item unpicked",
	},
	{
		TextLoadingPicking:               "Wird kommissioniert...",
		TextLoadingUnpicking:             "Kommissionierung wird aufgehoben...",
		TextInitialGuideline:             "Kamera auf Artikel richten, um zu scannen",
		TextMoveCloserGuideline:          "Näher an die Artikel heran",
		TextTapShutterToPauseGuideline:   "Auslöser tippen, um zu pausieren",
		TextFirstItemToPickFoundHint:     "Artikel antippen, um ihn zu kommissionieren",
		TextFirstItemPickCompletedHint:   "Artikel kommissioniert. Erneut tippen zum Aufheben",
		TextFirstUnmarkedItemPickedHint:  "Artikel kommissioniert, obwohl er nicht auf der Liste stand",
		TextFirstItemUnpickCompletedHint: "Kommissionierung aufgehoben",
	},
	{
		TextLoadingPicking:               "Prélèvement...",
		TextLoadingUnpicking:             "Annulation du prélèvement...",
		TextInitialGuideline:             "Pointez la caméra vers les articles pour scanner",
		TextMoveCloserGuideline:          "Rapprochez-vous des articles",
		TextTapShutterToPauseGuideline:   "Touchez le déclencheur pour mettre en pause",
		TextFirstItemToPickFoundHint:     "Touchez un article pour le prélever",
		TextFirstItemPickCompletedHint:   "Article prélevé. Touchez à nouveau pour annuler",
		TextFirstUnmarkedItemPickedHint:  "Article prélevé bien qu'absent de la liste",
		TextFirstItemUnpickCompletedHint: "Prélèvement annulé",
	},
	{
		TextLoadingPicking:               "Recogiendo...",
		TextLoadingUnpicking:             "Deshaciendo recogida...",
		TextInitialGuideline:             "Apunte la cámara a los artículos para escanear",
		TextMoveCloserGuideline:          "Acérquese a los artículos",
		TextTapShutterToPauseGuideline:   "Toque el obturador para pausar",
		TextFirstItemToPickFoundHint:     "Toque un artículo para recogerlo",
		TextFirstItemPickCompletedHint:   "Artículo recogido. Toque de nuevo para deshacer",
		TextFirstUnmarkedItemPickedHint:  "Artículo recogido aunque no estaba en la lista",
		TextFirstItemUnpickCompletedHint: "Recogida deshecha",
	},
}

var matcher = language.NewMatcher(languages)

// MatchLanguage picks the best supported language for a locale or an
// Accept-Language value. Anything unrecognized falls back to English.
func MatchLanguage(locales ...string) language.Tag {
	_, i := language.MatchStrings(matcher, locales...)
	return languages[i]
}

// Texts returns the guidance, hint and loading texts for a locale.
func Texts(locale string) map[string]string {
	_, i := language.MatchStrings(matcher, locale)
	return maps.Clone(textTables[i])
}

// Text returns one localized text and whether the key exists.
func Text(key, locale string) (string, bool) {
	_, i := language.MatchStrings(matcher, locale)
	s, ok := textTables[i][key]
	return s, ok
}

func englishText(key string) string { return textTables[0][key] }
