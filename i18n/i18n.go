package i18n

import (
	"log"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Number Draw": {
		"pt": "Sorteio de Números",
		"es": "Sorteo de Números",
		"ru": "Жеребьёвка",
	},
	"Max number:": {
		"pt": "Número máximo:",
		"es": "Número máximo:",
		"ru": "Максимум:",
	},
	"Quantity:": {
		"pt": "Quantidade:",
		"es": "Cantidad:",
		"ru": "Количество:",
	},
	"Draw": {
		"pt": "Sortear",
		"es": "Sortear",
		"ru": "Тянуть",
	},
	"Error": {
		"pt": "Erro",
		"es": "Error",
		"ru": "Ошибка",
	},
	"Please enter valid positive integers!": {
		"pt": "Digite números inteiros positivos válidos!",
		"es": "¡Introduzca enteros positivos válidos!",
		"ru": "Введите корректные положительные целые числа!",
	},
	"Not enough numbers available, please adjust the parameters!": {
		"pt": "Não há números suficientes, ajuste os parâmetros!",
		"es": "No hay suficientes números, ¡ajuste los parámetros!",
		"ru": "Недостаточно чисел, измените параметры!",
	},
	"Too many numbers for one draw, please lower the quantity!": {
		"pt": "Números demais para um sorteio, diminua a quantidade!",
		"es": "Demasiados números para un sorteo, ¡reduzca la cantidad!",
		"ru": "Слишком много чисел для одной жеребьёвки, уменьшите количество!",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"ru": "Справка",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
	"Drawn:": {
		"pt": "Sorteados:",
		"es": "Sorteados:",
		"ru": "Выпали:",
	},
}

func init() {
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		log.Printf("Detected user locale: %s", userLocales[0])
		lang = FromLocale(userLocales[0])
	} else {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

// FromLocale maps a locale tag such as "pt_BR" or "es-MX" to a supported language.
func FromLocale(tag string) string {
	switch {
	case strings.HasPrefix(tag, "pt"):
		return "pt"
	case strings.HasPrefix(tag, "es"):
		return "es"
	case strings.HasPrefix(tag, "ru"):
		return "ru"
	}
	return "en"
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang overrides the detected language.
func SetLang(l string) {
	lang = l
}
